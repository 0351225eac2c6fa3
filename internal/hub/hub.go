// Package hub owns the running rooms, keyed by race.
package hub

import (
	"context"

	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/room"
	"go.uber.org/zap"
)

type HubMsg interface{ isHubMsg() }

type GetRoom struct {
	Race  uuid.UUID
	Reply chan *room.Room
}

// EnsureRoom returns the running room for a race, starting one from Config
// if there is none.
type EnsureRoom struct {
	Race   uuid.UUID
	Config room.Config // only used if creation happens
	Reply  chan *room.Room
}

type RemoveRoom struct {
	Race uuid.UUID
	gen  uint64
}

type ShutdownHub struct{}

type CountRooms struct {
	Reply chan int
}

func (GetRoom) isHubMsg()     {}
func (EnsureRoom) isHubMsg()  {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}
func (CountRooms) isHubMsg()  {}

type entry struct {
	room *room.Room
	gen  uint64
}

type Hub struct {
	inbox  chan HubMsg
	rooms  map[uuid.UUID]entry
	gen    uint64
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[uuid.UUID]entry),
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

// Done is closed once the hub stopped.
func (h *Hub) Done() <-chan struct{} { return h.ctx.Done() }

// Room returns the running room for race, or nil.
func (h *Hub) Room(ctx context.Context, race uuid.UUID) (*room.Room, error) {
	reply := make(chan *room.Room, 1)
	return h.ask(ctx, GetRoom{Race: race, Reply: reply}, reply)
}

// Ensure returns the room for race, starting it from cfg when needed.
func (h *Hub) Ensure(ctx context.Context, race uuid.UUID, cfg room.Config) (*room.Room, error) {
	reply := make(chan *room.Room, 1)
	return h.ask(ctx, EnsureRoom{Race: race, Config: cfg, Reply: reply}, reply)
}

// Count returns the number of running rooms.
func (h *Hub) Count(ctx context.Context) (int, error) {
	reply := make(chan int, 1)
	select {
	case h.inbox <- CountRooms{Reply: reply}:
	case <-h.ctx.Done():
		return 0, room.ErrClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	select {
	case n := <-reply:
		return n, nil
	case <-h.ctx.Done():
		return 0, room.ErrClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (h *Hub) ask(ctx context.Context, msg HubMsg, reply chan *room.Room) (*room.Room, error) {
	select {
	case h.inbox <- msg:
	case <-h.ctx.Done():
		return nil, room.ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-reply:
		return r, nil
	case <-h.ctx.Done():
		return nil, room.ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Shutdown stops every room and the hub itself.
func (h *Hub) Shutdown() {
	select {
	case h.inbox <- ShutdownHub{}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case GetRoom:
				var r *room.Room // May be nil
				if e, ok := h.rooms[msg.Race]; ok && alive(e.room) {
					r = e.room
				}
				msg.Reply <- r

			case EnsureRoom:
				if e, ok := h.rooms[msg.Race]; ok && alive(e.room) {
					msg.Reply <- e.room
					break
				}
				r := h.start(msg.Race, msg.Config)
				msg.Reply <- r

			case RemoveRoom:
				// A newer room may already run under the same race.
				if e, ok := h.rooms[msg.Race]; ok && e.gen == msg.gen {
					delete(h.rooms, msg.Race)
					h.log.Debug("room removed", zap.Stringer("race", msg.Race))
				}

			case CountRooms:
				msg.Reply <- len(h.rooms)

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) start(race uuid.UUID, cfg room.Config) *room.Room {
	cfg.Race = race
	if cfg.Logger == nil {
		cfg.Logger = h.log
	}
	h.gen++
	gen := h.gen
	onStop := cfg.OnStop
	cfg.OnStop = func() {
		if onStop != nil {
			onStop()
		}
		select {
		case h.inbox <- RemoveRoom{Race: race, gen: gen}:
		case <-h.ctx.Done():
		}
	}
	r := room.New(h.ctx, cfg)
	h.rooms[race] = entry{room: r, gen: gen}
	h.log.Debug("room started", zap.Stringer("race", race))
	return r
}

func alive(r *room.Room) bool {
	select {
	case <-r.Done():
		return false
	default:
		return true
	}
}

func (h *Hub) shutdown() {
	for _, e := range h.rooms {
		select {
		case e.room.Inbox() <- room.Shutdown{}:
		case <-e.room.Done():
		}
	}
	clear(h.rooms)
	h.cancel()
}
