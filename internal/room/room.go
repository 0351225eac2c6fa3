// Package room runs one goroutine per race that owns the race's draft. Every
// action goes through the room's inbox, so a draft never has two writers.
package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/presenter"
	"go.uber.org/zap"
)

var (
	ErrClosed         = errors.New("room closed")
	ErrNotParticipant = errors.New("team does not take part in this race")
)

// Saver persists a draft after an accepted action. The room only commits the
// new draft in memory once the save succeeded.
type Saver interface {
	SaveDraft(ctx context.Context, race uuid.UUID, d engine.Draft) error
}

type Msg interface{ isRoomMsg() }

// Submit asks the room to apply an action on behalf of a team.
type Submit struct {
	Actor engine.TeamID
	// ReplyTo names the user in rejection messages.
	ReplyTo string
	Action  engine.Action
	Reply   chan Result
}

func (Submit) isRoomMsg() {}

type Result struct {
	// Message is the outcome or rejection text for the submitter.
	Message  string
	Snapshot Snapshot
	// Err is a *engine.RejectionError for illegal actions.
	Err error
}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isRoomMsg() {}

type Leave struct{ ClientID string }

func (Leave) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isRoomMsg() {}

// Snapshot is what clients see after every change.
type Snapshot struct {
	Version int
	Kind    engine.Kind
	Phase   engine.Phase
	// Active is the team expected to act, empty once the draft is done.
	Active engine.TeamID
	Prompt string
	// Announcement is the outcome of the action that produced this snapshot.
	Announcement string
	Draft        engine.Draft
}

type View struct {
	Version    int
	NumClients int
	Kind       engine.Kind
	Draft      engine.Draft
}

type Config struct {
	Race         uuid.UUID
	Kind         engine.Kind
	Draft        engine.Draft
	LowSeed      engine.TeamID
	HighSeedName string
	LowSeedName  string
	Saver        Saver
	Logger       *zap.Logger
	// IdleTimeout stops the room after this long without messages. Zero
	// keeps it running until shutdown.
	IdleTimeout time.Duration
	// OnStop runs on the room goroutine after the room stopped.
	OnStop func()
}

type Room struct {
	cfg     Config
	inbox   chan Msg
	draft   engine.Draft
	version int
	last    string
	clients map[string]chan Snapshot
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func New(parent context.Context, cfg Config) *Room {
	ctx, cancel := context.WithCancel(parent)
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &Room{
		cfg:     cfg,
		inbox:   make(chan Msg, 64),
		draft:   cfg.Draft.Clone(),
		clients: make(map[string]chan Snapshot),
		log:     log.With(zap.Stringer("race", cfg.Race), zap.Stringer("kind", cfg.Kind)),
		ctx:     ctx,
		cancel:  cancel,
	}
	go r.loop()
	return r
}

// Inbox exposes the inbox so the hub and transports can send messages.
func (r *Room) Inbox() chan<- Msg { return r.inbox }

// Done is closed once the room stopped.
func (r *Room) Done() <-chan struct{} { return r.ctx.Done() }

// Submit sends an action and waits for the result.
func (r *Room) Submit(ctx context.Context, actor engine.TeamID, replyTo string, a engine.Action) (Result, error) {
	reply := make(chan Result, 1)
	select {
	case r.inbox <- Submit{Actor: actor, ReplyTo: replyTo, Action: a, Reply: reply}:
	case <-r.ctx.Done():
		return Result{}, ErrClosed
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	select {
	case res := <-reply:
		return res, nil
	case <-r.ctx.Done():
		return Result{}, ErrClosed
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// State returns the current version and draft.
func (r *Room) State(ctx context.Context) (View, error) {
	reply := make(chan View, 1)
	select {
	case r.inbox <- GetState{Reply: reply}:
	case <-r.ctx.Done():
		return View{}, ErrClosed
	case <-ctx.Done():
		return View{}, ctx.Err()
	}
	select {
	case v := <-reply:
		return v, nil
	case <-r.ctx.Done():
		return View{}, ErrClosed
	case <-ctx.Done():
		return View{}, ctx.Err()
	}
}

func (r *Room) loop() {
	var idle <-chan time.Time
	var timer *time.Timer
	if r.cfg.IdleTimeout > 0 {
		timer = time.NewTimer(r.cfg.IdleTimeout)
		defer timer.Stop()
		idle = timer.C
	}
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case <-idle:
			r.log.Info("room idle, stopping")
			r.shutdown()
			return

		case m := <-r.inbox:
			if timer != nil {
				timer.Reset(r.cfg.IdleTimeout)
			}
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				r.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- r.snapshot()

			case Leave:
				delete(r.clients, msg.ClientID)

			case Submit:
				msg.Reply <- r.submit(msg)

			case GetState:
				msg.Reply <- View{
					Version:    r.version,
					NumClients: len(r.clients),
					Kind:       r.cfg.Kind,
					Draft:      r.draft.Clone(),
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

func (r *Room) chat(replyTo string) presenter.Chat {
	return presenter.Chat{HighSeedName: r.cfg.HighSeedName, LowSeedName: r.cfg.LowSeedName, ReplyTo: replyTo}
}

func (r *Room) submit(msg Submit) Result {
	if msg.Actor != r.draft.HighSeed && msg.Actor != r.cfg.LowSeed {
		return Result{Snapshot: r.snapshot(), Err: ErrNotParticipant}
	}
	next := r.draft.Clone()
	text, err := engine.ApplyAs(r.ctx, &next, r.cfg.Kind, r.chat(msg.ReplyTo), msg.Actor, msg.Action)
	if err != nil {
		var rej *engine.RejectionError
		if errors.As(err, &rej) {
			text = rej.Message
		} else {
			r.log.Error("apply action", zap.Any("action", msg.Action), zap.Error(err))
		}
		return Result{Message: text, Snapshot: r.snapshot(), Err: err}
	}
	if r.cfg.Saver != nil {
		if err := r.cfg.Saver.SaveDraft(r.ctx, r.cfg.Race, next); err != nil {
			r.log.Error("save draft", zap.Error(err))
			return Result{Snapshot: r.snapshot(), Err: err}
		}
	}
	r.draft = next
	r.version++
	r.last = text
	r.log.Debug("action applied", zap.String("actor", string(msg.Actor)), zap.Any("action", msg.Action), zap.Int("version", r.version))
	snap := r.snapshot()
	if snap.Phase == engine.PhaseDone {
		r.log.Info("draft completed", zap.Strings("recorded", next.Settings.Keys()))
	}
	r.broadcast(snap)
	return Result{Message: text, Snapshot: snap}
}

func (r *Room) snapshot() Snapshot {
	snap := Snapshot{
		Version:      r.version,
		Kind:         r.cfg.Kind,
		Announcement: r.last,
		Draft:        r.draft.Clone(),
	}
	d := r.draft.Clone()
	step, err := engine.NextStep(r.ctx, &d, r.cfg.Kind, r.chat(""))
	if err != nil {
		r.log.Error("render prompt", zap.Error(err))
		sk, _ := r.cfg.Kind.Rules().Derive(&d)
		step.Kind = sk
	}
	snap.Phase = step.Kind.Phase
	snap.Prompt = step.Message
	if team, ok := engine.ActiveTeam(&d, r.cfg.Kind); ok {
		snap.Active = engine.Choose(team, d.HighSeed, r.cfg.LowSeed)
	}
	return snap
}

func (r *Room) shutdown() {
	for id, ch := range r.clients {
		close(ch) // Tell client no more snapshots
		delete(r.clients, id)
	}
	r.cancel()
	if r.cfg.OnStop != nil {
		r.cfg.OnStop()
	}
}

func (r *Room) broadcast(snap Snapshot) {
	for id, ch := range r.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(r.clients, id)
		}
	}
}
