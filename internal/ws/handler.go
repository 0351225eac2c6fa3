package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/command"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/room"
	"github.com/midoshouse/midos.house-sub000/internal/types"
	wire "github.com/midoshouse/midos.house-sub000/pkg/types"
	"go.uber.org/zap"
)

const (
	writeTimeout = 3 * time.Second
	readTimeout  = 5 * time.Minute
)

// RoomOpener returns the running room of a race, nil if there is no such
// race.
type RoomOpener func(ctx context.Context, race uuid.UUID) (*room.Room, error)

func Handler(open RoomOpener, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		race, err := uuid.Parse(r.URL.Query().Get("race"))
		if err != nil {
			http.Error(w, "missing or invalid race", http.StatusBadRequest)
			return
		}

		rm, err := open(r.Context(), race)
		if err != nil || rm == nil {
			http.Error(w, "race not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		c := &client{conn: conn, race: race, log: log.With(zap.Stringer("race", race))}
		out := make(chan room.Snapshot, 8)
		clientID := uuid.NewString()

		select {
		case rm.Inbox() <- room.Join{ClientID: clientID, Outbox: out}:
		case <-rm.Done():
			conn.Close(websocket.StatusGoingAway, "room closed")
			return
		}
		defer func() {
			select {
			case rm.Inbox() <- room.Leave{ClientID: clientID}:
			case <-rm.Done():
			}
		}()

		// Writer goroutine
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go func() {
			defer cancel()
			for {
				select {
				case <-ctx.Done():
					return
				case snap, ok := <-out:
					if !ok {
						// Room stopped or dropped us; the client reconnects.
						conn.Close(websocket.StatusGoingAway, "snapshot stream closed")
						return
					}
					if err := c.sendSnapshot(ctx, snap); err != nil {
						return
					}
				}
			}
		}()

		// Reader loop
		for {
			readCtx, readCancel := context.WithTimeout(ctx, readTimeout)
			_, data, err := conn.Read(readCtx)
			readCancel()
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					c.log.Debug("websocket read", zap.Error(err))
				}
				return
			}

			var cm wire.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				c.sendError(ctx, "bad json")
				continue
			}
			if cm.Type != wire.MsgCommand && cm.Type != wire.MsgAction {
				c.sendError(ctx, "unknown type")
				continue
			}
			req, err := types.ParseRequest(cm.Command, cm.Action)
			if err != nil {
				c.sendError(ctx, err.Error())
				continue
			}
			if req.List {
				view, err := rm.State(ctx)
				if err != nil {
					return
				}
				c.send(ctx, wire.ServerMessage{Type: wire.MsgCatalog, Catalog: types.Catalog(view.Kind)})
				continue
			}

			res, err := rm.Submit(ctx, engine.TeamID(cm.Team), cm.ReplyTo, req.Action)
			if err != nil {
				return
			}
			msg := wire.ServerMessage{
				Type:    wire.MsgResult,
				Version: res.Snapshot.Version,
				Command: command.Format(req.Action),
				Message: res.Message,
			}
			var rej *engine.RejectionError
			switch {
			case errors.As(res.Err, &rej):
				msg.Reason = string(rej.Reason)
			case res.Err != nil:
				msg.Error = res.Err.Error()
			}
			c.send(ctx, msg)
		}
	}
}

type client struct {
	conn *websocket.Conn
	race uuid.UUID
	log  *zap.Logger
}

func (c *client) sendSnapshot(ctx context.Context, snap room.Snapshot) error {
	s, err := types.Snapshot(c.race, snap)
	if err != nil {
		return err
	}
	return c.send(ctx, wire.ServerMessage{Type: wire.MsgStateSnapshot, Version: snap.Version, Snapshot: s})
}

func (c *client) sendError(ctx context.Context, text string) {
	_ = c.send(ctx, wire.ServerMessage{Type: wire.MsgError, Error: text})
}

func (c *client) send(ctx context.Context, msg wire.ServerMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, payload)
}
