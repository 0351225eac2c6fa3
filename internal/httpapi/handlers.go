package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/command"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/hub"
	"github.com/midoshouse/midos.house-sub000/internal/presenter"
	"github.com/midoshouse/midos.house-sub000/internal/room"
	"github.com/midoshouse/midos.house-sub000/internal/store"
	"github.com/midoshouse/midos.house-sub000/internal/types"
	wire "github.com/midoshouse/midos.house-sub000/pkg/types"
	"go.uber.org/zap"
)

// Store is the persistence the API needs; *store.Store implements it.
type Store interface {
	presenter.TeamDirectory
	room.Saver
	SaveTeam(ctx context.Context, t store.Team) error
	Teams(ctx context.Context) ([]store.Team, error)
	CreateRace(ctx context.Context, r *store.Race) error
	Race(ctx context.Context, id uuid.UUID) (store.Race, error)
	Eligibility(ctx context.Context, a, b engine.TeamID) (engine.Eligibility, error)
}

type API struct {
	Hub         *hub.Hub
	Store       Store
	Log         *zap.Logger
	IdleTimeout time.Duration
	// TokenHash is a bcrypt hash guarding mutating routes; nil disables it.
	TokenHash []byte
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := wire.ErrorResponse{Error: err.Error()}
	var rej *engine.RejectionError
	if errors.As(err, &rej) {
		resp.Reason = string(rej.Reason)
	}
	writeJSON(w, status, resp)
}

// status maps an error to the HTTP status it should be reported as.
func status(err error) int {
	switch {
	case engine.IsRejection(err):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrRaceExists), errors.Is(err, store.ErrStaleDraft):
		return http.StatusConflict
	case errors.Is(err, engine.ErrUnknownKind),
		errors.Is(err, engine.ErrInvalidAction),
		errors.Is(err, command.ErrNotCommand),
		errors.Is(err, command.ErrUnknownCommand),
		errors.Is(err, command.ErrUsage),
		errors.Is(err, types.ErrUnknownAction),
		errors.Is(err, types.ErrNoAction):
		return http.StatusBadRequest
	case errors.Is(err, room.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, room.ErrClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := status(err)
	if code >= http.StatusInternalServerError {
		a.Log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeError(w, code, err)
}

func raceID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, errBadRaceID
	}
	return id, nil
}

var errBadRaceID = errors.New("invalid race id")

func (a *API) teamName(ctx context.Context, id engine.TeamID) string {
	info, err := a.Store.Team(ctx, id)
	if err != nil {
		a.Log.Warn("resolve team name", zap.String("team", string(id)), zap.Error(err))
		return string(id)
	}
	return info.Name
}

// OpenRoom returns the running room of a race, loading it from the store if
// needed.
func (a *API) OpenRoom(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	if rm, err := a.Hub.Room(ctx, id); err != nil || rm != nil {
		return rm, err
	}
	race, err := a.Store.Race(ctx, id)
	if err != nil {
		return nil, err
	}
	kind, err := race.DraftKind()
	if err != nil {
		return nil, err
	}
	return a.Hub.Ensure(ctx, id, room.Config{
		Kind:         kind,
		Draft:        race.Draft.Draft,
		LowSeed:      engine.TeamID(race.LowSeed),
		HighSeedName: a.teamName(ctx, engine.TeamID(race.HighSeed)),
		LowSeedName:  a.teamName(ctx, engine.TeamID(race.LowSeed)),
		Saver:        a.Store,
		Logger:       a.Log,
		IdleTimeout:  a.IdleTimeout,
	})
}

func (a *API) CreateRace(w http.ResponseWriter, r *http.Request) {
	var req wire.CreateRaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	kind, err := engine.ParseKind(req.Kind)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if req.HighSeed == "" || req.LowSeed == "" || req.HighSeed == req.LowSeed {
		writeError(w, http.StatusBadRequest, errors.New("two distinct teams are required"))
		return
	}
	high, low := engine.TeamID(req.HighSeed), engine.TeamID(req.LowSeed)
	elig, err := a.Store.Eligibility(r.Context(), high, low)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	race := &store.Race{
		Kind:     string(kind),
		HighSeed: req.HighSeed,
		LowSeed:  req.LowSeed,
		Game:     req.Game,
		Draft:    store.DraftColumn{Draft: engine.NewDraft(kind, high, elig)},
	}
	if err := a.Store.CreateRace(r.Context(), race); err != nil {
		a.fail(w, r, err)
		return
	}
	snap, err := a.snapshot(r, race, 0, "")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

// snapshot phrases a stored race for rich clients.
func (a *API) snapshot(r *http.Request, race *store.Race, version int, announcement string) (*wire.Snapshot, error) {
	kind, err := race.DraftKind()
	if err != nil {
		return nil, err
	}
	d := race.Draft.Draft.Clone()
	p := a.rich(r, race)
	step, err := engine.NextStep(r.Context(), &d, kind, p)
	if err != nil {
		return nil, err
	}
	rs := room.Snapshot{
		Version:      version,
		Kind:         kind,
		Phase:        step.Kind.Phase,
		Prompt:       step.Message,
		Announcement: announcement,
		Draft:        d,
	}
	if team, ok := engine.ActiveTeam(&d, kind); ok {
		rs.Active = engine.TeamID(engine.Choose(team, race.HighSeed, race.LowSeed))
	}
	return types.Snapshot(race.ID, rs)
}

func (a *API) rich(r *http.Request, race *store.Race) presenter.Rich {
	p := presenter.Rich{
		Directory: a.Store,
		HighSeed:  engine.TeamID(race.HighSeed),
		LowSeed:   engine.TeamID(race.LowSeed),
		Game:      race.Game,
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if lang, ok := presenter.ParseLanguage(accept); ok {
			p.Lang = lang
		}
	}
	return p
}

func (a *API) GetRace(w http.ResponseWriter, r *http.Request) {
	id, err := raceID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rm, err := a.OpenRoom(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	view, err := rm.State(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	race, err := a.Store.Race(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	// The room's draft is authoritative while it runs.
	race.Draft.Draft = view.Draft
	snap, err := a.snapshot(r, &race, view.Version, "")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (a *API) PostAction(w http.ResponseWriter, r *http.Request) {
	id, err := raceID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var body wire.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req, err := types.ParseRequest(body.Command, body.Action)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	rm, err := a.OpenRoom(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if req.List {
		view, err := rm.State(r.Context())
		if err != nil {
			a.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, wire.ServerMessage{Type: wire.MsgCatalog, Catalog: types.Catalog(view.Kind)})
		return
	}
	res, err := rm.Submit(r.Context(), engine.TeamID(body.Team), body.ReplyTo, req.Action)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	snap, err := types.Snapshot(id, res.Snapshot)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp := wire.ActionResponse{
		Command:  command.Format(req.Action),
		Action:   types.FromAction(req.Action),
		Message:  res.Message,
		Snapshot: snap,
	}
	if res.Err != nil {
		var rej *engine.RejectionError
		if !errors.As(res.Err, &rej) {
			a.fail(w, r, res.Err)
			return
		}
		resp.Reason = string(rej.Reason)
		writeJSON(w, http.StatusConflict, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) PutTeam(w http.ResponseWriter, r *http.Request) {
	var body wire.Team
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	body.ID = chi.URLParam(r, "id")
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, errors.New("team name is required"))
		return
	}
	t := store.Team{
		ID:             body.ID,
		Name:           body.Name,
		Plural:         body.Plural,
		HardSettingsOK: body.HardSettingsOK,
		MQOK:           body.MQOK,
	}
	if err := a.Store.SaveTeam(r.Context(), t); err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (a *API) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := a.Store.Teams(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	out := make([]wire.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, wire.Team{
			ID:             t.ID,
			Name:           t.Name,
			Plural:         t.Plural,
			HardSettingsOK: t.HardSettingsOK,
			MQOK:           t.MQOK,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) GetCatalog(w http.ResponseWriter, r *http.Request) {
	kind, err := engine.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.Catalog(kind))
}

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	n, err := a.Hub.Count(r.Context())
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, wire.Health{Status: "stopping"})
		return
	}
	writeJSON(w, http.StatusOK, wire.Health{Status: "ok", Rooms: n})
}
