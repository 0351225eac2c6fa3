// Package types converts between the wire protocol in pkg/types and the
// engine.
package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/command"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/room"
	wire "github.com/midoshouse/midos.house-sub000/pkg/types"
)

var (
	ErrUnknownAction = errors.New("unknown action type")
	ErrNoAction      = errors.New("either command or action is required")
)

func ToAction(a wire.Action) (engine.Action, error) {
	switch engine.ActionType(a.Type) {
	case engine.ActionGoFirst:
		return engine.GoFirst(a.Choice), nil
	case engine.ActionBan:
		return engine.Ban(a.Setting), nil
	case engine.ActionPick:
		return engine.Pick(a.Setting, a.Value), nil
	case engine.ActionSkip:
		return engine.Skip(), nil
	case engine.ActionBooleanChoice:
		return engine.BooleanChoice(a.Choice), nil
	}
	return engine.Action{}, fmt.Errorf("%w %q", ErrUnknownAction, a.Type)
}

func FromAction(a engine.Action) wire.Action {
	return wire.Action{Type: string(a.Type), Choice: a.Choice, Setting: a.Setting, Value: a.Value}
}

// Request is an action as sent by a client, either a chat command or a
// typed action.
type Request struct {
	Action engine.Action
	// List asks for the catalog instead of acting.
	List bool
}

func ParseRequest(cmd string, a *wire.Action) (Request, error) {
	switch {
	case a != nil:
		act, err := ToAction(*a)
		return Request{Action: act}, err
	case cmd != "":
		c, err := command.Parse(cmd)
		if err != nil {
			return Request{}, err
		}
		return Request{Action: c.Action, List: c.List}, nil
	}
	return Request{}, ErrNoAction
}

func Snapshot(race uuid.UUID, s room.Snapshot) (*wire.Snapshot, error) {
	draft, err := json.Marshal(s.Draft)
	if err != nil {
		return nil, fmt.Errorf("encode draft: %w", err)
	}
	d := s.Draft.Clone()
	return &wire.Snapshot{
		Race:         race.String(),
		Kind:         string(s.Kind),
		Version:      s.Version,
		Phase:        string(s.Phase),
		Active:       string(s.Active),
		Prompt:       s.Prompt,
		Announcement: s.Announcement,
		Draft:        draft,
		Step:         Step(s.Kind, &d),
	}, nil
}

// Step lists the current options of d. It is nil for the go-first and
// yes/no phases, which have fixed answers.
func Step(kind engine.Kind, d *engine.Draft) *wire.Step {
	sk, _ := kind.Rules().Derive(d)
	switch sk.Phase {
	case engine.PhaseBan:
		step := &wire.Step{Skippable: sk.Skippable}
		for _, page := range sk.AvailableSettings {
			wp := wire.Page{Name: page.Name, Settings: []wire.Setting{}}
			for _, s := range page.Settings {
				wp.Settings = append(wp.Settings, wire.Setting{
					Name: s.Name, Display: s.Display, Default: s.Default, Description: s.Description,
					Options: []wire.Option{{Name: s.Default, Display: s.DefaultDisplay}},
				})
			}
			step.Pages = append(step.Pages, wp)
		}
		return step
	case engine.PhasePick:
		step := &wire.Step{Skippable: sk.Skippable}
		for _, page := range sk.AvailableChoices {
			wp := wire.Page{Name: page.Name, Settings: []wire.Setting{}}
			for _, s := range page.Settings {
				ws := wire.Setting{Name: s.Name, Display: s.Display, Description: s.Description}
				for _, o := range s.Options {
					ws.Options = append(ws.Options, wire.Option{Name: o.Name, Display: o.Display})
				}
				wp.Settings = append(wp.Settings, ws)
			}
			step.Pages = append(step.Pages, wp)
		}
		return step
	case engine.PhaseDone:
		return &wire.Step{Resolved: sk.Resolved}
	}
	return nil
}

// Catalog lists every setting of a kind with its values, for "!settings".
func Catalog(kind engine.Kind) []wire.Setting {
	c := kind.Catalog()
	out := make([]wire.Setting, 0, len(c.Settings))
	for _, s := range c.Settings {
		ws := wire.Setting{Name: s.Name, Display: s.Display, Default: s.Default, Description: s.Description}
		ws.Options = append(ws.Options, wire.Option{Name: s.Default, Display: s.DefaultDisplay})
		for _, o := range s.Other {
			ws.Options = append(ws.Options, wire.Option{Name: o.Name, Display: o.Display, Hard: o.Hard})
		}
		out = append(out, ws)
	}
	return out
}
