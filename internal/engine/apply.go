package engine

import (
	"context"
	"fmt"
)

// hooks are the kind-specific side effects of an accepted action. Both run
// after the outcome has been rendered, right before the draft is written.
type hooks struct {
	picked   func(d *Draft, team Team, s Setting, value string)
	answered func(d *Draft, team Team, value bool)
}

// applyAction is the transition function shared by every kind. It re-derives
// the step from the unmodified draft, so two calls with the same draft and
// action always agree.
func applyAction(ctx context.Context, r Rules, h hooks, d *Draft, p Presenter, a Action) (string, error) {
	if !a.Type.valid() {
		return "", fmt.Errorf("%w %q", ErrInvalidAction, a.Type)
	}
	kind := r.Kind()
	catalog := r.Catalog()
	sk, _ := r.Derive(d)

	switch a.Type {
	case ActionBan:
		s, ok := catalog.Lookup(a.Setting)
		if !ok {
			return reject(ctx, p, Rejection{Kind: kind, Reason: ReasonUnknownSetting, Phase: sk.Phase, Options: catalog.Names()})
		}
		a = Pick(s.Name, s.Default)
	case ActionBooleanChoice:
		if sk.Phase == PhaseGoFirst {
			a = GoFirst(a.Choice)
		}
	}

	rejection := func(reason Reason) Rejection {
		return Rejection{Kind: kind, Reason: reason, Phase: sk.Phase, Team: sk.Team, Skippable: sk.Skippable}
	}
	// Phases every action has to pass first.
	switch sk.Phase {
	case PhaseDone:
		return reject(ctx, p, rejection(ReasonCompleted))
	case PhaseBooleanChoice:
		if a.Type != ActionBooleanChoice {
			return reject(ctx, p, rejection(ReasonYesNoPending))
		}
	}

	switch a.Type {
	case ActionGoFirst:
		if sk.Phase != PhaseGoFirst {
			return reject(ctx, p, rejection(ReasonFirstPickChosen))
		}
		msg, err := render(ctx, p, Outcome{Kind: kind, Type: OutcomeWentFirst, Team: HighSeed, Phase: sk.Phase, First: a.Choice, Picks: d.Settings.Clone()})
		if err != nil {
			return "", err
		}
		first := a.Choice
		d.WentFirst = &first
		return msg, nil

	case ActionPick:
		switch sk.Phase {
		case PhaseGoFirst:
			return reject(ctx, p, rejection(ReasonFirstPickPending))
		case PhaseBan:
			bs, ok := sk.AvailableSettings.Get(a.Setting)
			if !ok {
				return rejectSetting(ctx, p, catalog, sk, rejection, a.Setting, sk.AvailableSettings.Names())
			}
			if a.Value != bs.Default {
				return reject(ctx, p, rejection(ReasonBanValue))
			}
			s := catalog.MustLookup(bs.Name)
			msg, err := render(ctx, p, Outcome{
				Kind: kind, Type: OutcomeBanned, Team: sk.Team, Phase: sk.Phase,
				Setting: s.Name, SettingDisplay: s.Display, Value: s.Default, ValueDisplay: s.DefaultDisplay, Default: true,
				Picks: d.Settings.Clone(),
			})
			if err != nil {
				return "", err
			}
			d.record(catalog, s.Name, s.Default)
			return msg, nil
		case PhasePick:
			ds, ok := sk.AvailableChoices.Get(a.Setting)
			if !ok {
				return rejectSetting(ctx, p, catalog, sk, rejection, a.Setting, sk.AvailableChoices.Names())
			}
			opt, ok := ds.Option(a.Value)
			if !ok {
				r := rejection(ReasonInvalidValue)
				r.Options = ds.OptionNames()
				return reject(ctx, p, r)
			}
			s := catalog.MustLookup(ds.Name)
			msg, err := render(ctx, p, Outcome{
				Kind: kind, Type: OutcomePicked, Team: sk.Team, Phase: sk.Phase,
				Setting: s.Name, SettingDisplay: s.Display, Value: opt.Name, ValueDisplay: opt.Display, Default: opt.Name == s.Default,
				Picks: d.Settings.Clone(),
			})
			if err != nil {
				return "", err
			}
			if h.picked != nil {
				h.picked(d, sk.Team, s, opt.Name)
			}
			d.record(catalog, s.Name, opt.Name)
			return msg, nil
		}

	case ActionSkip:
		switch sk.Phase {
		case PhaseGoFirst:
			return reject(ctx, p, rejection(ReasonFirstPickPending))
		case PhaseBan, PhasePick:
			if !sk.Skippable {
				return reject(ctx, p, rejection(ReasonNotSkippable))
			}
			msg, err := render(ctx, p, Outcome{Kind: kind, Type: OutcomeSkipped, Team: sk.Team, Phase: sk.Phase, Picks: d.Settings.Clone()})
			if err != nil {
				return "", err
			}
			d.SkippedBans++
			return msg, nil
		}

	case ActionBooleanChoice:
		if sk.Phase != PhaseBooleanChoice {
			return reject(ctx, p, rejection(ReasonNotYesNo))
		}
		if h.answered == nil {
			panic(fmt.Sprintf("engine: %s derived a yes/no step it cannot record", kind))
		}
		msg, err := render(ctx, p, Outcome{Kind: kind, Type: OutcomeAnswered, Team: sk.Team, Phase: sk.Phase, Answer: a.Choice, Picks: d.Settings.Clone()})
		if err != nil {
			return "", err
		}
		h.answered(d, sk.Team, a.Choice)
		return msg, nil

	default:
		panic(fmt.Sprintf("engine: unknown action type %q", a.Type))
	}
	panic(fmt.Sprintf("engine: %s action in %s phase", a.Type, sk.Phase))
}

// rejectSetting explains why a setting name is not on offer: either it was
// already decided (or hidden for this draft) or it does not exist at all.
func rejectSetting(ctx context.Context, p Presenter, c *Catalog, sk StepKind, rejection func(Reason) Rejection, name string, available []string) (string, error) {
	reason := ReasonUnknownSetting
	if _, exists := c.Lookup(name); exists {
		reason = ReasonSettingLocked
	}
	r := rejection(reason)
	r.Options = available
	r.Skippable = sk.Skippable && reason == ReasonSettingLocked
	return reject(ctx, p, r)
}

func render(ctx context.Context, p Presenter, o Outcome) (string, error) {
	msg, err := p.Outcome(ctx, o)
	if err != nil {
		return "", fmt.Errorf("render %s outcome: %w", o.Type, err)
	}
	return msg, nil
}
