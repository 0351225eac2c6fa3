package engine

import (
	"context"
	"fmt"
)

type TeamID string

// Team is a seat relative to one draft, not a stored entity.
type Team int

const (
	HighSeed Team = iota
	LowSeed
)

func (t Team) Other() Team {
	if t == HighSeed {
		return LowSeed
	}
	return HighSeed
}

func (t Team) String() string {
	if t == HighSeed {
		return "Team A"
	}
	return "Team B"
}

// Choose returns high for the high seed and low for the low seed.
func Choose[T any](t Team, high, low T) T {
	if t == HighSeed {
		return high
	}
	return low
}

// Draft is the persisted negotiation state of one race.
type Draft struct {
	HighSeed    TeamID
	WentFirst   *bool
	SkippedBans uint8
	Settings    Picks
}

// Eligibility carries the per-pairing permissions some kinds record on a
// fresh draft.
type Eligibility struct {
	HardSettingsOK bool
	MQOK           bool
}

type ActionType string

const (
	ActionGoFirst       ActionType = "go_first"
	ActionBan           ActionType = "ban"
	ActionPick          ActionType = "pick"
	ActionSkip          ActionType = "skip"
	ActionBooleanChoice ActionType = "boolean_choice"
)

func (t ActionType) valid() bool {
	switch t {
	case ActionGoFirst, ActionBan, ActionPick, ActionSkip, ActionBooleanChoice:
		return true
	}
	return false
}

// Action is built with the constructors below. Apply returns ErrInvalidAction
// for any other Type.
type Action struct {
	Type    ActionType
	Choice  bool // GoFirst and BooleanChoice
	Setting string
	Value   string
}

func GoFirst(first bool) Action         { return Action{Type: ActionGoFirst, Choice: first} }
func Ban(setting string) Action         { return Action{Type: ActionBan, Setting: setting} }
func Pick(setting, value string) Action { return Action{Type: ActionPick, Setting: setting, Value: value} }
func Skip() Action                      { return Action{Type: ActionSkip} }
func BooleanChoice(value bool) Action   { return Action{Type: ActionBooleanChoice, Choice: value} }

type Phase string

const (
	PhaseGoFirst       Phase = "go_first"
	PhaseBan           Phase = "ban"
	PhasePick          Phase = "pick"
	PhaseBooleanChoice Phase = "boolean_choice"
	PhaseDone          Phase = "done"
)

// StepKind is the derived phase. Only the fields relevant to Phase are set:
// Team for everything but Done, AvailableSettings for Ban, AvailableChoices
// for Pick, Resolved for Done.
type StepKind struct {
	Phase             Phase
	Team              Team
	AvailableSettings BanSettings
	AvailableChoices  DraftSettings
	Skippable         bool
	Resolved          Picks
}

type Step struct {
	Kind    StepKind
	Message string
}

// Rules is one tournament format. Implementations never share mutable state.
type Rules interface {
	Kind() Kind
	Catalog() *Catalog
	// Init seeds a fresh draft with the auxiliary flags the format needs.
	Init(d *Draft, e Eligibility)
	// Derive computes the current step from d without side effects, along
	// with what the presenter needs to phrase it.
	Derive(d *Draft) (StepKind, Prompt)
	Apply(ctx context.Context, d *Draft, p Presenter, a Action) (string, error)
}

// NewDraft builds an empty draft for a race whose seeding is known.
func NewDraft(kind Kind, highSeed TeamID, e Eligibility) Draft {
	d := Draft{HighSeed: highSeed, Settings: Picks{}}
	kind.Rules().Init(&d, e)
	return d
}

// NextStep derives the current step and asks p to phrase it.
func NextStep(ctx context.Context, d *Draft, kind Kind, p Presenter) (Step, error) {
	sk, prompt := kind.Rules().Derive(d)
	msg, err := p.Prompt(ctx, prompt)
	if err != nil {
		return Step{}, fmt.Errorf("render %s prompt: %w", sk.Phase, err)
	}
	return Step{Kind: sk, Message: msg}, nil
}

// Apply validates a against the current step and advances d on success.
// Illegal transitions come back as *RejectionError and leave d untouched.
func Apply(ctx context.Context, d *Draft, kind Kind, p Presenter, a Action) (string, error) {
	return kind.Rules().Apply(ctx, d, p, a)
}

// ApplyAs is Apply for a real participant: it also rejects actions from the
// team whose turn it is not. The caller must already know actor takes part
// in the race.
func ApplyAs(ctx context.Context, d *Draft, kind Kind, p Presenter, actor TeamID, a Action) (string, error) {
	if team, ok := ActiveTeam(d, kind); ok && d.role(actor) != team {
		return reject(ctx, p, Rejection{Kind: kind, Reason: ReasonWrongTurn, Team: team})
	}
	return Apply(ctx, d, kind, p, a)
}

// ActiveTeam reports whose turn it is; false once the draft is done.
func ActiveTeam(d *Draft, kind Kind) (Team, bool) {
	sk, _ := kind.Rules().Derive(d)
	if sk.Phase == PhaseDone {
		return 0, false
	}
	return sk.Team, true
}

func IsActiveTeam(d *Draft, kind Kind, team TeamID) bool {
	active, ok := ActiveTeam(d, kind)
	return ok && d.role(team) == active
}

// PickCount is the number of slots of the turn order that have been played.
// Answers to yes/no steps and bookkeeping flags do not count.
func (d *Draft) PickCount(kind Kind) int {
	return d.pickCount(kind.Catalog())
}

func (d *Draft) pickCount(c *Catalog) int {
	return int(d.SkippedBans) + c.Count(d.Settings)
}

func (d *Draft) role(team TeamID) Team {
	if team == d.HighSeed {
		return HighSeed
	}
	return LowSeed
}

// record writes one entry. Entries are never removed or overwritten and must
// be declared by the catalog.
func (d *Draft) record(c *Catalog, key, value string) {
	if !c.Declares(key) {
		panic(fmt.Sprintf("engine: %q is not declared by the catalog", key))
	}
	if _, ok := d.Settings[key]; ok {
		panic(fmt.Sprintf("engine: %q is already recorded", key))
	}
	if d.Settings == nil {
		d.Settings = Picks{}
	}
	d.Settings[key] = value
}
