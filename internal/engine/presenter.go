package engine

import "context"

// Cue tells a presenter which prompt of the turn order it is phrasing.
type Cue string

const (
	CueGoFirst       Cue = "go_first"
	CueBan           Cue = "ban"
	CuePickFirst     Cue = "pick_first"
	CuePickTwo       Cue = "pick_two"
	CuePickSecond    Cue = "pick_second"
	CuePick          Cue = "pick"
	CuePickFinal     Cue = "pick_final"
	CueMixedDungeons Cue = "mixed_dungeons"
	CueDone          Cue = "done"
)

// Prompt is what a presenter needs to phrase the current step.
type Prompt struct {
	Kind      Kind
	Cue       Cue
	Team      Team
	Slot      int
	Skippable bool
	// Picks is a copy of the draft settings, flags included.
	Picks Picks
}

type OutcomeType string

const (
	OutcomeWentFirst OutcomeType = "went_first"
	OutcomeBanned    OutcomeType = "banned"
	OutcomePicked    OutcomeType = "picked"
	OutcomeSkipped   OutcomeType = "skipped"
	OutcomeAnswered  OutcomeType = "answered"
)

// Outcome describes a transition that was just applied.
type Outcome struct {
	Kind  Kind
	Type  OutcomeType
	Team  Team
	Phase Phase

	First bool // WentFirst

	Setting        string
	SettingDisplay string
	Value          string
	ValueDisplay   string
	Default        bool

	Answer bool // Answered

	Picks Picks
}

// Rejection describes an illegal transition.
type Rejection struct {
	Kind   Kind
	Reason Reason
	Phase  Phase
	// Team is the team whose turn it actually is, set for ReasonWrongTurn.
	Team      Team
	Options   []string
	Skippable bool
}

// Presenter phrases engine events for humans. The engine never formats
// display text itself; implementations may do I/O to resolve names.
type Presenter interface {
	Prompt(ctx context.Context, p Prompt) (string, error)
	Outcome(ctx context.Context, o Outcome) (string, error)
	Rejection(ctx context.Context, r Rejection) (string, error)
}

// Nop renders every message as the empty string.
type Nop struct{}

func (Nop) Prompt(context.Context, Prompt) (string, error)       { return "", nil }
func (Nop) Outcome(context.Context, Outcome) (string, error)     { return "", nil }
func (Nop) Rejection(context.Context, Rejection) (string, error) { return "", nil }
