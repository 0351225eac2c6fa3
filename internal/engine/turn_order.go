package engine

import "fmt"

type SlotAction string

const (
	SlotBan  SlotAction = "ban"
	SlotPick SlotAction = "pick"
)

// Slot is one entry of a turn order. First is the acting team when the high
// seed chose to go first.
type Slot struct {
	Action    SlotAction
	First     Team
	Skippable bool
	Cue       Cue
}

// TurnOrder maps pick_count to the slot that is being played.
type TurnOrder []Slot

func (o TurnOrder) Len() int { return len(o) }

func (o TurnOrder) Slot(n int) Slot {
	if n < 0 || n >= len(o) {
		panic(fmt.Sprintf("engine: pick count %d outside turn order of %d slots", n, len(o)))
	}
	return o[n]
}

// Team mirrors the table when the high seed went second.
func (o TurnOrder) Team(n int, wentFirst bool) Team {
	t := o.Slot(n).First
	if !wentFirst {
		return t.Other()
	}
	return t
}

var multiworldS3Order = TurnOrder{
	{Action: SlotBan, First: HighSeed, Skippable: true, Cue: CueBan},
	{Action: SlotBan, First: LowSeed, Skippable: true, Cue: CueBan},
	{Action: SlotPick, First: HighSeed, Cue: CuePickFirst},
	{Action: SlotPick, First: LowSeed, Cue: CuePickTwo},
	{Action: SlotPick, First: LowSeed, Cue: CuePickSecond},
	{Action: SlotPick, First: HighSeed, Skippable: true, Cue: CuePickFinal},
}

var multiworldS4Order = TurnOrder{
	{Action: SlotBan, First: HighSeed, Skippable: true, Cue: CueBan},
	{Action: SlotBan, First: LowSeed, Skippable: true, Cue: CueBan},
	{Action: SlotPick, First: HighSeed, Skippable: true, Cue: CuePickFirst},
	{Action: SlotPick, First: LowSeed, Skippable: true, Cue: CuePickTwo},
	{Action: SlotPick, First: LowSeed, Skippable: true, Cue: CuePickSecond},
	{Action: SlotPick, First: HighSeed, Skippable: true, Cue: CuePick},
	{Action: SlotBan, First: LowSeed, Skippable: true, Cue: CueBan},
	{Action: SlotBan, First: HighSeed, Skippable: true, Cue: CueBan},
	{Action: SlotPick, First: LowSeed, Skippable: true, Cue: CuePick},
	{Action: SlotPick, First: HighSeed, Skippable: true, Cue: CuePickFinal},
}

// The last slot is only skippable for a team that may still ban, see
// francophone.lateBanSlot.
var francophoneS3Order = TurnOrder{
	{Action: SlotBan, First: HighSeed, Cue: CueBan},
	{Action: SlotBan, First: LowSeed, Cue: CueBan},
	{Action: SlotPick, First: HighSeed, Cue: CuePickFirst},
	{Action: SlotPick, First: LowSeed, Cue: CuePickTwo},
	{Action: SlotPick, First: LowSeed, Cue: CuePickSecond},
	{Action: SlotPick, First: HighSeed, Cue: CuePickTwo},
	{Action: SlotPick, First: HighSeed, Cue: CuePickSecond},
	{Action: SlotPick, First: LowSeed, Cue: CuePick},
	{Action: SlotPick, First: HighSeed, Cue: CuePick},
	{Action: SlotPick, First: LowSeed, Skippable: true, Cue: CuePickFinal},
}
