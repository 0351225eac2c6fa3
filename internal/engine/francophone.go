package engine

import "context"

const (
	classicPage = "Settings classiques"
	hardPage    = "Settings difficiles"
)

// settingValue is a (setting, value) pair the rules test for.
type settingValue struct {
	Setting string
	Value   string
}

// francophone is the ruleset of the Tournoi Francophone. Its eligibility
// rules are data on the value so they can be audited next to the turn order.
type francophone struct {
	kind    Kind
	catalog *Catalog
	order   TurnOrder

	// hardFlag gates the alternatives marked hard.
	hardFlag string
	// From lateBanSlot on, a team may only lock a default if the flag
	// pickedFlags names for it is "yes".
	lateBanSlot int
	pickedFlags [2]string
	// exclusive pairs hide each other from the ban list once one of them is
	// set to a non-default value.
	exclusive [][2]string
	// Once every gate condition holds and gateKey is unset, the team that
	// made the previous pick answers a yes/no question stored under gateKey.
	gate    []settingValue
	gateKey string
	gateYes string
	gateNo  string
}

func newFrancophone(kind Kind, catalog *Catalog, order TurnOrder) *francophone {
	return &francophone{
		kind:        kind,
		catalog:     catalog,
		order:       order,
		hardFlag:    flagHardSettingsOK,
		lateBanSlot: 8,
		pickedFlags: [2]string{flagHighSeedHasPicked, flagLowSeedHasPicked},
		exclusive:   [][2]string{{"keysy", "keysanity"}},
		gate:        []settingValue{{"dungeon-er", "on"}, {"mixed-er", "on"}},
		gateKey:     settingMixedDungeons,
		gateYes:     "mixed",
		gateNo:      "separate",
	}
}

func (f *francophone) Kind() Kind        { return f.kind }
func (f *francophone) Catalog() *Catalog { return f.catalog }

func (f *francophone) Init(d *Draft, e Eligibility) {
	d.record(f.catalog, flagHardSettingsOK, okNo(e.HardSettingsOK))
	d.record(f.catalog, flagMQOK, okNo(e.MQOK))
}

func okNo(b bool) string {
	if b {
		return "ok"
	}
	return "no"
}

func (f *francophone) Derive(d *Draft) (StepKind, Prompt) {
	prompt := Prompt{Kind: f.kind, Picks: d.Settings.Clone()}
	if d.WentFirst == nil {
		prompt.Cue = CueGoFirst
		return StepKind{Phase: PhaseGoFirst, Team: HighSeed}, prompt
	}
	wentFirst := *d.WentFirst

	n := d.pickCount(f.catalog)
	if f.gateOpen(d) {
		team := f.order.Team(n-1, wentFirst)
		prompt.Cue = CueMixedDungeons
		prompt.Team = team
		prompt.Slot = n - 1
		return StepKind{Phase: PhaseBooleanChoice, Team: team}, prompt
	}
	if n >= f.order.Len() {
		prompt.Cue = CueDone
		prompt.Slot = n
		return StepKind{Phase: PhaseDone, Resolved: f.catalog.Resolve(d.Settings)}, prompt
	}

	slot := f.order.Slot(n)
	team := f.order.Team(n, wentFirst)
	hardOK := d.Settings[f.hardFlag] == "ok"
	prompt.Cue = slot.Cue
	prompt.Team = team
	prompt.Slot = n

	if slot.Action == SlotBan {
		prompt.Skippable = slot.Skippable
		return StepKind{
			Phase:             PhaseBan,
			Team:              team,
			AvailableSettings: f.banPages(d, hardOK),
			Skippable:         slot.Skippable,
		}, prompt
	}

	canBan := f.mayBan(d, n, team)
	skippable := slot.Skippable && canBan
	prompt.Skippable = skippable
	return StepKind{
		Phase:            PhasePick,
		Team:             team,
		AvailableChoices: f.pickPages(d, hardOK, canBan),
		Skippable:        skippable,
	}, prompt
}

// mayBan reports whether team may still lock a setting to its default at
// slot n.
func (f *francophone) mayBan(d *Draft, n int, team Team) bool {
	return n < f.lateBanSlot || d.Settings[Choose(team, f.pickedFlags[0], f.pickedFlags[1])] == "yes"
}

func (f *francophone) gateOpen(d *Draft) bool {
	if _, ok := d.Settings[f.gateKey]; ok {
		return false
	}
	for _, c := range f.gate {
		if d.Settings[c.Setting] != c.Value {
			return false
		}
	}
	return true
}

func (f *francophone) excluded(d *Draft, name string) bool {
	for _, pair := range f.exclusive {
		var other string
		switch name {
		case pair[0]:
			other = pair[1]
		case pair[1]:
			other = pair[0]
		default:
			continue
		}
		if v, ok := d.Settings[other]; ok && v != f.catalog.MustLookup(other).Default {
			return true
		}
	}
	return false
}

func (f *francophone) banPages(d *Draft, hardOK bool) BanSettings {
	var classic, hard []BanSetting
	for _, s := range f.catalog.Settings {
		if _, ok := d.Settings[s.Name]; ok || f.excluded(d, s.Name) {
			continue
		}
		isHard, hidden := false, s.AllHard()
		if hardOK {
			isHard, hidden = s.AllHard(), len(s.Other) == 0
		}
		switch {
		case hidden:
		case isHard:
			hard = append(hard, banSetting(s))
		default:
			classic = append(classic, banSetting(s))
		}
	}
	pages := BanSettings{{Name: classicPage, Settings: classic}}
	if hardOK && len(hard) > 0 {
		pages = append(pages, BanPage{Name: hardPage, Settings: hard})
	}
	return pages
}

func (f *francophone) pickPages(d *Draft, hardOK, canBan bool) DraftSettings {
	var classic, hard []DraftSetting
	for _, s := range f.catalog.Settings {
		if _, ok := d.Settings[s.Name]; ok {
			continue
		}
		var other []Choice
		isHard := false
		if hardOK {
			other, isHard = s.Other, s.AllHard()
		} else {
			for _, c := range s.Other {
				if !c.Hard {
					other = append(other, c)
				}
			}
		}
		if len(other) == 0 {
			continue
		}
		var options []DraftSettingChoice
		if canBan {
			options = append(options, DraftSettingChoice{Name: s.Default, Display: s.DefaultDisplay})
		}
		for _, c := range other {
			options = append(options, DraftSettingChoice{Name: c.Name, Display: c.Display})
		}
		ds := DraftSetting{Name: s.Name, Display: s.Display, Options: options, Description: s.Description}
		if isHard {
			hard = append(hard, ds)
		} else {
			classic = append(classic, ds)
		}
	}
	pages := DraftSettings{{Name: classicPage, Settings: classic}}
	if hardOK && len(hard) > 0 {
		pages = append(pages, DraftPage{Name: hardPage, Settings: hard})
	}
	return pages
}

func (f *francophone) Apply(ctx context.Context, d *Draft, p Presenter, a Action) (string, error) {
	return applyAction(ctx, f, hooks{picked: f.picked, answered: f.answered}, d, p, a)
}

func (f *francophone) picked(d *Draft, team Team, s Setting, value string) {
	if value == s.Default {
		return
	}
	flag := Choose(team, f.pickedFlags[0], f.pickedFlags[1])
	if _, ok := d.Settings[flag]; !ok {
		d.record(f.catalog, flag, "yes")
	}
}

func (f *francophone) answered(d *Draft, _ Team, value bool) {
	d.record(f.catalog, f.gateKey, yesNo(value, f.gateYes, f.gateNo))
}

func yesNo(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
