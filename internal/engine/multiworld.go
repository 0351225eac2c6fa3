package engine

import "context"

const multiworldPage = "All Settings"

// multiworld is the ruleset of the Multiworld tournaments: every setting is
// always on offer and picks may also lock the default.
type multiworld struct {
	kind    Kind
	catalog *Catalog
	order   TurnOrder
}

func newMultiworld(kind Kind, catalog *Catalog, order TurnOrder) *multiworld {
	return &multiworld{kind: kind, catalog: catalog, order: order}
}

func (m *multiworld) Kind() Kind        { return m.kind }
func (m *multiworld) Catalog() *Catalog { return m.catalog }

func (m *multiworld) Init(*Draft, Eligibility) {}

func (m *multiworld) Derive(d *Draft) (StepKind, Prompt) {
	prompt := Prompt{Kind: m.kind, Picks: d.Settings.Clone()}
	if d.WentFirst == nil {
		prompt.Cue = CueGoFirst
		return StepKind{Phase: PhaseGoFirst, Team: HighSeed}, prompt
	}

	n := d.pickCount(m.catalog)
	if n >= m.order.Len() {
		prompt.Cue = CueDone
		prompt.Slot = n
		return StepKind{Phase: PhaseDone, Resolved: m.catalog.Resolve(d.Settings)}, prompt
	}

	slot := m.order.Slot(n)
	team := m.order.Team(n, *d.WentFirst)
	prompt.Cue = slot.Cue
	prompt.Team = team
	prompt.Slot = n
	prompt.Skippable = slot.Skippable

	switch slot.Action {
	case SlotBan:
		var settings []BanSetting
		for _, s := range m.catalog.Settings {
			if _, ok := d.Settings[s.Name]; !ok {
				settings = append(settings, banSetting(s))
			}
		}
		return StepKind{
			Phase:             PhaseBan,
			Team:              team,
			AvailableSettings: BanSettings{{Name: multiworldPage, Settings: settings}},
			Skippable:         slot.Skippable,
		}, prompt
	default:
		var settings []DraftSetting
		for _, s := range m.catalog.Settings {
			if _, ok := d.Settings[s.Name]; ok {
				continue
			}
			options := []DraftSettingChoice{{Name: s.Default, Display: s.DefaultDisplay}}
			for _, c := range s.Other {
				options = append(options, DraftSettingChoice{Name: c.Name, Display: c.Display})
			}
			settings = append(settings, DraftSetting{Name: s.Name, Display: s.Display, Options: options, Description: s.Description})
		}
		return StepKind{
			Phase:            PhasePick,
			Team:             team,
			AvailableChoices: DraftSettings{{Name: multiworldPage, Settings: settings}},
			Skippable:        slot.Skippable,
		}, prompt
	}
}

func (m *multiworld) Apply(ctx context.Context, d *Draft, p Presenter, a Action) (string, error) {
	return applyAction(ctx, m, hooks{}, d, p, a)
}
