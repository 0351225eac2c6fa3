package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	t1 TeamID = "t1"
	t2 TeamID = "t2"
)

func boolPtr(b bool) *bool { return &b }

func mustApply(t *testing.T, d *Draft, kind Kind, a Action) {
	t.Helper()
	_, err := Apply(context.Background(), d, kind, Nop{}, a)
	require.NoError(t, err, "apply %+v", a)
}

func derive(t *testing.T, d *Draft, kind Kind) StepKind {
	t.Helper()
	step, err := NextStep(context.Background(), d, kind, Nop{})
	require.NoError(t, err)
	return step.Kind
}

func requireReason(t *testing.T, err error, reason Reason) {
	t.Helper()
	var rej *RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, reason, rej.Reason)
}

func TestFreshDraftStartsWithGoFirst(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			d := NewDraft(kind, t1, Eligibility{})
			sk := derive(t, &d, kind)
			assert.Equal(t, PhaseGoFirst, sk.Phase)
			team, ok := ActiveTeam(&d, kind)
			require.True(t, ok)
			assert.Equal(t, HighSeed, team)
			assert.True(t, IsActiveTeam(&d, kind, t1))
			assert.False(t, IsActiveTeam(&d, kind, t2))
		})
	}
}

func TestMultiworldScenarios(t *testing.T) {
	ctx := context.Background()
	d := NewDraft(MultiworldS3, t1, Eligibility{})

	// high seed goes first and bans first
	_, err := ApplyAs(ctx, &d, MultiworldS3, Nop{}, t1, GoFirst(true))
	require.NoError(t, err)
	sk := derive(t, &d, MultiworldS3)
	assert.Equal(t, PhaseBan, sk.Phase)
	assert.Equal(t, HighSeed, sk.Team)
	assert.True(t, sk.Skippable)

	// the other team is turned away without touching the draft
	before := d.Settings.Clone()
	_, err = ApplyAs(ctx, &d, MultiworldS3, Nop{}, t2, Ban("wincon"))
	requireReason(t, err, ReasonWrongTurn)
	assert.True(t, errors.Is(err, ErrWrongTurn))
	assert.Equal(t, before, d.Settings)

	// a ban locks the default
	_, err = ApplyAs(ctx, &d, MultiworldS3, Nop{}, t1, Ban("wincon"))
	require.NoError(t, err)
	assert.Equal(t, "meds", d.Settings["wincon"])
	sk = derive(t, &d, MultiworldS3)
	assert.Equal(t, PhaseBan, sk.Phase)
	assert.Equal(t, LowSeed, sk.Team)
	_, ok := sk.AvailableSettings.Get("wincon")
	assert.False(t, ok)

	mustApply(t, &d, MultiworldS3, Skip())
	mustApply(t, &d, MultiworldS3, Pick("er", "dungeon"))
	mustApply(t, &d, MultiworldS3, Pick("trials", "2"))
	mustApply(t, &d, MultiworldS3, Pick("shops", "4"))
	sk = derive(t, &d, MultiworldS3)
	require.Equal(t, PhasePick, sk.Phase)
	assert.True(t, sk.Skippable)
	mustApply(t, &d, MultiworldS3, Pick("spawn", "random"))

	sk = derive(t, &d, MultiworldS3)
	require.Equal(t, PhaseDone, sk.Phase)
	assert.Len(t, sk.Resolved, len(multiworldS3Catalog.Settings))
	assert.Equal(t, Picks{
		"wincon":   "meds",
		"dungeons": "tournament",
		"er":       "dungeon",
		"trials":   "2",
		"shops":    "4",
		"scrubs":   "affordable",
		"fountain": "closed",
		"spawn":    "random",
	}, sk.Resolved)

	_, ok = ActiveTeam(&d, MultiworldS3)
	assert.False(t, ok)
	_, err = Apply(ctx, &d, MultiworldS3, Nop{}, Skip())
	requireReason(t, err, ReasonCompleted)
}

func TestMultiworldTurnOrderIsDeterminedByWentFirst(t *testing.T) {
	want := map[bool][]Team{
		true:  {HighSeed, LowSeed, HighSeed, LowSeed, LowSeed, HighSeed},
		false: {LowSeed, HighSeed, LowSeed, HighSeed, HighSeed, LowSeed},
	}
	for wentFirst, teams := range want {
		d := NewDraft(MultiworldS3, t1, Eligibility{})
		mustApply(t, &d, MultiworldS3, GoFirst(wentFirst))
		var got []Team
		for {
			sk := derive(t, &d, MultiworldS3)
			if sk.Phase == PhaseDone {
				break
			}
			got = append(got, sk.Team)
			if sk.Skippable {
				mustApply(t, &d, MultiworldS3, Skip())
				continue
			}
			mustApply(t, &d, MultiworldS3, Ban(sk.AvailableChoices.Names()[0]))
		}
		assert.Equal(t, teams, got, "went_first=%v", wentFirst)
	}
	for n := range multiworldS3Order {
		assert.Equal(t, multiworldS3Order.Team(n, true), multiworldS3Order.Team(n, false).Other())
	}
}

func TestTurnOrderSlotOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { multiworldS3Order.Slot(6) })
	assert.Panics(t, func() { francophoneS3Order.Slot(-1) })
}

func TestApplyRejections(t *testing.T) {
	fresh := func() Draft { return NewDraft(MultiworldS3, t1, Eligibility{}) }
	started := func() Draft {
		d := fresh()
		d.WentFirst = boolPtr(true)
		return d
	}
	picking := func() Draft {
		d := started()
		d.SkippedBans = 2
		return d
	}
	cases := []struct {
		name   string
		setup  func() Draft
		action Action
		reason Reason
	}{
		{"pick before go first", fresh, Pick("er", "dungeon"), ReasonFirstPickPending},
		{"skip before go first", fresh, Skip(), ReasonFirstPickPending},
		{"go first twice", started, GoFirst(false), ReasonFirstPickChosen},
		{"ban unknown setting", started, Ban("nope"), ReasonUnknownSetting},
		{"pick during bans", started, Pick("er", "dungeon"), ReasonBanValue},
		{"pick unknown value", picking, Pick("er", "mixed"), ReasonInvalidValue},
		{"pick unknown setting", picking, Pick("nope", "x"), ReasonUnknownSetting},
		{"skip first pick", picking, Skip(), ReasonNotSkippable},
		{"yes outside a question", picking, BooleanChoice(true), ReasonNotYesNo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.setup()
			before, err := json.Marshal(d)
			require.NoError(t, err)
			_, err = Apply(context.Background(), &d, MultiworldS3, Nop{}, tc.action)
			requireReason(t, err, tc.reason)
			assert.True(t, IsRejection(err))
			after, err := json.Marshal(d)
			require.NoError(t, err)
			assert.JSONEq(t, string(before), string(after))
		})
	}
}

func TestInvalidActionType(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			d := NewDraft(kind, t1, Eligibility{})
			for _, a := range []Action{{}, {Type: "veto", Setting: "camc"}} {
				_, err := Apply(context.Background(), &d, kind, Nop{}, a)
				require.ErrorIs(t, err, ErrInvalidAction)
				assert.False(t, IsRejection(err))
			}
			mustApply(t, &d, kind, GoFirst(true))
			_, err := ApplyAs(context.Background(), &d, kind, Nop{}, t1, Action{})
			require.ErrorIs(t, err, ErrInvalidAction)
			assert.Equal(t, uint8(0), d.SkippedBans)
		})
	}
}

func TestLockedSettingRejection(t *testing.T) {
	d := NewDraft(MultiworldS3, t1, Eligibility{})
	mustApply(t, &d, MultiworldS3, GoFirst(true))
	mustApply(t, &d, MultiworldS3, Ban("er"))

	var got Rejection
	p := recordingPresenter{rejection: &got}
	_, err := Apply(context.Background(), &d, MultiworldS3, p, Ban("er"))
	requireReason(t, err, ReasonSettingLocked)
	assert.True(t, got.Skippable)
	assert.NotContains(t, got.Options, "er")
	assert.Len(t, got.Options, len(multiworldS3Catalog.Settings)-1)
}

func TestBooleanChoiceDuringGoFirstMeansGoFirst(t *testing.T) {
	for _, kind := range Kinds() {
		d := NewDraft(kind, t1, Eligibility{})
		mustApply(t, &d, kind, BooleanChoice(false))
		require.NotNil(t, d.WentFirst)
		assert.False(t, *d.WentFirst)
	}
}

func TestMultiworldS4HasSecondBanRound(t *testing.T) {
	d := NewDraft(MultiworldS4, t1, Eligibility{})
	mustApply(t, &d, MultiworldS4, GoFirst(true))
	phases := []Phase{}
	teams := []Team{}
	for {
		sk := derive(t, &d, MultiworldS4)
		if sk.Phase == PhaseDone {
			break
		}
		assert.True(t, sk.Skippable)
		phases = append(phases, sk.Phase)
		teams = append(teams, sk.Team)
		mustApply(t, &d, MultiworldS4, Skip())
	}
	assert.Equal(t, []Phase{PhaseBan, PhaseBan, PhasePick, PhasePick, PhasePick, PhasePick, PhaseBan, PhaseBan, PhasePick, PhasePick}, phases)
	assert.Equal(t, []Team{HighSeed, LowSeed, HighSeed, LowSeed, LowSeed, HighSeed, LowSeed, HighSeed, LowSeed, HighSeed}, teams)
	assert.Equal(t, uint8(10), d.SkippedBans)
	assert.Empty(t, d.Settings)
}

func TestFrancophoneInitRecordsEligibility(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: true})
	assert.Equal(t, Picks{"hard_settings_ok": "ok", "mq_ok": "no"}, d.Settings)
	assert.Equal(t, 0, d.PickCount(TournoiFrancoS3))
}

func TestFrancophoneMixedDungeonsQuestion(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: true})
	mustApply(t, &d, TournoiFrancoS3, GoFirst(true))
	mustApply(t, &d, TournoiFrancoS3, Ban("camc"))
	mustApply(t, &d, TournoiFrancoS3, Ban("deku"))
	// slot 2 high seed, slot 3 low seed
	mustApply(t, &d, TournoiFrancoS3, Pick("dungeon-er", "on"))
	sk := derive(t, &d, TournoiFrancoS3)
	require.Equal(t, LowSeed, sk.Team)
	mustApply(t, &d, TournoiFrancoS3, Pick("mixed-er", "on"))

	sk = derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhaseBooleanChoice, sk.Phase)
	assert.Equal(t, LowSeed, sk.Team, "asked to the team that made the last pick")
	assert.Equal(t, francophoneS3Order.Team(3, true), sk.Team)

	_, err := Apply(context.Background(), &d, TournoiFrancoS3, Nop{}, Pick("cows", "on"))
	requireReason(t, err, ReasonYesNoPending)
	_, err = Apply(context.Background(), &d, TournoiFrancoS3, Nop{}, Skip())
	requireReason(t, err, ReasonYesNoPending)

	mustApply(t, &d, TournoiFrancoS3, BooleanChoice(true))
	assert.Equal(t, "mixed", d.Settings["mixed-dungeons"])
	assert.Equal(t, 4, d.PickCount(TournoiFrancoS3))
	sk = derive(t, &d, TournoiFrancoS3)
	assert.Equal(t, PhasePick, sk.Phase)
	assert.Equal(t, LowSeed, sk.Team)
}

func TestFrancophoneMixedDungeonsQuestionAfterSecondPick(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: true})
	d.WentFirst = boolPtr(false)
	d.Settings["camc"] = "on"
	d.Settings["deku"] = "closed"
	d.Settings["dungeon-er"] = "on" // slot 2, low seed
	d.Settings["cows"] = "on"       // slot 3, high seed
	d.Settings["mixed-er"] = "on"   // slot 4, high seed
	sk := derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhaseBooleanChoice, sk.Phase)
	assert.Equal(t, HighSeed, sk.Team)
	mustApply(t, &d, TournoiFrancoS3, BooleanChoice(false))
	assert.Equal(t, "separate", d.Settings["mixed-dungeons"])
	// slot 5 goes back to the low seed
	assert.Equal(t, LowSeed, derive(t, &d, TournoiFrancoS3).Team)
}

func TestFrancophoneHardSettings(t *testing.T) {
	cases := []struct {
		name       string
		hardOK     bool
		banPages   []string
		hiddenBan  string
		pickHidden string
		hardOption bool
	}{
		{name: "without hard settings", hardOK: false, banPages: []string{classicPage}, hiddenBan: "mixed-er", pickHidden: "reachable"},
		{name: "with hard settings", hardOK: true, banPages: []string{classicPage, hardPage}, hardOption: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: tc.hardOK})
			mustApply(t, &d, TournoiFrancoS3, GoFirst(true))
			sk := derive(t, &d, TournoiFrancoS3)
			require.Equal(t, PhaseBan, sk.Phase)
			assert.False(t, sk.Skippable)
			var pages []string
			for _, p := range sk.AvailableSettings {
				pages = append(pages, p.Name)
			}
			assert.Equal(t, tc.banPages, pages)
			if tc.hiddenBan != "" {
				_, ok := sk.AvailableSettings.Get(tc.hiddenBan)
				assert.False(t, ok)
			}

			mustApply(t, &d, TournoiFrancoS3, Ban("camc"))
			mustApply(t, &d, TournoiFrancoS3, Ban("deku"))
			sk = derive(t, &d, TournoiFrancoS3)
			require.Equal(t, PhasePick, sk.Phase)
			if tc.pickHidden != "" {
				_, ok := sk.AvailableChoices.Get(tc.pickHidden)
				assert.False(t, ok)
			}
			skulls, ok := sk.AvailableChoices.Get("skulls")
			require.True(t, ok)
			_, ok = skulls.Option("all")
			assert.Equal(t, tc.hardOption, ok)
		})
	}
}

func TestSettingsPages(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: true})
	mustApply(t, &d, TournoiFrancoS3, GoFirst(true))
	sk := derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhaseBan, sk.Phase)

	bans := sk.AvailableSettings
	first, ok := bans.Page(0)
	require.True(t, ok)
	assert.Equal(t, classicPage, first.Name)
	_, ok = bans.Page(-1)
	assert.False(t, ok)
	_, ok = bans.Page(len(bans))
	assert.False(t, ok)
	assert.Len(t, bans.All(), bans.NumSettings())

	mustApply(t, &d, TournoiFrancoS3, Ban("camc"))
	mustApply(t, &d, TournoiFrancoS3, Ban("deku"))
	sk = derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhasePick, sk.Phase)

	picks := sk.AvailableChoices
	_, ok = picks.Page(0)
	assert.True(t, ok)
	_, ok = picks.Page(len(picks))
	assert.False(t, ok)
	assert.Len(t, picks.All(), picks.NumSettings())
}

func TestFrancophoneS4(t *testing.T) {
	assert.True(t, TournoiFrancoS4.Francophone())
	assert.False(t, MultiworldS4.Francophone())
	assert.Equal(t, "Tournoi Francophone S4", TournoiFrancoS4.String())
	k, err := ParseKind("fr4")
	require.NoError(t, err)
	assert.Equal(t, TournoiFrancoS4, k)

	d := NewDraft(TournoiFrancoS4, t1, Eligibility{MQOK: true})
	assert.Equal(t, Picks{"hard_settings_ok": "no", "mq_ok": "ok"}, d.Settings)
	mustApply(t, &d, TournoiFrancoS4, GoFirst(false))
	sk := derive(t, &d, TournoiFrancoS4)
	require.Equal(t, PhaseBan, sk.Phase)
	assert.Equal(t, LowSeed, sk.Team)
	_, ok := sk.AvailableSettings.Get("start-weirdegg")
	assert.True(t, ok)
	_, ok = sk.AvailableSettings.Get("weirdegg")
	assert.False(t, ok)

	mustApply(t, &d, TournoiFrancoS4, Ban("camc"))
	mustApply(t, &d, TournoiFrancoS4, Ban("deku"))
	sk = derive(t, &d, TournoiFrancoS4)
	require.Equal(t, PhasePick, sk.Phase)
	souls, ok := sk.AvailableChoices.Get("souls")
	require.True(t, ok)
	assert.Equal(t, []string{"off", "bosses"}, souls.OptionNames())
	_, ok = sk.AvailableChoices.Get("keysanity")
	assert.False(t, ok, "keysanity only has hard alternatives")

	_, err = Apply(context.Background(), &d, TournoiFrancoS4, Nop{}, Pick("souls", "all-regional"))
	requireReason(t, err, ReasonInvalidValue)
	mustApply(t, &d, TournoiFrancoS4, Pick("bridge", "2precompleted"))
	assert.Equal(t, "yes", d.Settings["low_seed_has_picked"])
}

func TestFrancophoneKeysyExcludesKeysanity(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: true})
	d.WentFirst = boolPtr(true)
	d.Settings["keysy"] = "on"
	sk := derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhaseBan, sk.Phase)
	_, ok := sk.AvailableSettings.Get("keysanity")
	assert.False(t, ok)

	d.Settings = Picks{"hard_settings_ok": "ok", "keysanity": "off"}
	sk = derive(t, &d, TournoiFrancoS3)
	_, ok = sk.AvailableSettings.Get("keysy")
	assert.True(t, ok)
}

func TestFrancophoneLateBans(t *testing.T) {
	// slots 0 to 7 played without the high seed ever picking a non-default
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{})
	d.WentFirst = boolPtr(true)
	for _, name := range []string{"camc", "deku", "card", "cows", "shops", "scrubs", "warps", "dot"} {
		d.Settings[name] = catalogDefault(t, name)
	}
	d.Settings["low_seed_has_picked"] = "yes"

	sk := derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhasePick, sk.Phase)
	require.Equal(t, HighSeed, sk.Team)
	fountain, ok := sk.AvailableChoices.Get("fountain")
	require.True(t, ok)
	assert.Equal(t, []string{"open"}, fountain.OptionNames())
	_, err := Apply(context.Background(), &d, TournoiFrancoS3, Nop{}, Ban("fountain"))
	requireReason(t, err, ReasonInvalidValue)

	mustApply(t, &d, TournoiFrancoS3, Pick("fountain", "open"))
	assert.Equal(t, "yes", d.Settings["high_seed_has_picked"])

	// the low seed picked before, so it may ban and skip on the last slot
	sk = derive(t, &d, TournoiFrancoS3)
	require.Equal(t, LowSeed, sk.Team)
	assert.True(t, sk.Skippable)
	boss, ok := sk.AvailableChoices.Get("boss-er")
	require.True(t, ok)
	assert.Equal(t, []string{"off", "on"}, boss.OptionNames())
}

func TestFrancophoneFinalSlotNotSkippableWithoutPick(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{})
	d.WentFirst = boolPtr(true)
	d.SkippedBans = 9
	sk := derive(t, &d, TournoiFrancoS3)
	require.Equal(t, PhasePick, sk.Phase)
	assert.False(t, sk.Skippable)
	_, err := Apply(context.Background(), &d, TournoiFrancoS3, Nop{}, Skip())
	requireReason(t, err, ReasonNotSkippable)
}

func TestPickRecordsFlagOnlyOnce(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{})
	d.WentFirst = boolPtr(true)
	d.SkippedBans = 2
	mustApply(t, &d, TournoiFrancoS3, Pick("cows", "on")) // slot 2 high seed
	assert.Equal(t, "yes", d.Settings["high_seed_has_picked"])
	_, set := d.Settings["low_seed_has_picked"]
	assert.False(t, set)
	mustApply(t, &d, TournoiFrancoS3, Pick("shops", "off")) // slot 3 low seed, default
	_, set = d.Settings["low_seed_has_picked"]
	assert.False(t, set)
}

func TestRecordPanicsOnUndeclaredOrRepeatedKey(t *testing.T) {
	d := NewDraft(MultiworldS3, t1, Eligibility{})
	assert.Panics(t, func() { d.record(multiworldS3Catalog, "nope", "x") })
	d.record(multiworldS3Catalog, "er", "off")
	assert.Panics(t, func() { d.record(multiworldS3Catalog, "er", "dungeon") })
}

func TestCompleteRandomly(t *testing.T) {
	bounds := map[Kind]int{MultiworldS3: 6, MultiworldS4: 10, TournoiFrancoS3: 11, TournoiFrancoS4: 11}
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			for seed := int64(0); seed < 200; seed++ {
				rng := rand.New(rand.NewSource(seed))
				d := NewDraft(kind, t1, Eligibility{HardSettingsOK: seed%2 == 0, MQOK: seed%3 == 0})
				picks, steps := completeRandomly(d, kind, rng)
				assert.LessOrEqual(t, steps, bounds[kind], "seed %d", seed)
				for k := range picks {
					assert.True(t, kind.Catalog().Declares(k), "seed %d wrote %q", seed, k)
				}
				for k, v := range d.Settings {
					assert.Equal(t, v, picks[k], "seed %d changed %q", seed, k)
				}
			}
		})
	}
}

func TestCompleteRandomlyIsReproducible(t *testing.T) {
	d := NewDraft(TournoiFrancoS3, t1, Eligibility{HardSettingsOK: true})
	a := CompleteRandomly(d, TournoiFrancoS3, rand.New(rand.NewSource(42)))
	b := CompleteRandomly(d, TournoiFrancoS3, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
	assert.Equal(t, Picks{"hard_settings_ok": "ok", "mq_ok": "no"}, d.Settings)
}

func TestSettingsOnlyGrow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, kind := range Kinds() {
		d := NewDraft(kind, t1, Eligibility{HardSettingsOK: true})
		prev := d.Settings.Clone()
		for i := 0; i < 100; i++ {
			sk := derive(t, &d, kind)
			if sk.Phase == PhaseDone {
				break
			}
			// throw a mix of legal and illegal actions at the draft
			actions := []Action{Skip(), GoFirst(true), BooleanChoice(rng.Intn(2) == 0), Ban("camc"), Pick("er", "dungeon"), Pick("cows", "on")}
			if all := sk.AvailableChoices.All(); len(all) > 0 {
				s := all[rng.Intn(len(all))]
				actions = append(actions, Pick(s.Name, s.Options[rng.Intn(len(s.Options))].Name))
			}
			if all := sk.AvailableSettings.All(); len(all) > 0 {
				actions = append(actions, Ban(all[rng.Intn(len(all))].Name))
			}
			_, _ = Apply(context.Background(), &d, kind, Nop{}, actions[rng.Intn(len(actions))])
			for k, v := range prev {
				require.Equal(t, v, d.Settings[k], "%s overwrote %q", kind, k)
			}
			prev = d.Settings.Clone()
		}
	}
}

func TestNextStepIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, kind := range Kinds() {
		d := NewDraft(kind, t1, Eligibility{HardSettingsOK: true})
		for {
			a := derive(t, &d, kind)
			b := derive(t, &d, kind)
			require.Equal(t, a, b)
			if a.Phase == PhaseDone {
				break
			}
			advanceRandomly(t, &d, kind, a, rng)
		}
	}
}

func TestDraftJSONRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, kind := range Kinds() {
		d := NewDraft(kind, t1, Eligibility{HardSettingsOK: true, MQOK: true})
		for {
			b, err := json.Marshal(d)
			require.NoError(t, err)
			var got Draft
			require.NoError(t, json.Unmarshal(b, &got))
			require.Equal(t, d, got)

			sk := derive(t, &d, kind)
			if sk.Phase == PhaseDone {
				break
			}
			advanceRandomly(t, &d, kind, sk, rng)
		}
	}
}

func TestDraftJSONLayout(t *testing.T) {
	d := Draft{HighSeed: t1, Settings: Picks{"wincon": "meds"}}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"high_seed":"t1","went_first":null,"skipped_bans":0,"wincon":"meds"}`, string(b))

	var got Draft
	require.NoError(t, json.Unmarshal([]byte(`{"high_seed":"t2","went_first":false,"er":"dungeon"}`), &got))
	require.NotNil(t, got.WentFirst)
	assert.False(t, *got.WentFirst)
	assert.Equal(t, uint8(0), got.SkippedBans)
	assert.Equal(t, Picks{"er": "dungeon"}, got.Settings)

	assert.Error(t, json.Unmarshal([]byte(`{"high_seed":"t1","er":3}`), &got))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("fr3")
	require.NoError(t, err)
	assert.Equal(t, TournoiFrancoS3, k)
	_, err = ParseKind("s7")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Panics(t, func() { Kind("s7").Rules() })
}

func TestPresenterErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	d := NewDraft(MultiworldS3, t1, Eligibility{})
	_, err := NextStep(context.Background(), &d, MultiworldS3, failingPresenter{boom})
	assert.ErrorIs(t, err, boom)

	_, err = Apply(context.Background(), &d, MultiworldS3, failingPresenter{boom}, GoFirst(true))
	assert.ErrorIs(t, err, boom)
	assert.False(t, IsRejection(err))
	assert.Nil(t, d.WentFirst, "draft must stay untouched when the outcome cannot be rendered")
}

func advanceRandomly(t *testing.T, d *Draft, kind Kind, sk StepKind, rng *rand.Rand) {
	t.Helper()
	var a Action
	switch sk.Phase {
	case PhaseGoFirst:
		a = GoFirst(rng.Intn(2) == 0)
	case PhaseBooleanChoice:
		a = BooleanChoice(rng.Intn(2) == 0)
	case PhaseBan:
		all := sk.AvailableSettings.All()
		a = Ban(all[rng.Intn(len(all))].Name)
	case PhasePick:
		all := sk.AvailableChoices.All()
		s := all[rng.Intn(len(all))]
		a = Pick(s.Name, s.Options[rng.Intn(len(s.Options))].Name)
	}
	mustApply(t, d, kind, a)
}

func catalogDefault(t *testing.T, name string) string {
	t.Helper()
	return francophoneS3Catalog.MustLookup(name).Default
}

type recordingPresenter struct {
	Nop
	rejection *Rejection
}

func (p recordingPresenter) Rejection(_ context.Context, r Rejection) (string, error) {
	*p.rejection = r
	return string(r.Reason), nil
}

type failingPresenter struct{ err error }

func (p failingPresenter) Prompt(context.Context, Prompt) (string, error)       { return "", p.err }
func (p failingPresenter) Outcome(context.Context, Outcome) (string, error)     { return "", p.err }
func (p failingPresenter) Rejection(context.Context, Rejection) (string, error) { return "", p.err }
