package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/command"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/room"
	wire "github.com/midoshouse/midos.house-sub000/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionConversion(t *testing.T) {
	for _, a := range []engine.Action{
		engine.GoFirst(true), engine.Ban("wincon"), engine.Pick("trials", "2"),
		engine.Skip(), engine.BooleanChoice(false),
	} {
		got, err := ToAction(FromAction(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ToAction(wire.Action{Type: "dance"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("!ban spawn", nil)
	require.NoError(t, err)
	assert.Equal(t, engine.Ban("spawn"), req.Action)

	req, err = ParseRequest("", &wire.Action{Type: "pick", Setting: "er", Value: "dungeon"})
	require.NoError(t, err)
	assert.Equal(t, engine.Pick("er", "dungeon"), req.Action)

	req, err = ParseRequest("!settings", nil)
	require.NoError(t, err)
	assert.True(t, req.List)

	_, err = ParseRequest("", nil)
	assert.ErrorIs(t, err, ErrNoAction)

	_, err = ParseRequest("!dance", nil)
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestStepListsOptions(t *testing.T) {
	first := true
	d := engine.NewDraft(engine.MultiworldS3, "t1", engine.Eligibility{})
	d.WentFirst = &first

	step := Step(engine.MultiworldS3, &d)
	require.NotNil(t, step)
	assert.True(t, step.Skippable)
	require.Len(t, step.Pages, 1)
	assert.Len(t, step.Pages[0].Settings, 8)
	assert.Equal(t, "wincon", step.Pages[0].Settings[0].Name)

	d.SkippedBans = 2
	step = Step(engine.MultiworldS3, &d)
	require.NotNil(t, step)
	assert.False(t, step.Skippable)
	wincon := step.Pages[0].Settings[0]
	require.Len(t, wincon.Options, 3)
	assert.Equal(t, "meds", wincon.Options[0].Name)
}

func TestStepOnFixedAnswerPhases(t *testing.T) {
	d := engine.NewDraft(engine.MultiworldS3, "t1", engine.Eligibility{})
	assert.Nil(t, Step(engine.MultiworldS3, &d))
}

func TestSnapshotEncodesDraftFlat(t *testing.T) {
	race := uuid.New()
	d := engine.NewDraft(engine.MultiworldS3, "t1", engine.Eligibility{})
	snap, err := Snapshot(race, room.Snapshot{Version: 3, Kind: engine.MultiworldS3, Phase: engine.PhaseGoFirst, Active: "t1", Draft: d})
	require.NoError(t, err)

	assert.Equal(t, race.String(), snap.Race)
	assert.Equal(t, "mw3", snap.Kind)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(snap.Draft, &raw))
	assert.Equal(t, "t1", raw["high_seed"])
	assert.Nil(t, raw["went_first"])
}

func TestCatalogMarksHardOptions(t *testing.T) {
	settings := Catalog(engine.TournoiFrancoS3)
	var found bool
	for _, s := range settings {
		if s.Name != "mixed-er" {
			continue
		}
		found = true
		require.Len(t, s.Options, 2)
		assert.False(t, s.Options[0].Hard)
		assert.True(t, s.Options[1].Hard)
	}
	assert.True(t, found)
}
