package hub

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() room.Config {
	return room.Config{
		Kind:    engine.MultiworldS3,
		Draft:   engine.NewDraft(engine.MultiworldS3, "high", engine.Eligibility{}),
		LowSeed: "low",
	}
}

func countRooms(t *testing.T, h *Hub) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	n, err := h.Count(ctx)
	require.NoError(t, err)
	return n
}

func TestHub_Ensure_Get_SamePointer(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	defer h.Shutdown()
	race := uuid.New()

	r1, err := h.Ensure(ctx, race, testConfig())
	require.NoError(t, err)
	r2, err := h.Room(ctx, race)
	require.NoError(t, err)
	r3, err := h.Ensure(ctx, race, testConfig())
	require.NoError(t, err)

	require.NotNil(t, r1)
	assert.Same(t, r1, r2)
	assert.Same(t, r1, r3)
}

func TestHub_UnknownRaceIsNil(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	defer h.Shutdown()

	r, err := h.Room(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestHub_StoppedRoomIsRemoved(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())
	defer h.Shutdown()
	race := uuid.New()

	cfg := testConfig()
	cfg.IdleTimeout = 20 * time.Millisecond
	r, err := h.Ensure(ctx, race, cfg)
	require.NoError(t, err)
	<-r.Done()

	assert.Eventually(t, func() bool { return countRooms(t, h) == 0 }, time.Second, 10*time.Millisecond)

	fresh, err := h.Ensure(ctx, race, testConfig())
	require.NoError(t, err)
	assert.NotSame(t, r, fresh)
}

func TestHub_ShutdownStopsRooms(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, zap.NewNop())

	r, err := h.Ensure(ctx, uuid.New(), testConfig())
	require.NoError(t, err)

	h.Shutdown()
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("room still running after hub shutdown")
	}
	<-h.Done()

	_, err = h.Room(ctx, uuid.New())
	assert.ErrorIs(t, err, room.ErrClosed)
}
