package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcunha/anvil/internal/models"
)

func TestAdvanceWeekIncrements(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	result, err := eng.AdvanceWeek(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PreviousWeek)
	assert.Equal(t, 2, result.NewWeek)
	assert.Equal(t, models.StatusActive, result.Status)
	assert.Equal(t, 2, store.state.CurrentWeek)
	assert.Equal(t, 1, store.state.CycleID)
}

func TestAdvanceWeekRollsOverFromWeek3(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.state.CurrentWeek = 3

	result, err := eng.AdvanceWeek(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, result.PreviousWeek)
	assert.Equal(t, 1, result.NewWeek)
	assert.Equal(t, models.StatusPendingTMBump, result.Status)
	assert.Equal(t, 1, store.state.CurrentWeek)
	// The cycle only advances once the TM bumps resolve.
	assert.Equal(t, 1, store.state.CycleID)
}

func TestFinalizeTMBumpsStartsNextLeaderCycle(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.state.PhaseStatus = models.StatusPendingTMBump

	result, err := eng.FinalizeTMBumps(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, result.NextStatus)
	assert.Equal(t, 1, store.state.LeaderCyclesCompleted)
	assert.Equal(t, 1, store.state.CurrentWeek)
	assert.Equal(t, 2, store.state.CycleID)
}

func TestFinalizeTMBumpsExhaustsLeaderBlock(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.state.PhaseStatus = models.StatusPendingTMBump
	store.state.LeaderCyclesCompleted = 1
	store.state.CycleID = 2

	result, err := eng.FinalizeTMBumps(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPendingDeloadOrTest, result.NextStatus)
	assert.Equal(t, 2, store.state.LeaderCyclesCompleted)
	// No new cycle starts when the leader block is exhausted.
	assert.Equal(t, 2, store.state.CycleID)
}

func TestFinalizeTMBumpsAnchorAlwaysParks(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.state.CurrentPhase = models.PhaseAnchor
	store.state.PhaseStatus = models.StatusPendingTMBump
	store.state.CycleID = 3

	result, err := eng.FinalizeTMBumps(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPendingDeloadOrTest, result.NextStatus)
	assert.Equal(t, 3, store.state.CycleID)
}

func TestSetPhaseTransitions(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.state.CurrentWeek = 2
	store.state.LeaderCyclesCompleted = 2
	store.state.PhaseStatus = models.StatusPendingDeloadOrTest
	store.state.CycleID = 3

	result, err := eng.SetPhase(ctx, models.PhaseAnchor)
	require.NoError(t, err)

	assert.Equal(t, models.PhaseLeader, result.PreviousPhase)
	assert.Equal(t, models.PhaseAnchor, result.NewPhase)
	assert.False(t, result.LeaderCyclesCompletedReset)
	assert.Equal(t, 1, store.state.CurrentWeek)
	assert.Equal(t, models.StatusActive, store.state.PhaseStatus)
	assert.Equal(t, 4, store.state.CycleID)
	// The counter survives until a leader phase starts again.
	assert.Equal(t, 2, store.state.LeaderCyclesCompleted)

	result, err = eng.SetPhase(ctx, models.PhaseLeader)
	require.NoError(t, err)
	assert.True(t, result.LeaderCyclesCompletedReset)
	assert.Equal(t, 0, store.state.LeaderCyclesCompleted)
	assert.Equal(t, 5, store.state.CycleID)
}

func TestSetWeekValidatesRange(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	result, err := eng.SetWeek(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PreviousWeek)
	assert.Equal(t, 3, store.state.CurrentWeek)
	// Only the week changes.
	assert.Equal(t, models.StatusActive, store.state.PhaseStatus)

	_, err = eng.SetWeek(ctx, 4)
	assert.Error(t, err)
	_, err = eng.SetWeek(ctx, 0)
	assert.Error(t, err)
}

func TestSetLeaderCyclesCompleted(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	result, err := eng.SetLeaderCyclesCompleted(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.PreviousCount)
	assert.Equal(t, 1, store.state.LeaderCyclesCompleted)

	_, err = eng.SetLeaderCyclesCompleted(ctx, -1)
	assert.Error(t, err)
}
