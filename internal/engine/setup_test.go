package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcunha/anvil/internal/models"
)

func TestSetTested1RMComputesTM(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	tmplName := "test-leader"
	record := store.lifts[models.LiftSquat]
	record.ActiveTemplate = &tmplName
	store.lifts[models.LiftSquat] = record

	result, err := eng.SetTested1RM(ctx, models.LiftSquat, 300)
	require.NoError(t, err)

	assert.Equal(t, 300.0, result.Tested1RM)
	assert.Equal(t, 90, result.TMPercentage)
	assert.Equal(t, 270.0, result.NewTrainingMax)

	saved := store.lifts[models.LiftSquat]
	require.NotNil(t, saved.TrainingMax)
	assert.Equal(t, 270.0, *saved.TrainingMax)
}

func TestSetTested1RMDefaultsWithoutTemplate(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	result, err := eng.SetTested1RM(ctx, models.LiftOHP, 150)
	require.NoError(t, err)
	assert.Equal(t, 90, result.TMPercentage)
	assert.Equal(t, 135.0, result.NewTrainingMax)
}

func TestSetTested1RMDefaultsOnUnreadableTemplate(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	missing := "deleted-template"
	record := store.lifts[models.LiftBench]
	record.ActiveTemplate = &missing
	store.lifts[models.LiftBench] = record

	result, err := eng.SetTested1RM(ctx, models.LiftBench, 225)
	require.NoError(t, err)
	assert.Equal(t, 90, result.TMPercentage)
	assert.Equal(t, 205.0, result.NewTrainingMax)
}

func TestSetScheduleBijection(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	result, err := eng.SetSchedule(ctx, models.Monday, "squat")
	require.NoError(t, err)
	assert.False(t, result.Conflict)

	// Moving squat removes its old entry.
	result, err = eng.SetSchedule(ctx, models.Wednesday, "squat")
	require.NoError(t, err)
	assert.False(t, result.Conflict)
	require.NotNil(t, result.PreviousDayForLift)
	assert.Equal(t, models.Monday, *result.PreviousDayForLift)

	// Putting bench on squat's day reports the conflict.
	result, err = eng.SetSchedule(ctx, models.Wednesday, "bench")
	require.NoError(t, err)
	assert.True(t, result.Conflict)
	require.NotNil(t, result.PreviousLiftOnDay)
	assert.Equal(t, models.LiftSquat, *result.PreviousLiftOnDay)

	// The bijection holds: one lift per day, one day per lift.
	assert.Len(t, store.schedule, 1)
	assert.Equal(t, models.LiftBench, store.schedule[models.Wednesday])

	// Re-assigning the same lift to its own day is not a conflict.
	result, err = eng.SetSchedule(ctx, models.Wednesday, "bench")
	require.NoError(t, err)
	assert.False(t, result.Conflict)
}

func TestSetScheduleClearsDay(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.schedule[models.Friday] = models.LiftDeadlift

	result, err := eng.SetSchedule(ctx, models.Friday, "none")
	require.NoError(t, err)
	assert.True(t, result.Cleared)
	assert.Empty(t, store.schedule)
}

func TestSetScheduleRejectsUnknownLift(t *testing.T) {
	eng, _ := newTestEngine()
	_, err := eng.SetSchedule(context.Background(), models.Monday, "curls")
	assert.Error(t, err)
}

func TestResetProgramKeepsTMs(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftSquat, "test-leader", 280)
	store.state = models.ProgramState{
		CurrentWeek:           3,
		CurrentPhase:          models.PhaseAnchor,
		LeaderCyclesCompleted: 2,
		PhaseStatus:           models.StatusPendingDeloadOrTest,
		CycleID:               7,
	}

	result, err := eng.ResetProgram(ctx, true)
	require.NoError(t, err)

	assert.True(t, result.Reset)
	assert.Equal(t, 1, store.state.CurrentWeek)
	assert.Equal(t, models.PhaseLeader, store.state.CurrentPhase)
	assert.Equal(t, 0, store.state.LeaderCyclesCompleted)
	assert.Equal(t, models.StatusActive, store.state.PhaseStatus)
	// The cycle id is never reset.
	assert.Equal(t, 7, store.state.CycleID)
	// TMs untouched.
	assert.Equal(t, 280.0, *store.lifts[models.LiftSquat].TrainingMax)
}

func TestResetProgramRecomputesTMs(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	tested := 300.0
	bumped := 295.0
	tmplName := "test-leader"
	record := store.lifts[models.LiftSquat]
	record.Tested1RM = &tested
	record.TrainingMax = &bumped
	record.ActiveTemplate = &tmplName
	store.lifts[models.LiftSquat] = record

	result, err := eng.ResetProgram(ctx, false)
	require.NoError(t, err)
	assert.False(t, result.TMsKept)

	// Recomputed from the tested 1RM at the template's 90%.
	assert.Equal(t, 270.0, *store.lifts[models.LiftSquat].TrainingMax)
	// Lifts without a tested 1RM are left alone.
	assert.Nil(t, store.lifts[models.LiftBench].TrainingMax)
}

func TestBumpTM(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftDeadlift, "test-leader", 340)

	result, err := eng.BumpTM(ctx, models.LiftDeadlift, 10)
	require.NoError(t, err)
	assert.Equal(t, 340.0, result.PreviousTM)
	assert.Equal(t, 350.0, result.NewTM)

	// A zero bump is a hold, applied exactly.
	result, err = eng.BumpTM(ctx, models.LiftDeadlift, 0)
	require.NoError(t, err)
	assert.Equal(t, 350.0, result.NewTM)
}

func TestSkipTMBump(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftBench, "test-leader", 200)

	result, err := eng.SkipTMBump(ctx, models.LiftBench)
	require.NoError(t, err)
	assert.True(t, result.Held)
	require.NotNil(t, result.TrainingMax)
	assert.Equal(t, 200.0, *result.TrainingMax)
	assert.Equal(t, 200.0, *store.lifts[models.LiftBench].TrainingMax)
}

func TestSetTemplate(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	result, err := eng.SetTemplate(ctx, models.LiftSquat, "test-anchor")
	require.NoError(t, err)
	assert.Nil(t, result.PreviousTemplate)
	assert.Equal(t, "test-anchor", result.NewTemplate)
	assert.Equal(t, "Test Anchor", result.NewTemplateDisplayName)
	assert.Equal(t, "test-anchor", *store.lifts[models.LiftSquat].ActiveTemplate)
}

func TestSetTemplateUnknown(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.SetTemplate(context.Background(), models.LiftSquat, "smolov")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	var unknown *UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Len(t, unknown.Available, 2)
	assert.Contains(t, err.Error(), "test-leader")
}
