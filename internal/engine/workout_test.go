package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcunha/anvil/internal/models"
)

func TestTodaysWorkoutResolvesFSL(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftSquat, "test-leader", 270)

	workout, err := eng.TodaysWorkout(ctx, models.LiftSquat)
	require.NoError(t, err)

	assert.Equal(t, models.LiftSquat, workout.Lift)
	assert.Equal(t, 1, workout.Week)
	assert.Equal(t, 270.0, workout.TrainingMax)

	require.Len(t, workout.MainWork, 3)
	assert.Equal(t, models.PrescribedSet{Percentage: 65, Weight: 175, Reps: "5"}, workout.MainWork[0])
	assert.Equal(t, models.PrescribedSet{Percentage: 85, Weight: 230, Reps: "5"}, workout.MainWork[2])

	require.Len(t, workout.Supplemental, 1)
	fsl := workout.Supplemental[0]
	// FSL resolves against the first main-work set; the 0 placeholder
	// never surfaces.
	assert.Equal(t, 65, fsl.Percentage)
	assert.Equal(t, 175.0, fsl.Weight)
	assert.Equal(t, 5, fsl.Sets)
	assert.Equal(t, "FSL", fsl.Type)
}

func TestTodaysWorkoutMissingConfig(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	_, err := eng.TodaysWorkout(ctx, models.LiftBench)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingConfig)

	var missing *MissingConfigError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "template", missing.Missing)

	// Template assigned but still no training max.
	tmplName := "test-leader"
	record := store.lifts[models.LiftBench]
	record.ActiveTemplate = &tmplName
	store.lifts[models.LiftBench] = record

	_, err = eng.TodaysWorkout(ctx, models.LiftBench)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "training max", missing.Missing)
}

func TestLogWorkoutRecordsEntry(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftSquat, "test-leader", 270)

	result, err := eng.LogWorkout(ctx, models.LiftSquat, []models.ActualSet{
		{Weight: 175, Reps: 5},
		{Weight: 205, Reps: 5},
		{Weight: 230, Reps: 5},
	}, nil, nil, "felt strong")
	require.NoError(t, err)

	assert.True(t, result.Logged)
	assert.Equal(t, "2025-03-10", result.Date)
	assert.False(t, result.NewPR)
	assert.False(t, result.WeekComplete)
	assert.ElementsMatch(t, []models.Lift{models.LiftBench, models.LiftDeadlift, models.LiftOHP}, result.LiftsRemaining)

	require.Len(t, store.log, 1)
	entry := store.log[0]
	assert.Equal(t, "test-leader", entry.Template)
	assert.Contains(t, entry.Prescribed, `"percentage":65`)
	assert.Contains(t, entry.Actual, `"weight":175`)
	assert.False(t, entry.Skipped)
	require.NotNil(t, entry.Notes)
	assert.Equal(t, "felt strong", *entry.Notes)
}

func TestLogWorkoutRejectsDuplicate(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftSquat, "test-leader", 270)

	_, err := eng.LogWorkout(ctx, models.LiftSquat, nil, nil, nil, "")
	require.NoError(t, err)

	_, err = eng.LogWorkout(ctx, models.LiftSquat, nil, nil, nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateLog)

	// Skipping an already-logged lift is rejected the same way.
	_, err = eng.SkipLift(ctx, models.LiftSquat, "tired")
	assert.ErrorIs(t, err, ErrDuplicateLog)
}

func TestLogWorkoutAMRAPSetsPR(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftBench, "test-anchor", 205)

	result, err := eng.LogWorkout(ctx, models.LiftBench, []models.ActualSet{{Weight: 175, Reps: 5}},
		intPtr(8), floatPtr(175), "")
	require.NoError(t, err)

	assert.True(t, result.NewPR)
	require.NotNil(t, result.PRDetails)
	assert.Equal(t, 175.0, result.PRDetails.Weight)
	assert.Equal(t, 8, result.PRDetails.Reps)
	assert.Equal(t, 222.0, result.PRDetails.Estimated1RM) // 175*8*0.0333+175 = 221.62
	assert.Nil(t, result.PRDetails.PreviousBestReps)

	record := store.lifts[models.LiftBench]
	require.NotNil(t, record.Estimated1RM)
	assert.Equal(t, 222.0, *record.Estimated1RM)
}

func TestPRMonotonicity(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	configureLift(store, models.LiftBench, "test-anchor", 205)

	_, err := eng.LogWorkout(ctx, models.LiftBench, nil, intPtr(8), floatPtr(175), "")
	require.NoError(t, err)

	// Same weight, fewer reps, next cycle: nothing changes.
	store.state.CycleID = 2
	result, err := eng.LogWorkout(ctx, models.LiftBench, nil, intPtr(6), floatPtr(175), "")
	require.NoError(t, err)
	assert.False(t, result.NewPR)
	assert.Equal(t, 8, store.prs[models.LiftBench][175].BestReps)

	// Equal reps: still no overwrite.
	store.state.CycleID = 3
	result, err = eng.LogWorkout(ctx, models.LiftBench, nil, intPtr(8), floatPtr(175), "")
	require.NoError(t, err)
	assert.False(t, result.NewPR)

	// Strictly more reps: PR row updates and reports the previous best.
	store.state.CycleID = 4
	result, err = eng.LogWorkout(ctx, models.LiftBench, nil, intPtr(10), floatPtr(175), "")
	require.NoError(t, err)
	assert.True(t, result.NewPR)
	require.NotNil(t, result.PRDetails.PreviousBestReps)
	assert.Equal(t, 8, *result.PRDetails.PreviousBestReps)
	assert.Equal(t, 10, store.prs[models.LiftBench][175].BestReps)
}

func TestWeekCompletionAdvances(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	for _, lift := range models.AllLifts() {
		configureLift(store, lift, "test-leader", 200)
	}
	store.state.CurrentWeek = 2

	for _, lift := range []models.Lift{models.LiftSquat, models.LiftBench, models.LiftDeadlift} {
		result, err := eng.LogWorkout(ctx, lift, nil, nil, nil, "")
		require.NoError(t, err)
		assert.False(t, result.WeekComplete)
		assert.Nil(t, result.WeekAdvanced)
	}

	result, err := eng.LogWorkout(ctx, models.LiftOHP, nil, nil, nil, "")
	require.NoError(t, err)
	assert.True(t, result.WeekComplete)
	require.NotNil(t, result.WeekAdvanced)
	assert.Equal(t, 3, result.WeekAdvanced.NewWeek)
	assert.Equal(t, 3, store.state.CurrentWeek)

	// The same lift can log again now that the triple refers to week 3.
	_, err = eng.LogWorkout(ctx, models.LiftSquat, nil, nil, nil, "")
	require.NoError(t, err)
}

func TestSkipLiftCountsTowardCompletion(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	for _, lift := range models.AllLifts() {
		configureLift(store, lift, "test-leader", 200)
	}

	for _, lift := range []models.Lift{models.LiftSquat, models.LiftBench, models.LiftDeadlift} {
		_, err := eng.LogWorkout(ctx, lift, nil, nil, nil, "")
		require.NoError(t, err)
	}

	result, err := eng.SkipLift(ctx, models.LiftOHP, "shoulder tweak")
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.True(t, result.WeekComplete)
	require.NotNil(t, result.WeekAdvanced)
	assert.Equal(t, 2, store.state.CurrentWeek)

	skipEntry := store.log[len(store.log)-1]
	assert.True(t, skipEntry.Skipped)
	assert.Equal(t, "[]", skipEntry.Prescribed)
	assert.Equal(t, "[]", skipEntry.Actual)
	require.NotNil(t, skipEntry.Notes)
	assert.Equal(t, "shoulder tweak", *skipEntry.Notes)
}

func TestSkipLiftWorksWithoutTemplate(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()

	result, err := eng.SkipLift(ctx, models.LiftOHP, "")
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, "none", store.log[0].Template)
}

func TestSkipWeekSkipsRemaining(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	for _, lift := range models.AllLifts() {
		configureLift(store, lift, "test-leader", 200)
	}
	store.state.CurrentWeek = 3

	_, err := eng.LogWorkout(ctx, models.LiftSquat, nil, nil, nil, "")
	require.NoError(t, err)

	result, err := eng.SkipWeek(ctx, "travel")
	require.NoError(t, err)

	assert.Equal(t, 3, result.WeekSkipped)
	assert.Equal(t, 1, result.AdvancedTo)
	assert.Equal(t, models.StatusPendingTMBump, result.NewStatus)
	// One real log plus three skips.
	assert.Len(t, store.log, 4)
}

func TestRescheduleLift(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	store.schedule[models.Monday] = models.LiftSquat

	result, err := eng.RescheduleLift(ctx, models.LiftSquat, models.Thursday)
	require.NoError(t, err)

	require.NotNil(t, result.OriginalDay)
	assert.Equal(t, models.Monday, *result.OriginalDay)
	assert.Equal(t, models.Thursday, result.NewDay)
	assert.Equal(t, models.LiftSquat, store.schedule[models.Thursday])
	_, stillMonday := store.schedule[models.Monday]
	assert.False(t, stillMonday)
}

func TestWeekCompletionIdempotent(t *testing.T) {
	eng, store := newTestEngine()
	ctx := context.Background()
	for _, lift := range models.AllLifts() {
		configureLift(store, lift, "test-leader", 200)
	}

	for _, lift := range models.AllLifts() {
		_, err := eng.LogWorkout(ctx, lift, nil, nil, nil, "")
		require.NoError(t, err)
	}

	// Week 1 stays complete after the advance to week 2.
	complete, remaining, err := eng.checkWeekComplete(ctx, 1, models.PhaseLeader, 1)
	require.NoError(t, err)
	assert.True(t, complete)
	assert.Empty(t, remaining)
}

func TestLogWorkoutRequiresTemplate(t *testing.T) {
	eng, _ := newTestEngine()
	ctx := context.Background()

	_, err := eng.LogWorkout(ctx, models.LiftDeadlift, nil, nil, nil, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingConfig))
	assert.True(t, IsBusinessError(err))
}
