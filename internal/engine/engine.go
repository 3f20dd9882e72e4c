// Package engine implements the program logic on top of the state store:
// the phase/week/cycle state machine, the workout prescription and logging
// flow, PR tracking, and the setup and query operations exposed to the
// conversational front end.
package engine

import (
	"context"
	"time"

	"github.com/mcunha/anvil/internal/models"
)

// Store is the persistence surface the engine runs against. The SQL
// implementation lives in internal/storage; tests use an in-memory fake.
type Store interface {
	ProgramState(ctx context.Context) (models.ProgramState, error)
	SaveProgramState(ctx context.Context, state models.ProgramState) error

	Schedule(ctx context.Context) ([]models.ScheduleEntry, error)
	DayForLift(ctx context.Context, lift models.Lift) (*models.DayOfWeek, error)
	LiftForDay(ctx context.Context, day models.DayOfWeek) (*models.Lift, error)
	// AssignLift moves a lift to a day, removing any previous entry for
	// either side of the mapping, and reports what was displaced.
	AssignLift(ctx context.Context, day models.DayOfWeek, lift models.Lift) (prevLiftOnDay *models.Lift, prevDayForLift *models.DayOfWeek, err error)
	ClearDay(ctx context.Context, day models.DayOfWeek) error

	Lift(ctx context.Context, name models.Lift) (models.LiftRecord, error)
	Lifts(ctx context.Context) ([]models.LiftRecord, error)
	SaveLift(ctx context.Context, record models.LiftRecord) error

	AppendLog(ctx context.Context, entry models.WorkoutLogEntry) error
	History(ctx context.Context, lift *models.Lift, lastN int) ([]models.WorkoutLogEntry, error)
	LiftsLogged(ctx context.Context, week int, phase models.Phase, cycleID int) ([]models.Lift, error)
	HasLogEntry(ctx context.Context, lift models.Lift, week int, phase models.Phase, cycleID int) (bool, error)

	PRs(ctx context.Context, lift *models.Lift) ([]models.PR, error)
	// UpsertPR records an AMRAP result; the row is only created or
	// overwritten when reps strictly exceed the stored best at that weight.
	UpsertPR(ctx context.Context, pr models.PR) (isNew bool, previousBestReps *int, err error)
	BestEstimated1RM(ctx context.Context, lift models.Lift) (*float64, error)
}

// Catalog resolves template identifiers to parsed templates.
type Catalog interface {
	Template(name string) (*models.Template, error)
	All() ([]*models.Template, error)
}

// Engine composes the store, the template catalog and a clock. All mutation
// of program state goes through its methods; callers are expected to
// serialize operations (one in flight at a time).
type Engine struct {
	store   Store
	catalog Catalog
	now     func() time.Time
}

func New(store Store, catalog Catalog) *Engine {
	return &Engine{
		store:   store,
		catalog: catalog,
		now:     time.Now,
	}
}

// today returns the engine's calendar date as stored in log and PR rows.
func (e *Engine) today() string {
	return e.now().Format("2006-01-02")
}
