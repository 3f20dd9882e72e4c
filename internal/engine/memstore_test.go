package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mcunha/anvil/internal/models"
	"github.com/mcunha/anvil/internal/templates"
)

// memStore is an in-memory Store so every test runs against fresh state.
type memStore struct {
	state    models.ProgramState
	schedule map[models.DayOfWeek]models.Lift
	lifts    map[models.Lift]models.LiftRecord
	log      []models.WorkoutLogEntry
	prs      map[models.Lift]map[float64]models.PR
}

func newMemStore() *memStore {
	store := &memStore{
		state: models.ProgramState{
			CurrentWeek:  1,
			CurrentPhase: models.PhaseLeader,
			PhaseStatus:  models.StatusActive,
			CycleID:      1,
		},
		schedule: make(map[models.DayOfWeek]models.Lift),
		lifts:    make(map[models.Lift]models.LiftRecord),
		prs:      make(map[models.Lift]map[float64]models.PR),
	}
	increments := map[models.Lift]float64{
		models.LiftSquat:    10,
		models.LiftBench:    5,
		models.LiftDeadlift: 10,
		models.LiftOHP:      5,
	}
	for _, lift := range models.AllLifts() {
		store.lifts[lift] = models.LiftRecord{Name: lift, TMIncrement: increments[lift]}
	}
	return store
}

func (m *memStore) ProgramState(context.Context) (models.ProgramState, error) {
	return m.state, nil
}

func (m *memStore) SaveProgramState(_ context.Context, state models.ProgramState) error {
	m.state = state
	return nil
}

func (m *memStore) Schedule(context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	for day, lift := range m.schedule {
		entries = append(entries, models.ScheduleEntry{Day: day, Lift: lift})
	}
	return entries, nil
}

func (m *memStore) DayForLift(_ context.Context, lift models.Lift) (*models.DayOfWeek, error) {
	for day, assigned := range m.schedule {
		if assigned == lift {
			d := day
			return &d, nil
		}
	}
	return nil, nil
}

func (m *memStore) LiftForDay(_ context.Context, day models.DayOfWeek) (*models.Lift, error) {
	if lift, ok := m.schedule[day]; ok {
		return &lift, nil
	}
	return nil, nil
}

func (m *memStore) AssignLift(ctx context.Context, day models.DayOfWeek, lift models.Lift) (*models.Lift, *models.DayOfWeek, error) {
	prevLift, _ := m.LiftForDay(ctx, day)
	prevDay, _ := m.DayForLift(ctx, lift)

	if prevDay != nil {
		delete(m.schedule, *prevDay)
	}
	m.schedule[day] = lift
	return prevLift, prevDay, nil
}

func (m *memStore) ClearDay(_ context.Context, day models.DayOfWeek) error {
	delete(m.schedule, day)
	return nil
}

func (m *memStore) Lift(_ context.Context, name models.Lift) (models.LiftRecord, error) {
	record, ok := m.lifts[name]
	if !ok {
		return models.LiftRecord{}, fmt.Errorf("lift %s not found", name)
	}
	return record, nil
}

func (m *memStore) Lifts(context.Context) ([]models.LiftRecord, error) {
	var records []models.LiftRecord
	for _, lift := range models.AllLifts() {
		records = append(records, m.lifts[lift])
	}
	return records, nil
}

func (m *memStore) SaveLift(_ context.Context, record models.LiftRecord) error {
	m.lifts[record.Name] = record
	return nil
}

func (m *memStore) AppendLog(_ context.Context, entry models.WorkoutLogEntry) error {
	m.log = append(m.log, entry)
	return nil
}

func (m *memStore) History(_ context.Context, lift *models.Lift, lastN int) ([]models.WorkoutLogEntry, error) {
	var entries []models.WorkoutLogEntry
	for i := len(m.log) - 1; i >= 0 && len(entries) < lastN; i-- {
		if lift == nil || m.log[i].Lift == *lift {
			entries = append(entries, m.log[i])
		}
	}
	return entries, nil
}

func (m *memStore) LiftsLogged(_ context.Context, week int, phase models.Phase, cycleID int) ([]models.Lift, error) {
	seen := make(map[models.Lift]bool)
	var lifts []models.Lift
	for _, entry := range m.log {
		if entry.Week == week && entry.Phase == phase && entry.CycleID == cycleID && !seen[entry.Lift] {
			seen[entry.Lift] = true
			lifts = append(lifts, entry.Lift)
		}
	}
	return lifts, nil
}

func (m *memStore) HasLogEntry(_ context.Context, lift models.Lift, week int, phase models.Phase, cycleID int) (bool, error) {
	for _, entry := range m.log {
		if entry.Lift == lift && entry.Week == week && entry.Phase == phase && entry.CycleID == cycleID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) PRs(_ context.Context, lift *models.Lift) ([]models.PR, error) {
	var prs []models.PR
	for _, lifts := range m.prs {
		for _, pr := range lifts {
			if lift == nil || pr.Lift == *lift {
				prs = append(prs, pr)
			}
		}
	}
	return prs, nil
}

func (m *memStore) UpsertPR(_ context.Context, pr models.PR) (bool, *int, error) {
	byWeight, ok := m.prs[pr.Lift]
	if !ok {
		byWeight = make(map[float64]models.PR)
		m.prs[pr.Lift] = byWeight
	}

	existing, ok := byWeight[pr.Weight]
	if !ok {
		byWeight[pr.Weight] = pr
		return true, nil, nil
	}
	if pr.BestReps > existing.BestReps {
		byWeight[pr.Weight] = pr
		return true, &existing.BestReps, nil
	}
	return false, &existing.BestReps, nil
}

func (m *memStore) BestEstimated1RM(_ context.Context, lift models.Lift) (*float64, error) {
	var best *float64
	for _, pr := range m.prs[lift] {
		if best == nil || pr.Estimated1RM > *best {
			e1rm := pr.Estimated1RM
			best = &e1rm
		}
	}
	return best, nil
}

// memCatalog serves templates from a map, no disk involved.
type memCatalog struct {
	templates map[string]*models.Template
}

func newMemCatalog(docs map[string]string) *memCatalog {
	catalog := &memCatalog{templates: make(map[string]*models.Template)}
	for name, doc := range docs {
		catalog.templates[name] = templates.Parse(doc, name)
	}
	return catalog
}

func (c *memCatalog) Template(name string) (*models.Template, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return tmpl, nil
}

func (c *memCatalog) All() ([]*models.Template, error) {
	var all []*models.Template
	for _, name := range sortedKeys(c.templates) {
		all = append(all, c.templates[name])
	}
	return all, nil
}

func sortedKeys(m map[string]*models.Template) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const testLeaderDoc = `# Test Leader

## Meta

- Type: Leader
- TM Percentage: 90%

## Main Work

### Weeks 1-3

- 65% x 5
- 75% x 5
- 85% x 5

## Supplemental

### Weeks 1-3

- 5x5 FSL
`

const testAnchorDoc = `# Test Anchor

## Meta

- Type: Anchor
- TM Percentage: 90%

## Main Work

### Week 1

- 65% x 5
- 75% x 5
- 85% x 5+

### Week 2

- 70% x 3
- 80% x 3
- 90% x 3+

### Week 3

- 75% x 5
- 85% x 3
- 95% x 1+
`

// newTestEngine builds an engine against fresh in-memory state with a
// fixed clock.
func newTestEngine() (*Engine, *memStore) {
	store := newMemStore()
	catalog := newMemCatalog(map[string]string{
		"test-leader": testLeaderDoc,
		"test-anchor": testAnchorDoc,
	})
	eng := New(store, catalog)
	eng.now = func() time.Time {
		return time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	}
	return eng, store
}

// configureLift gives a lift a template and training max in one call.
func configureLift(store *memStore, lift models.Lift, template string, trainingMax float64) {
	record := store.lifts[lift]
	record.ActiveTemplate = &template
	record.TrainingMax = &trainingMax
	store.lifts[lift] = record
}

func intPtr(v int) *int                  { return &v }
func floatPtr(v float64) *float64        { return &v }
func liftPtr(v models.Lift) *models.Lift { return &v }
