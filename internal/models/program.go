package models

import (
	"fmt"
	"time"
)

type Lift string

const (
	LiftSquat    Lift = "squat"
	LiftBench    Lift = "bench"
	LiftDeadlift Lift = "deadlift"
	LiftOHP      Lift = "ohp"
)

// AllLifts returns the four program lifts in their seed order.
func AllLifts() []Lift {
	return []Lift{LiftSquat, LiftBench, LiftDeadlift, LiftOHP}
}

func ParseLift(s string) (Lift, error) {
	switch Lift(s) {
	case LiftSquat, LiftBench, LiftDeadlift, LiftOHP:
		return Lift(s), nil
	}
	return "", fmt.Errorf("unknown lift %q (expected squat, bench, deadlift or ohp)", s)
}

type Phase string

const (
	PhaseLeader Phase = "leader"
	PhaseAnchor Phase = "anchor"
)

func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseLeader, PhaseAnchor:
		return Phase(s), nil
	}
	return "", fmt.Errorf("unknown phase %q (expected leader or anchor)", s)
}

type PhaseStatus string

const (
	StatusActive              PhaseStatus = "active"
	StatusPendingTMBump       PhaseStatus = "pending_tm_bump"
	StatusPendingDeloadOrTest PhaseStatus = "pending_deload_or_test"
)

type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// DayOrder returns the days monday-first, the order schedules are displayed in.
func DayOrder() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// DayFromWeekday converts a calendar weekday to the schedule's day key.
func DayFromWeekday(wd time.Weekday) DayOfWeek {
	return [...]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}[wd]
}

func ParseDay(s string) (DayOfWeek, error) {
	switch DayOfWeek(s) {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return DayOfWeek(s), nil
	}
	return "", fmt.Errorf("unknown day of week %q", s)
}

// ProgramState is the single mutable program record. Exactly one instance
// exists; it is created at first initialization and only ever mutated.
type ProgramState struct {
	CurrentWeek           int         `json:"current_week"`
	CurrentPhase          Phase       `json:"current_phase"`
	LeaderCyclesCompleted int         `json:"leader_cycles_completed"`
	PhaseStatus           PhaseStatus `json:"phase_status"`
	CycleID               int         `json:"cycle_id"`
}

type ScheduleEntry struct {
	Day  DayOfWeek `json:"day_of_week"`
	Lift Lift      `json:"lift"`
}

// LiftRecord is the per-lift configuration row. The nullable columns are
// pointers: nil means the value has never been set.
type LiftRecord struct {
	Name           Lift     `json:"name"`
	Tested1RM      *float64 `json:"tested_1rm"`
	Estimated1RM   *float64 `json:"estimated_1rm"`
	TrainingMax    *float64 `json:"training_max"`
	TMIncrement    float64  `json:"tm_increment"`
	ActiveTemplate *string  `json:"active_template"`
}
