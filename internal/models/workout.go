package models

// ActualSet is one set as actually performed.
type ActualSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// PrescribedSet is a fully resolved set: percentage of the training max,
// the resulting rounded weight, and the rep scheme. FSL entries carry the
// resolved percentage here, never the 0 placeholder.
type PrescribedSet struct {
	Percentage int     `json:"percentage"`
	Weight     float64 `json:"weight"`
	Reps       string  `json:"reps"`
	Sets       int     `json:"sets,omitempty"`
	Type       string  `json:"type,omitempty"`
}

// WorkoutLogEntry is an immutable append-only record of one lift's session
// for one (week, phase, cycle) triple. Prescribed and Actual hold the
// JSON-serialized set lists captured at log time.
type WorkoutLogEntry struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Lift          Lift     `json:"lift"`
	Template      string   `json:"template"`
	Week          int      `json:"week"`
	Phase         Phase    `json:"phase"`
	CycleID       int      `json:"cycle_id"`
	Prescribed    string   `json:"prescribed"`
	Actual        string   `json:"actual"`
	AMRAPReps     *int     `json:"amrap_reps"`
	AMRAPWeight   *float64 `json:"amrap_weight"`
	Calculated1RM *float64 `json:"calculated_1rm"`
	Skipped       bool     `json:"skipped"`
	Notes         *string  `json:"notes"`
}

// PR is the best rep count ever achieved at a given (lift, weight), with
// the e1RM computed from it. BestReps only ever increases.
type PR struct {
	Lift         Lift    `json:"lift"`
	Weight       float64 `json:"weight"`
	BestReps     int     `json:"best_reps"`
	Estimated1RM float64 `json:"estimated_1rm"`
	Date         string  `json:"date"`
}
