package models

type TemplateType string

const (
	TemplateLeader       TemplateType = "leader"
	TemplateAnchor       TemplateType = "anchor"
	TemplateLeaderAnchor TemplateType = "leader/anchor"
)

// SetPrescription is one line of a week plan: either a direct
// percentage+reps entry, or an FSL entry whose percentage is a placeholder
// (0) resolved at read time from the first main-work set of the same week.
type SetPrescription struct {
	Percentage int    `json:"percentage"`
	Reps       string `json:"reps"`
	Sets       int    `json:"sets,omitempty"`
	Type       string `json:"type,omitempty"`
}

const SetTypeFSL = "FSL"

// WeekPlan maps a set of week numbers to an ordered list of prescriptions.
type WeekPlan struct {
	Weeks []int             `json:"weeks"`
	Sets  []SetPrescription `json:"sets"`
}

// Template is the parsed form of a template document.
type Template struct {
	Name         string       `json:"name"`
	DisplayName  string       `json:"display_name"`
	Type         TemplateType `json:"type"`
	TMPercentage int          `json:"tm_percentage"`
	LeaderCycles string       `json:"leader_cycles,omitempty"`
	PairedAnchor string       `json:"paired_anchor,omitempty"`
	PairedLeader string       `json:"paired_leader,omitempty"`
	MainWork     []WeekPlan   `json:"main_work"`
	Supplemental []WeekPlan   `json:"supplemental,omitempty"`
}

// MainSets returns the main-work prescriptions for the given week, or nil
// if no plan covers it.
func (t *Template) MainSets(week int) []SetPrescription {
	return setsForWeek(t.MainWork, week)
}

// SupplementalSets returns the supplemental prescriptions for the given week.
func (t *Template) SupplementalSets(week int) []SetPrescription {
	return setsForWeek(t.Supplemental, week)
}

func setsForWeek(plans []WeekPlan, week int) []SetPrescription {
	for _, plan := range plans {
		for _, w := range plan.Weeks {
			if w == week {
				return plan.Sets
			}
		}
	}
	return nil
}
