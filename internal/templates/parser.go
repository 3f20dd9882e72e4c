// Package templates reads and parses the template documents: markdown
// files describing a training template as meta key/values plus week-plans
// of set prescriptions for main and supplemental work.
package templates

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mcunha/anvil/internal/models"
)

// The whole grammar lives here: three heading levels, list items, week
// headers and the two set-line forms.
var (
	heading1Pattern = regexp.MustCompile(`^#\s+(.+)$`)
	heading2Pattern = regexp.MustCompile(`^##\s+(.+)$`)
	heading3Pattern = regexp.MustCompile(`^###\s+(.+)$`)
	listPattern     = regexp.MustCompile(`^[-*]\s+(.+)$`)
	weekRange       = regexp.MustCompile(`(?i)weeks?\s+(\d+)\s*-\s*(\d+)`)
	weekSingle      = regexp.MustCompile(`(?i)week\s+(\d+)`)
	fslLine         = regexp.MustCompile(`(?i)^(\d+)x(\d+)\s+FSL$`)
	percentLine     = regexp.MustCompile(`^(\d+)%\s*x\s*(.+)$`)
)

type section int

const (
	sectionNone section = iota
	sectionMeta
	sectionMain
	sectionSupplemental
)

// Parse turns a template document into a Template. Parsing is pure and
// total: unrecognized lines are dropped, week-plans missing either weeks
// or sets are discarded, defaults cover absent meta.
func Parse(content, name string) *models.Template {
	tmpl := &models.Template{
		Name:         name,
		DisplayName:  name,
		Type:         models.TemplateLeader,
		TMPercentage: 90,
	}

	current := sectionNone
	var weeks []int
	var sets []models.SetPrescription

	flush := func() {
		if len(weeks) == 0 || len(sets) == 0 {
			return
		}
		plan := models.WeekPlan{Weeks: weeks, Sets: sets}
		if current == sectionMain {
			tmpl.MainWork = append(tmpl.MainWork, plan)
		} else {
			tmpl.Supplemental = append(tmpl.Supplemental, plan)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case heading3Pattern.MatchString(line):
			if current == sectionMain || current == sectionSupplemental {
				flush()
				weeks = parseWeekHeader(heading3Pattern.FindStringSubmatch(line)[1])
				sets = nil
			}

		case heading2Pattern.MatchString(line):
			if current == sectionMain || current == sectionSupplemental {
				flush()
				weeks, sets = nil, nil
			}
			switch strings.ToLower(strings.TrimSpace(heading2Pattern.FindStringSubmatch(line)[1])) {
			case "meta":
				current = sectionMeta
			case "main work":
				current = sectionMain
			case "supplemental":
				current = sectionSupplemental
			}

		case heading1Pattern.MatchString(line):
			tmpl.DisplayName = strings.TrimSpace(heading1Pattern.FindStringSubmatch(line)[1])

		case listPattern.MatchString(line):
			item := strings.TrimSpace(listPattern.FindStringSubmatch(line)[1])
			switch current {
			case sectionMeta:
				applyMeta(tmpl, item)
			case sectionMain, sectionSupplemental:
				if len(weeks) > 0 {
					if set, ok := parseSetLine(item); ok {
						sets = append(sets, set)
					}
				}
			}
		}
	}

	if current == sectionMain || current == sectionSupplemental {
		flush()
	}

	return tmpl
}

func applyMeta(tmpl *models.Template, item string) {
	colon := strings.Index(item, ":")
	if colon == -1 {
		return
	}
	key := strings.ToLower(strings.TrimSpace(item[:colon]))
	value := strings.TrimSpace(item[colon+1:])

	switch key {
	case "type":
		tmpl.Type = models.TemplateType(strings.ToLower(value))
	case "tm percentage", "tm%":
		if pct, err := strconv.Atoi(strings.TrimSuffix(value, "%")); err == nil {
			tmpl.TMPercentage = pct
		}
	case "leader cycles":
		tmpl.LeaderCycles = value
	case "anchor", "paired anchor":
		tmpl.PairedAnchor = value
	case "leader", "paired leader":
		tmpl.PairedLeader = value
	}
}

// parseWeekHeader reads "Week 1" or "Weeks 1-3"; anything else yields no
// weeks, which discards the plan on flush.
func parseWeekHeader(text string) []int {
	if m := weekRange.FindStringSubmatch(text); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		var weeks []int
		for w := start; w <= end; w++ {
			weeks = append(weeks, w)
		}
		return weeks
	}
	if m := weekSingle.FindStringSubmatch(text); m != nil {
		week, _ := strconv.Atoi(m[1])
		return []int{week}
	}
	return nil
}

func parseSetLine(text string) (models.SetPrescription, bool) {
	if m := fslLine.FindStringSubmatch(text); m != nil {
		numSets, _ := strconv.Atoi(m[1])
		// Percentage 0 is the FSL placeholder, resolved at read time from
		// the week's first main-work set.
		return models.SetPrescription{
			Percentage: 0,
			Reps:       m[2],
			Sets:       numSets,
			Type:       models.SetTypeFSL,
		}, true
	}

	if m := percentLine.FindStringSubmatch(text); m != nil {
		pct, _ := strconv.Atoi(m[1])
		return models.SetPrescription{
			Percentage: pct,
			Reps:       strings.TrimSpace(m[2]),
		}, true
	}

	return models.SetPrescription{}, false
}
