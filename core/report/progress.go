package report

import (
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

// NoActivity is the LastActive sentinel for a teacher with no recorded scores.
const NoActivity = "-"

// TeacherProgress is one row of the principal's teacher-progress table.
type TeacherProgress struct {
	Name             string `json:"name"`
	Class            string `json:"class"`
	TotalInput       int    `json:"total_input"`
	StudentsAssessed int    `json:"students_assessed"`
	ClassSize        int    `json:"class_size"`
	Coverage         int    `json:"coverage"` // percent of roster assessed, rounded
	LastActive       string `json:"last_active"`
}

// TeacherProgressRollup computes per-teacher activity. Scores are attributed
// by exact Teacher-Name equality; the sheet stores the name, not a key, so a
// renamed teacher orphans their history and starts from zero. A teacher with
// an empty roster reports zero coverage regardless of activity.
func TeacherProgressRollup(teachers []school.Teacher, students []school.Student, scores []school.Score) []TeacherProgress {
	rosterSize := make(map[string]int, len(teachers))
	for _, s := range students {
		rosterSize[s.Class]++
	}

	rollup := make([]TeacherProgress, 0, len(teachers))
	for _, t := range teachers {
		var (
			total    int
			assessed = make(map[string]struct{})
			last     school.Score
		)
		for _, s := range scores {
			if s.TeacherName != t.Name {
				continue
			}
			total++
			assessed[s.StudentID] = struct{}{}
			if s.Time().After(last.Time()) {
				last = s
			}
		}

		classSize := rosterSize[t.Class]
		var coverage int
		if classSize > 0 {
			coverage = int(float64(len(assessed))/float64(classSize)*100 + 0.5)
		}

		lastActive := NoActivity
		if total > 0 && !last.Time().IsZero() {
			lastActive = last.Date
		}

		rollup = append(rollup, TeacherProgress{
			Name:             t.Name,
			Class:            t.Class,
			TotalInput:       total,
			StudentsAssessed: len(assessed),
			ClassSize:        classSize,
			Coverage:         coverage,
			LastActive:       lastActive,
		})
	}
	return rollup
}
