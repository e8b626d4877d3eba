// Package report computes the dashboard aggregations. Every function is pure:
// it takes record slices already fetched elsewhere and returns derived values,
// holding no state of its own.
package report

import (
	"sort"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

// TopN is how many entries the dashboard leaderboards show.
const TopN = 5

type (
	GradeCount struct {
		Grade   school.Grade `json:"grade"`
		Label   string       `json:"label"`
		Count   int          `json:"count"`
		Percent float64      `json:"percent"`
	}

	CategoryCount struct {
		Category school.Category `json:"category"`
		Count    int             `json:"count"`
	}

	ClassCount struct {
		Class string `json:"class"`
		Count int    `json:"count"`
	}

	StudentRank struct {
		Name  string `json:"name"`
		Class string `json:"class"`
		Count int    `json:"count"`
	}

	// LearningReport is a student's scores grouped by curriculum category,
	// the shape the printable report is laid out in.
	LearningReport struct {
		Surah  []school.Score `json:"surah"`
		Doa    []school.Score `json:"doa"`
		Hadist []school.Score `json:"hadist"`
	}
)

// GradeDistribution counts each proficiency level across the score set.
// Percent is against the full set size, so unclassified grades dilute the
// four buckets rather than disappearing; an empty set yields zero percents.
func GradeDistribution(scores []school.Score) []GradeCount {
	counts := make(map[school.Grade]int, len(school.Grades))
	for _, s := range scores {
		if s.Grade != school.GradeUnclassified {
			counts[s.Grade]++
		}
	}

	total := len(scores)
	dist := make([]GradeCount, 0, len(school.Grades))
	for _, g := range school.Grades {
		gc := GradeCount{Grade: g, Label: g.Label(), Count: counts[g]}
		if total > 0 {
			gc.Percent = float64(gc.Count) / float64(total) * 100
		}
		dist = append(dist, gc)
	}
	return dist
}

// CategoryBreakdown counts scores per curriculum category; unclassified
// scores are not shown on the dashboard and are left out.
func CategoryBreakdown(scores []school.Score) []CategoryCount {
	counts := make(map[school.Category]int, len(school.Categories))
	for _, s := range scores {
		if s.Category != school.CategoryUnclassified {
			counts[s.Category]++
		}
	}

	breakdown := make([]CategoryCount, 0, len(school.Categories))
	for _, c := range school.Categories {
		breakdown = append(breakdown, CategoryCount{Category: c, Count: counts[c]})
	}
	return breakdown
}

// ClassActivity ranks classes by how many scores their students received,
// most active first, at most n entries. Scores whose student is not on the
// roster count for no class. Ties keep first-occurrence order.
func ClassActivity(scores []school.Score, students []school.Student, n int) []ClassCount {
	classByNISN := make(map[string]string, len(students))
	for _, s := range students {
		classByNISN[s.NISN] = s.Class
	}

	counts := make(map[string]int)
	var order []string
	for _, s := range scores {
		class, ok := classByNISN[s.StudentID]
		if !ok {
			continue
		}
		if _, seen := counts[class]; !seen {
			order = append(order, class)
		}
		counts[class]++
	}

	ranked := make([]ClassCount, 0, len(order))
	for _, class := range order {
		ranked = append(ranked, ClassCount{Class: class, Count: counts[class]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopStudents ranks students by received score count, at most n entries.
// Students missing from the roster show their ID as name and "-" as class.
// Ties keep first-occurrence order.
func TopStudents(scores []school.Score, students []school.Student, n int) []StudentRank {
	type info struct{ name, class string }
	infoByNISN := make(map[string]info, len(students))
	for _, s := range students {
		infoByNISN[s.NISN] = info{name: s.Name, class: s.Class}
	}

	counts := make(map[string]int)
	var order []string
	for _, s := range scores {
		if _, seen := counts[s.StudentID]; !seen {
			order = append(order, s.StudentID)
		}
		counts[s.StudentID]++
	}

	ranked := make([]StudentRank, 0, len(order))
	for _, nisn := range order {
		in, ok := infoByNISN[nisn]
		if !ok {
			in = info{name: nisn, class: "-"}
		}
		ranked = append(ranked, StudentRank{Name: in.name, Class: in.class, Count: counts[nisn]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// RecentScores returns the newest scores, date descending, at most n.
// Unparseable dates sort as the zero time and sink to the bottom.
func RecentScores(scores []school.Score, n int) []school.Score {
	sorted := SortByDateDesc(scores)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SortByDateDesc returns a date-descending copy of scores, leaving the input
// untouched. The sort is stable so same-day scores keep their sheet order.
func SortByDateDesc(scores []school.Score) []school.Score {
	sorted := make([]school.Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time().After(sorted[j].Time())
	})
	return sorted
}

// GroupByCategory splits a student's scores into the report card's three
// category sections; unclassified scores appear in none of them.
func GroupByCategory(scores []school.Score) LearningReport {
	var rep LearningReport
	for _, s := range scores {
		switch s.Category {
		case school.CategorySurah:
			rep.Surah = append(rep.Surah, s)
		case school.CategoryDoa:
			rep.Doa = append(rep.Doa, s)
		case school.CategoryHadist:
			rep.Hadist = append(rep.Hadist, s)
		}
	}
	return rep
}
