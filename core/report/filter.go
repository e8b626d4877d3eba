package report

import (
	"strings"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

// ScoreFilter narrows a score set; zero-value fields match everything.
// From and To are inclusive YYYY-MM-DD bounds, compared lexicographically,
// which is sound because that is the sheet's stored date form.
type ScoreFilter struct {
	From      string
	To        string
	StudentID string
}

// FilterScores applies all set filter fields with AND semantics.
func FilterScores(scores []school.Score, filter ScoreFilter) []school.Score {
	from := strings.TrimSpace(filter.From)
	to := strings.TrimSpace(filter.To)
	nisn := strings.TrimSpace(filter.StudentID)

	matched := make([]school.Score, 0, len(scores))
	for _, s := range scores {
		if from != "" && s.Date < from {
			continue
		}
		if to != "" && s.Date > to {
			continue
		}
		if nisn != "" && s.StudentID != nisn {
			continue
		}
		matched = append(matched, s)
	}
	return matched
}

// Pagination describes one page of a sequence. Callers slice their data with
// items[StartRange-1:EndRange] when TotalItems > 0; StartRange and EndRange
// are the 1-based inclusive display range ("showing 11-20 of 53").
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	StartRange int `json:"start_range"`
	EndRange   int `json:"end_range"`
}

// Paginate computes the page layout of a sequence of total items with the
// given page size. The page number is clamped into [1, TotalPages], so a
// filter change that shrinks the set can never leave the caller beyond the
// end. A non-positive size means no pagination: everything on one page.
func Paginate(total, page, size int) Pagination {
	if total <= 0 {
		return Pagination{Page: 1, TotalPages: 1}
	}
	if size <= 0 || total <= size {
		return Pagination{Page: 1, TotalPages: 1, TotalItems: total, StartRange: 1, EndRange: total}
	}

	totalPages := (total + size - 1) / size
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return Pagination{
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
		StartRange: start + 1,
		EndRange:   end,
	}
}

// PaginateScores slices one page out of scores along with its layout.
func PaginateScores(scores []school.Score, page, size int) ([]school.Score, Pagination) {
	p := Paginate(len(scores), page, size)
	if p.TotalItems == 0 {
		return []school.Score{}, p
	}
	return scores[p.StartRange-1 : p.EndRange], p
}

// PaginateStudents slices one page out of students along with its layout.
func PaginateStudents(students []school.Student, page, size int) ([]school.Student, Pagination) {
	p := Paginate(len(students), page, size)
	if p.TotalItems == 0 {
		return []school.Student{}, p
	}
	return students[p.StartRange-1 : p.EndRange], p
}

// PaginateTeachers slices one page out of teachers along with its layout.
func PaginateTeachers(teachers []school.Teacher, page, size int) ([]school.Teacher, Pagination) {
	p := Paginate(len(teachers), page, size)
	if p.TotalItems == 0 {
		return []school.Teacher{}, p
	}
	return teachers[p.StartRange-1 : p.EndRange], p
}
