package school

import (
	"strings"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

// The Hafalan sheet has been re-laid-out more than once by its maintainers,
// so the item and semester columns go by several names. Aliases are tried in
// order; first non-empty cell wins.
var (
	categoryAliases = []string{"Category", "Kategori", "Kategori Hafalan", "Group"}
	sem1Aliases     = []string{"ItemName Semester 1", "ItemName Semester1", "Semester 1", "Semester I", "Sem 1", "Smt 1", "1", "Ganjil"}
	sem2Aliases     = []string{"ItemName Semester 2", "ItemName Semester2", "Semester 2", "Semester II", "Sem 2", "Smt 2", "2", "Genap"}
	itemAliases     = []string{"ItemName", "Item Name", "Nama Item", "Nama Hafalan", "Judul"}
	semesterAliases = []string{"Semester", "semester", "Sem", "sem"}
)

func firstNonEmpty(rec sheet.Record, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(rec[name]); v != "" {
			return v
		}
	}
	return ""
}

// CurriculumFromRecords normalizes the Hafalan sheet into one CurriculumItem
// per item per semester. Rows may carry dedicated per-semester columns, or a
// generic item column plus a semester column; a row yielding no recognizable
// item is skipped.
func CurriculumFromRecords(records []sheet.Record) []CurriculumItem {
	items := make([]CurriculumItem, 0, len(records))

	for _, rec := range records {
		category := CategoryFromString(firstNonEmpty(rec, categoryAliases))

		var hasSemesterColumns bool
		if item := firstNonEmpty(rec, sem1Aliases); item != "" {
			items = append(items, CurriculumItem{Category: category, ItemName: item, Semester: "1"})
			hasSemesterColumns = true
		}
		if item := firstNonEmpty(rec, sem2Aliases); item != "" {
			items = append(items, CurriculumItem{Category: category, ItemName: item, Semester: "2"})
			hasSemesterColumns = true
		}
		if hasSemesterColumns {
			continue
		}

		item := firstNonEmpty(rec, itemAliases)
		if item == "" {
			continue
		}
		if semester := NormalizeSemester(firstNonEmpty(rec, semesterAliases)); semester != "" {
			items = append(items, CurriculumItem{Category: category, ItemName: item, Semester: semester})
		}
	}
	return items
}

// FilterCurriculum returns the assessable menu for a category, optionally
// narrowed to one semester. Items without a semester apply to both.
func FilterCurriculum(items []CurriculumItem, category Category, semester string) []CurriculumItem {
	semester = NormalizeSemester(semester)
	matched := make([]CurriculumItem, 0, len(items))
	for _, item := range items {
		if item.Category != category {
			continue
		}
		if semester != "" && item.Semester != "" && item.Semester != semester {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}
