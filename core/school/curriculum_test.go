package school

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/sheet"
)

func TestCurriculumFromRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []sheet.Record
		want    []CurriculumItem
	}{
		{
			name: "per-semester columns",
			records: []sheet.Record{
				{"Category": "Hafalan Surah Pendek", "ItemName Semester 1": "An-Nas", "ItemName Semester 2": "Al-Falaq"},
			},
			want: []CurriculumItem{
				{Category: CategorySurah, ItemName: "An-Nas", Semester: "1"},
				{Category: CategorySurah, ItemName: "Al-Falaq", Semester: "2"},
			},
		},
		{
			name: "one semester column empty",
			records: []sheet.Record{
				{"Kategori": "Hafalan Doa Sehari-hari", "Semester 1": "Doa Makan", "Semester 2": ""},
			},
			want: []CurriculumItem{
				{Category: CategoryDoa, ItemName: "Doa Makan", Semester: "1"},
			},
		},
		{
			name: "generic item plus semester column",
			records: []sheet.Record{
				{"Category": "Hafalan Hadist", "Item Name": "Hadist Kebersihan", "Semester": "Ganjil"},
				{"Category": "Hafalan Hadist", "Item Name": "Hadist Senyum", "Semester": "Genap"},
			},
			want: []CurriculumItem{
				{Category: CategoryHadist, ItemName: "Hadist Kebersihan", Semester: "1"},
				{Category: CategoryHadist, ItemName: "Hadist Senyum", Semester: "2"},
			},
		},
		{
			name: "rows without a recognizable item are skipped",
			records: []sheet.Record{
				{"Category": "Hafalan Surah Pendek", "Keterangan": "judul kosong"},
				{"Category": "Hafalan Surah Pendek", "Item Name": "Al-Ikhlas", "Semester": "1"},
			},
			want: []CurriculumItem{
				{Category: CategorySurah, ItemName: "Al-Ikhlas", Semester: "1"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurriculumFromRecords(tt.records))
		})
	}
}

func TestFilterCurriculum(t *testing.T) {
	items := []CurriculumItem{
		{Category: CategorySurah, ItemName: "An-Nas", Semester: "1"},
		{Category: CategorySurah, ItemName: "Al-Falaq", Semester: "2"},
		{Category: CategorySurah, ItemName: "Al-Fatihah", Semester: ""}, // both semesters
		{Category: CategoryDoa, ItemName: "Doa Makan", Semester: "1"},
	}

	sem1 := FilterCurriculum(items, CategorySurah, "1")
	assert.Equal(t, []CurriculumItem{
		{Category: CategorySurah, ItemName: "An-Nas", Semester: "1"},
		{Category: CategorySurah, ItemName: "Al-Fatihah", Semester: ""},
	}, sem1)

	all := FilterCurriculum(items, CategorySurah, "")
	assert.Len(t, all, 3)

	// semester spellings are normalized before matching
	ganjil := FilterCurriculum(items, CategoryDoa, "Ganjil")
	assert.Equal(t, []CurriculumItem{{Category: CategoryDoa, ItemName: "Doa Makan", Semester: "1"}}, ganjil)
}
