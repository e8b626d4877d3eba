package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

var (
	testStudents = []school.Student{
		{Name: "Aisyah", NISN: "001", Class: "A1"},
		{Name: "Bilal", NISN: "002", Class: "A1"},
		{Name: "Citra", NISN: "003", Class: "A2"},
		{Name: "Dian", NISN: "004", Class: "B1"},
	}

	testScores = []school.Score{
		{StudentID: "001", Category: school.CategorySurah, Grade: school.GradeBSB, Date: "2025-01-15", TeacherName: "Ustadzah Rani"},
		{StudentID: "001", Category: school.CategoryDoa, Grade: school.GradeBSH, Date: "2025-01-16", TeacherName: "Ustadzah Rani"},
		{StudentID: "002", Category: school.CategorySurah, Grade: school.GradeMB, Date: "2025-01-14", TeacherName: "Ustadzah Rani"},
		{StudentID: "003", Category: school.CategoryHadist, Grade: school.GradeBB, Date: "2025-01-17", TeacherName: "Ustadzah Sari"},
	}
)

func TestGradeDistribution(t *testing.T) {
	dist := GradeDistribution(testScores)
	if assert.Len(t, dist, 4) {
		assert.Equal(t, school.GradeBB, dist[0].Grade)
		assert.Equal(t, 1, dist[0].Count)
		assert.Equal(t, 25.0, dist[0].Percent)
		assert.Equal(t, school.GradeBSB, dist[3].Grade)
		assert.Equal(t, 1, dist[3].Count)
	}
}

func TestGradeDistribution_empty(t *testing.T) {
	dist := GradeDistribution(nil)
	if assert.Len(t, dist, 4) {
		for _, gc := range dist {
			assert.Zero(t, gc.Count)
			assert.Zero(t, gc.Percent)
		}
	}
}

func TestGradeDistribution_unclassifiedDilutes(t *testing.T) {
	scores := []school.Score{
		{Grade: school.GradeBSB},
		{Grade: school.GradeUnclassified},
	}
	dist := GradeDistribution(scores)
	assert.Equal(t, 1, dist[3].Count)
	assert.Equal(t, 50.0, dist[3].Percent) // of the whole set, not of classified
}

func TestCategoryBreakdown(t *testing.T) {
	breakdown := CategoryBreakdown(testScores)
	want := []CategoryCount{
		{Category: school.CategorySurah, Count: 2},
		{Category: school.CategoryDoa, Count: 1},
		{Category: school.CategoryHadist, Count: 1},
	}
	assert.Equal(t, want, breakdown)
}

func TestClassActivity(t *testing.T) {
	ranked := ClassActivity(testScores, testStudents, TopN)
	want := []ClassCount{
		{Class: "A1", Count: 3},
		{Class: "A2", Count: 1},
	}
	assert.Equal(t, want, ranked)
}

func TestClassActivity_unknownStudentIgnored(t *testing.T) {
	scores := append([]school.Score{}, testScores...)
	scores = append(scores, school.Score{StudentID: "999", Date: "2025-01-18"})

	ranked := ClassActivity(scores, testStudents, TopN)
	assert.Len(t, ranked, 2) // no bucket for the orphan score
}

func TestTopStudents(t *testing.T) {
	ranked := TopStudents(testScores, testStudents, TopN)
	if assert.Len(t, ranked, 3) {
		assert.Equal(t, StudentRank{Name: "Aisyah", Class: "A1", Count: 2}, ranked[0])
		// tie between Bilal and Citra keeps first-occurrence order
		assert.Equal(t, "Bilal", ranked[1].Name)
		assert.Equal(t, "Citra", ranked[2].Name)
	}
}

func TestTopStudents_capsAtN(t *testing.T) {
	ranked := TopStudents(testScores, testStudents, 1)
	assert.Len(t, ranked, 1)
	assert.Equal(t, "Aisyah", ranked[0].Name)
}

func TestTopStudents_offRosterFallback(t *testing.T) {
	scores := []school.Score{{StudentID: "999", Date: "2025-01-18"}}
	ranked := TopStudents(scores, testStudents, TopN)
	assert.Equal(t, []StudentRank{{Name: "999", Class: "-", Count: 1}}, ranked)
}

func TestRecentScores(t *testing.T) {
	recent := RecentScores(testScores, 2)
	if assert.Len(t, recent, 2) {
		assert.Equal(t, "2025-01-17", recent[0].Date)
		assert.Equal(t, "2025-01-16", recent[1].Date)
	}
}

func TestRecentScores_unparseableDatesSink(t *testing.T) {
	scores := []school.Score{
		{StudentID: "001", Date: "kemarin"},
		{StudentID: "002", Date: "2025-01-15"},
	}
	recent := RecentScores(scores, TopN)
	assert.Equal(t, "2025-01-15", recent[0].Date)
	assert.Equal(t, "kemarin", recent[1].Date)
}

func TestSortByDateDesc_inputUntouched(t *testing.T) {
	scores := []school.Score{
		{Date: "2025-01-14"},
		{Date: "2025-01-17"},
	}
	sorted := SortByDateDesc(scores)
	assert.Equal(t, "2025-01-17", sorted[0].Date)
	assert.Equal(t, "2025-01-14", scores[0].Date)
}

func TestGroupByCategory(t *testing.T) {
	rep := GroupByCategory(testScores)
	assert.Len(t, rep.Surah, 2)
	assert.Len(t, rep.Doa, 1)
	assert.Len(t, rep.Hadist, 1)
}
