package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoaplikasi02-prog/tkitharvysyah/apps/api/echo/helpers"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

func setupTeacherAPI(t *testing.T) (*fakeSource, http.Handler, string) {
	src := newFixtureSource()
	svc := school.NewService(src)

	app, v1, jwt := initApp()
	RegisterTeacherAPI(v1, jwt, svc)

	token := getToken(t, helpers.GetTeacherClaims(src.teachers[0])) // Ustadzah Rani, A1
	return src, app, token
}

func Test_teacherApi_authRequired(t *testing.T) {
	src := newFixtureSource()
	svc := school.NewService(src)

	app, v1, jwt := initApp()
	RegisterTeacherAPI(v1, jwt, svc)

	parentToken := getToken(t, helpers.GetParentClaims(src.students[0]))

	tests := []httpTest{
		{
			name:     "no token",
			method:   http.MethodGet,
			path:     "/v1/teacher/students",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "parent token rejected",
			method:   http.MethodGet,
			path:     "/v1/teacher/students",
			token:    parentToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_teacherApi_students(t *testing.T) {
	_, app, token := setupTeacherAPI(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/teacher/students", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var students []school.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	// only the teacher's own class
	require.Len(t, students, 2)
	for _, s := range students {
		assert.Equal(t, "A1", s.Class)
	}
}

func Test_teacherApi_curriculum(t *testing.T) {
	_, app, token := setupTeacherAPI(t)

	tests := []struct {
		name  string
		path  string
		wantN int
	}{
		{"all items", "/v1/teacher/curriculum", 3},
		{"surah only", "/v1/teacher/curriculum?category=surah", 2},
		{"surah semester 1", "/v1/teacher/curriculum?category=surah&semester=1", 1},
		{"semester spellings normalized", "/v1/teacher/curriculum?category=surah&semester=Ganjil", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, token)
			app.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)

			var items []school.CurriculumItem
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
			assert.Len(t, items, tt.wantN)
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/teacher/curriculum?category=olahraga", token)
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_teacherApi_scoreCreate(t *testing.T) {
	src, app, token := setupTeacherAPI(t)

	body := []byte(`{
		"student_id": "0012345678",
		"category": "Hafalan Surah Pendek",
		"item_name": "Al-Ikhlas",
		"grade": "BSH",
		"date": "2025-01-20",
		"semester": "1",
		"teacher_name": "Penyusup"
	}`)
	req, rec := newAuthRequest(http.MethodPost, "/v1/teacher/scores", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, src.created, 1)
	got := src.created[0]
	assert.Equal(t, school.GradeBSH, got.Grade)
	// the author comes from the token, not the payload
	assert.Equal(t, "Ustadzah Rani", got.TeacherName)
	assert.Empty(t, got.Timestamp)
}

func Test_teacherApi_scoreCreate_invalid(t *testing.T) {
	src, app, token := setupTeacherAPI(t)

	tests := []httpTest{
		{
			name:     "grade off the scale",
			body:     []byte(`{"student_id":"0012345678","category":"Hafalan Surah Pendek","item_name":"Al-Ikhlas","grade":"A+","date":"2025-01-20"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed date",
			body:     []byte(`{"student_id":"0012345678","category":"Hafalan Surah Pendek","item_name":"Al-Ikhlas","grade":"MB","date":"20/01/2025"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing student",
			body:     []byte(`{"category":"Hafalan Surah Pendek","item_name":"Al-Ikhlas","grade":"MB","date":"2025-01-20"}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/teacher/scores", token, tt.body)
			app.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Empty(t, src.created, "invalid payloads must never reach the data source")
		})
	}
}

func Test_teacherApi_scoreUpdateAndDelete(t *testing.T) {
	src, app, token := setupTeacherAPI(t)

	body := []byte(`{
		"student_id": "0012345678",
		"category": "Hafalan Surah Pendek",
		"item_name": "An-Nas",
		"grade": "BSB",
		"date": "2025-01-21"
	}`)
	req, rec := newAuthRequest(http.MethodPut, "/v1/teacher/scores/ts-1", token, body)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, src.edited, 1)
	assert.Equal(t, "ts-1", src.edited[0].Timestamp)
	assert.Equal(t, "Ustadzah Rani", src.edited[0].TeacherName)

	req, rec = newAuthRequest(http.MethodDelete, "/v1/teacher/scores/ts-2", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"ts-2"}, src.deleted)
}

func Test_teacherApi_classReport(t *testing.T) {
	_, app, token := setupTeacherAPI(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/teacher/report", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []ClassReportRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	// Rani's class: Aisyah (two scores) and Citra (none yet)
	require.Len(t, rows, 2)
	assert.Equal(t, "Aisyah", rows[0].Student.Name)
	assert.Equal(t, 2, rows[0].TotalScores)
	require.Len(t, rows[0].Distribution, 4)
	assert.Equal(t, 1, rows[0].Distribution[3].Count) // her BSB
	assert.Equal(t, "Citra", rows[1].Student.Name)
	assert.Zero(t, rows[1].TotalScores)
}

func Test_teacherApi_studentReport(t *testing.T) {
	_, app, token := setupTeacherAPI(t)

	req, rec := newAuthRequest(http.MethodGet, "/v1/teacher/report/0012345678", token)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StudentReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Aisyah", resp.Student.Name)
	assert.Len(t, resp.Report.Surah, 1)
	assert.Len(t, resp.Report.Doa, 1)
	assert.Empty(t, resp.Report.Hadist)
}
