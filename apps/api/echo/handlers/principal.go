package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/demoaplikasi02-prog/tkitharvysyah/apps/api/echo/helpers"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/report"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

const (
	defaultPageSize = 10
	monitorPageSize = 20 // the score log shows more rows per page
)

type principalApi struct {
	service *school.Service
}

func RegisterPrincipalAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := principalApi{service: svc}

	sg := g.Group("/principal", jwt, helpers.RoleMiddleware(helpers.RolePrincipal))
	sg.GET("/dashboard", api.dashboard)
	sg.GET("/school-data", api.schoolData)
	sg.GET("/scores", api.scores)
	sg.GET("/teacher-progress", api.teacherProgress)
}

// Handlers

// dashboard aggregates the whole school's assessment activity. Scores and
// the roster are fetched jointly; either failing fails the dashboard.
func (api *principalApi) dashboard(ctx echo.Context) error {
	var (
		scores   []school.Score
		students []school.Student
	)
	grp, gctx := errgroup.WithContext(ctx.Request().Context())
	grp.Go(func() (err error) {
		scores, err = api.service.Scores(gctx)
		return err
	})
	grp.Go(func() (err error) {
		students, err = api.service.Students(gctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, DashboardResponse{
		TotalScores:   len(scores),
		TotalStudents: len(students),
		Distribution:  report.GradeDistribution(scores),
		Categories:    report.CategoryBreakdown(scores),
		ClassActivity: report.ClassActivity(scores, students, report.TopN),
		TopStudents:   report.TopStudents(scores, students, report.TopN),
		RecentScores:  report.RecentScores(scores, report.TopN),
	})
}

// schoolData serves the paged roster tables: ?tab=teachers or students
// (default), optionally narrowed by ?class=, with ?page= and ?size=.
func (api *principalApi) schoolData(ctx echo.Context) error {
	page, size := pageParams(ctx, defaultPageSize)
	class := ctx.QueryParam("class")

	if ctx.QueryParam("tab") == "teachers" {
		teachers, err := api.service.Teachers(ctx.Request().Context())
		if err != nil {
			return err
		}
		if class != "" {
			kept := make([]school.Teacher, 0, len(teachers))
			for _, t := range teachers {
				if t.Class == class {
					kept = append(kept, t)
				}
			}
			teachers = kept
		}
		items, p := report.PaginateTeachers(teachers, page, size)
		return ctx.JSON(http.StatusOK, echo.Map{"teachers": items, "pagination": p})
	}

	var students []school.Student
	var err error
	if class != "" {
		students, err = api.service.StudentsByClass(ctx.Request().Context(), class)
	} else {
		students, err = api.service.Students(ctx.Request().Context())
	}
	if err != nil {
		return err
	}
	items, p := report.PaginateStudents(students, page, size)
	return ctx.JSON(http.StatusOK, echo.Map{"students": items, "pagination": p})
}

// scores serves the filterable score log: ?from=, ?to= (inclusive,
// YYYY-MM-DD), ?student=, paged. Student names are resolved for display.
func (api *principalApi) scores(ctx echo.Context) error {
	var (
		scores   []school.Score
		students []school.Student
	)
	grp, gctx := errgroup.WithContext(ctx.Request().Context())
	grp.Go(func() (err error) {
		scores, err = api.service.Scores(gctx)
		return err
	})
	grp.Go(func() (err error) {
		students, err = api.service.Students(gctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	filtered := report.FilterScores(scores, report.ScoreFilter{
		From:      ctx.QueryParam("from"),
		To:        ctx.QueryParam("to"),
		StudentID: ctx.QueryParam("student"),
	})
	page, size := pageParams(ctx, monitorPageSize)
	items, p := report.PaginateScores(report.SortByDateDesc(filtered), page, size)

	nameByNISN := make(map[string]string, len(students))
	for _, s := range students {
		nameByNISN[s.NISN] = s.Name
	}
	rows := make([]ScoreRow, 0, len(items))
	for _, s := range items {
		name := nameByNISN[s.StudentID]
		if name == "" {
			name = s.StudentID
		}
		rows = append(rows, ScoreRow{Score: s, StudentName: name})
	}

	return ctx.JSON(http.StatusOK, echo.Map{"scores": rows, "pagination": p})
}

// teacherProgress serves the per-teacher activity rollup.
func (api *principalApi) teacherProgress(ctx echo.Context) error {
	var (
		teachers []school.Teacher
		students []school.Student
		scores   []school.Score
	)
	grp, gctx := errgroup.WithContext(ctx.Request().Context())
	grp.Go(func() (err error) {
		teachers, err = api.service.Teachers(gctx)
		return err
	})
	grp.Go(func() (err error) {
		students, err = api.service.Students(gctx)
		return err
	})
	grp.Go(func() (err error) {
		scores, err = api.service.Scores(gctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report.TeacherProgressRollup(teachers, students, scores))
}

func pageParams(ctx echo.Context, defaultSize int) (page, size int) {
	page, _ = strconv.Atoi(ctx.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.QueryParam("size"))
	if err != nil || size < 1 {
		size = defaultSize
	}
	return page, size
}

type (
	DashboardResponse struct {
		TotalScores   int                    `json:"total_scores"`
		TotalStudents int                    `json:"total_students"`
		Distribution  []report.GradeCount    `json:"distribution"`
		Categories    []report.CategoryCount `json:"categories"`
		ClassActivity []report.ClassCount    `json:"class_activity"`
		TopStudents   []report.StudentRank   `json:"top_students"`
		RecentScores  []school.Score         `json:"recent_scores"`
	}

	ScoreRow struct {
		school.Score
		StudentName string `json:"student_name"`
	}
)
