package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/demoaplikasi02-prog/tkitharvysyah/apps/api/echo/helpers"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/report"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

type teacherApi struct {
	service *school.Service
}

func RegisterTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := teacherApi{service: svc}

	tg := g.Group("/teacher", jwt, helpers.RoleMiddleware(helpers.RoleTeacher))
	tg.GET("/students", api.students)
	tg.GET("/curriculum", api.curriculum)
	tg.GET("/scores", api.scores)
	tg.POST("/scores", api.scoreCreate)
	tg.PUT("/scores/:timestamp", api.scoreUpdate)
	tg.DELETE("/scores/:timestamp", api.scoreDelete)
	tg.GET("/report", api.classReport)
	tg.GET("/report/:nisn", api.studentReport)
}

// Handlers

// students returns the roster of the teacher's own class.
func (api *teacherApi) students(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}
	students, err := api.service.StudentsByClass(ctx.Request().Context(), claims.Class)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

// curriculum returns the assessable menu, optionally narrowed by
// ?category= and ?semester=.
func (api *teacherApi) curriculum(ctx echo.Context) error {
	rawCategory := ctx.QueryParam("category")
	if rawCategory == "" {
		items, err := api.service.Curriculum(ctx.Request().Context())
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, items)
	}

	category := school.CategoryFromString(rawCategory)
	if category == school.CategoryUnclassified {
		return core.NewValidationError(nil, core.FieldError{Field: "category", Error: "unknown assessment category"})
	}
	items, err := api.service.CurriculumFor(ctx.Request().Context(), category, ctx.QueryParam("semester"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, items)
}

// scores returns one student's scores, newest first.
func (api *teacherApi) scores(ctx echo.Context) error {
	nisn := ctx.QueryParam("student")
	if nisn == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "student", Error: "this field is required"})
	}
	scores, err := api.service.ScoresForStudent(ctx.Request().Context(), nisn)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report.SortByDateDesc(scores))
}

func (api *teacherApi) scoreCreate(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}

	data := new(school.NewScore)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	// the author is taken from the token, never from the payload
	data.TeacherName = claims.Name

	if err := api.service.CreateScore(ctx.Request().Context(), *data); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusCreated)
}

func (api *teacherApi) scoreUpdate(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}

	data := new(school.UpdateScore)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	data.Timestamp = ctx.Param("timestamp")
	data.TeacherName = claims.Name

	if err := api.service.EditScore(ctx.Request().Context(), *data); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *teacherApi) scoreDelete(ctx echo.Context) error {
	if err := api.service.DeleteScore(ctx.Request().Context(), ctx.Param("timestamp")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// classReport returns the teacher's roster with each student's assessment
// count and grade distribution, in roster order.
func (api *teacherApi) classReport(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}

	var (
		students []school.Student
		scores   []school.Score
	)
	grp, gctx := errgroup.WithContext(ctx.Request().Context())
	grp.Go(func() (err error) {
		students, err = api.service.StudentsByClass(gctx, claims.Class)
		return err
	})
	grp.Go(func() (err error) {
		scores, err = api.service.Scores(gctx)
		return err
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	byStudent := make(map[string][]school.Score)
	for _, s := range scores {
		byStudent[s.StudentID] = append(byStudent[s.StudentID], s)
	}

	rows := make([]ClassReportRow, 0, len(students))
	for _, student := range students {
		own := byStudent[student.NISN]
		rows = append(rows, ClassReportRow{
			Student:      student,
			TotalScores:  len(own),
			Distribution: report.GradeDistribution(own),
		})
	}
	return ctx.JSON(http.StatusOK, rows)
}

// studentReport returns one student's profile and scores grouped into the
// report card's category sections.
func (api *teacherApi) studentReport(ctx echo.Context) error {
	nisn := ctx.Param("nisn")

	var (
		student school.Student
		scores  []school.Score
	)
	grp, gctx := errgroup.WithContext(ctx.Request().Context())
	grp.Go(func() (err error) {
		student, err = api.service.StudentByNISN(gctx, nisn)
		return err
	})
	grp.Go(func() (err error) {
		scores, err = api.service.ScoresForStudent(gctx, nisn)
		return err
	})
	if err := grp.Wait(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, StudentReportResponse{
		Student: student,
		Report:  report.GroupByCategory(report.SortByDateDesc(scores)),
	})
}

type (
	StudentReportResponse struct {
		Student school.Student        `json:"student"`
		Report  report.LearningReport `json:"report"`
	}

	ClassReportRow struct {
		Student      school.Student      `json:"student"`
		TotalScores  int                 `json:"total_scores"`
		Distribution []report.GradeCount `json:"distribution"`
	}
)
