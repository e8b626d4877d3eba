package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/demoaplikasi02-prog/tkitharvysyah/apps/api/echo/helpers"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/report"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

type parentApi struct {
	service *school.Service
}

func RegisterParentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := parentApi{service: svc}

	pg := g.Group("/parent", jwt, helpers.RoleMiddleware(helpers.RoleParent))
	pg.GET("/report", api.learningReport)
	pg.GET("/billing", api.billing)
}

// Handlers

// learningReport returns the child's report card: profile plus scores
// grouped by category, newest first. The child is the token's subject.
func (api *parentApi) learningReport(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}
	nisn := claims.Subject

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

// billing returns the child's ledger for one billing tab (?kind=spp is the
// default, anything else selects one-off charges) with paid/outstanding
// totals for that tab.
func (api *parentApi) billing(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}

	items, err := api.service.BillingForStudent(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	kind := school.BillingKindFromString(ctx.QueryParam("kind"))
	tab := report.FilterBilling(items, kind)

	return ctx.JSON(http.StatusOK, BillingResponse{
		Kind:   kind,
		Items:  tab,
		Totals: report.BillingSummary(tab),
	})
}

type BillingResponse struct {
	Kind   school.BillingKind   `json:"kind"`
	Items  []school.BillingItem `json:"items"`
	Totals report.BillingTotals `json:"totals"`
}
