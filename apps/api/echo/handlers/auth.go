package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demoaplikasi02-prog/tkitharvysyah/apps/api/echo/helpers"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

// The portals have no passwords: a teacher or the principal signs in with
// their registered phone number, a parent with their child's NISN. Knowing
// the credential is the authentication, as with the paper forms it replaced.

type authApi struct {
	service *school.Service
}

func RegisterAuthAPI(g *echo.Group, svc *school.Service) {
	api := authApi{service: svc}

	lg := g.Group("/login")
	lg.POST("/teacher", api.teacherLogin)
	lg.POST("/parent", api.parentLogin)
	lg.POST("/principal", api.principalLogin)
}

func (api *authApi) teacherLogin(ctx echo.Context) error {
	data := new(PhoneLoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	teacher, err := api.service.TeacherByPhone(ctx.Request().Context(), data.Phone)
	if err != nil {
		if err == school.ErrNotFound {
			return helpers.ErrAuthenticationFailed
		}
		return err
	}

	token, err := helpers.GenerateToken(helpers.GetTeacherClaims(teacher))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, TeacherLoginResponse{Token: token, Teacher: teacher})
}

func (api *authApi) parentLogin(ctx echo.Context) error {
	data := new(NISNLoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	student, err := api.service.StudentByNISN(ctx.Request().Context(), data.NISN)
	if err != nil {
		if err == school.ErrNotFound {
			return helpers.ErrAuthenticationFailed
		}
		return err
	}

	token, err := helpers.GenerateToken(helpers.GetParentClaims(student))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ParentLoginResponse{Token: token, Student: student})
}

func (api *authApi) principalLogin(ctx echo.Context) error {
	data := new(PhoneLoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	principal, err := api.service.PrincipalByPhone(ctx.Request().Context(), data.Phone)
	if err != nil {
		if err == school.ErrNotFound {
			return helpers.ErrAuthenticationFailed
		}
		return err
	}

	token, err := helpers.GenerateToken(helpers.GetPrincipalClaims(principal))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, PrincipalLoginResponse{Token: token, Principal: principal})
}

type (
	PhoneLoginRequest struct {
		Phone string `json:"phone" validate:"required"`
	}

	NISNLoginRequest struct {
		NISN string `json:"nisn" validate:"required"`
	}

	TeacherLoginResponse struct {
		Token   string         `json:"token"`
		Teacher school.Teacher `json:"teacher"`
	}

	ParentLoginResponse struct {
		Token   string         `json:"token"`
		Student school.Student `json:"student"`
	}

	PrincipalLoginResponse struct {
		Token     string           `json:"token"`
		Principal school.Principal `json:"principal"`
	}
)

func (lr *PhoneLoginRequest) Validate() error {
	lr.Phone = core.CleanString(lr.Phone)
	return core.Validate.Struct(lr)
}

func (lr *NISNLoginRequest) Validate() error {
	lr.NISN = core.CleanString(lr.NISN)
	return core.Validate.Struct(lr)
}
