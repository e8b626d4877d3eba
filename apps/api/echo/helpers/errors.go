package helpers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	pkgerrors "github.com/pkg/errors"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

var (
	errUnauthorized          = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	ErrAuthenticationFailed  = echo.NewHTTPError(http.StatusBadRequest, "authentication failed")
	ErrHttpForbidden         = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	ErrHttpNotFound          = echo.NewHTTPError(http.StatusNotFound, "not found")
	errHttpSourceUnavailable = echo.NewHTTPError(http.StatusBadGateway, "data source unavailable")
	errTokenSigningFailed    = errors.New("failed to sign token")
)

// NewAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func NewAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := pkgerrors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr == middleware.ErrJWTMissing {
				code = http.StatusUnauthorized
				message = origErr.Message
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		case *school.RemoteError:
			// failure reported by the data source; show its message as-is
			code = http.StatusBadGateway
			message = origErr.Message
		default:
			switch pkgerrors.Cause(err) {
			case school.ErrNotFound:
				code = ErrHttpNotFound.Code
				message = ErrHttpNotFound.Message
			case school.ErrMissingTimestamp:
				code = http.StatusBadRequest
				message = school.ErrMissingTimestamp.Error()
			case school.ErrSourceUnavailable:
				code = errHttpSourceUnavailable.Code
				message = errHttpSourceUnavailable.Message
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				args := []interface{}{pkgerrors.Wrap(err, msg)}
				if person := contextPerson(ctx); person != nil {
					args = append(args, person)
				}
				logger.Error(msg, args...)

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

// contextPerson resolves the acting portal identity from the request token,
// for error-report attribution.
func contextPerson(ctx echo.Context) interface{} {
	claims, err := GetContextClaims(ctx)
	if err != nil {
		return nil
	}
	switch claims.Role {
	case RoleTeacher:
		return school.Teacher{Phone: claims.Subject, Name: claims.Name, Class: claims.Class}
	case RoleParent:
		return school.Student{NISN: claims.Subject, Name: claims.Name, Class: claims.Class}
	case RolePrincipal:
		return school.Principal{Phone: claims.Subject, Name: claims.Name}
	}
	return nil
}
