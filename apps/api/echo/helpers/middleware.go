package helpers

import "github.com/labstack/echo/v4"

// RoleMiddleware only lets holders of the given portal role through.
func RoleMiddleware(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := GetContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.Role == role {
				return next(ctx)
			}
			return ErrHttpForbidden
		}
	}
}
