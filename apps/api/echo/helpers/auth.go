package helpers

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/demoaplikasi02-prog/tkitharvysyah/core"
	"github.com/demoaplikasi02-prog/tkitharvysyah/core/school"
)

// Portal roles carried in the token.
const (
	RoleTeacher   = "teacher"
	RoleParent    = "parent"
	RolePrincipal = "principal"
)

var (
	// set once by ConfigureAuth
	appName         string
	secretKey       []byte
	expirationDelta time.Duration

	// AppJWTConfig is the JWT auth middleware config.
	AppJWTConfig = middleware.JWTConfig{
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "portalToken",
		Claims:        new(Claims),
	}
)

// Claims represents the authorization claims transmitted via a JWT.
// Subject is the credential the holder logged in with: the teacher's or
// principal's phone number, or the child's NISN for a parent.
type Claims struct {
	jwt.StandardClaims
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Class string `json:"class,omitempty"`
}

// ConfigureAuth wires the signing settings and returns the JWT middleware.
func ConfigureAuth(conf *core.Config) echo.MiddlewareFunc {
	appName = conf.AppName
	secretKey = conf.SecretKey
	expirationDelta = conf.JWTExpirationDelta
	AppJWTConfig.SigningKey = secretKey
	return middleware.JWTWithConfig(AppJWTConfig)
}

func newClaims(role, subject, name, class string) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    appName,
			Subject:   subject,
			Audience:  role,
			ExpiresAt: now.Add(expirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role:  role,
		Name:  name,
		Class: class,
	}
}

func GetTeacherClaims(t school.Teacher) *Claims {
	return newClaims(RoleTeacher, t.Phone, t.Name, t.Class)
}

func GetParentClaims(s school.Student) *Claims {
	return newClaims(RoleParent, s.NISN, s.Name, s.Class)
}

func GetPrincipalClaims(p school.Principal) *Claims {
	return newClaims(RolePrincipal, p.Phone, p.Name, "")
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(AppJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(secretKey)
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

// GetContextClaims extracts the verified claims set by the JWT middleware.
func GetContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(AppJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}
