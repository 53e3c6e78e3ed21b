package middleware

import (
	"strings"

	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys populated by RequireAuth.
const (
	CtxSubjectKey = "auth_subject"
	CtxEmailKey   = "auth_email"
	CtxNameKey    = "auth_name"
	CtxImageKey   = "auth_image_url"
)

type SessionClaims struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth validates the Bearer token issued by the auth provider and
// stores its subject in request locals. It rejects before any handler runs.
func RequireAuth() fiber.Handler {
	secret := []byte(config.LoadAuthConfig().JWTSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
			})
		}

		var claims SessionClaims
		parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !parsed.Valid || claims.Subject == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Unauthorized",
			}, err)
		}

		c.Locals(CtxSubjectKey, claims.Subject)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxNameKey, claims.Name)
		c.Locals(CtxImageKey, claims.ImageURL)
		return c.Next()
	}
}

// Subject returns the authenticated subject id stored by RequireAuth, or ""
// when the request never passed the guard.
func Subject(c *fiber.Ctx) string {
	subject, _ := c.Locals(CtxSubjectKey).(string)
	return subject
}

func LocalString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
