package api

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/hireloop/slotd/pkg/errors"
)

const (
	RoleHR    = "hr"
	RoleAdmin = "admin"
)

// principal is the already-authenticated caller; the scheduler core
// never sees credentials, only this.
type principal struct {
	UserID string
	Role   string
}

type authClaims struct {
	jwt.StandardClaims

	Role string `json:"role"`
}

const principalKey = "principal"

func (s *server) authenticate(c *fiber.Ctx) error {
	raw := c.Get(fiber.HeaderAuthorization)

	const prefix = "Bearer "
	if !strings.HasPrefix(raw, prefix) {
		return s.sendError(c, http.StatusUnauthorized, "missing bearer token")
	}

	var claims authClaims
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(raw, prefix), &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		s.log.Warn(errors.WrapFail(err, "parse bearer token"))
		return s.sendError(c, http.StatusUnauthorized, "invalid token")
	}

	if claims.Subject == "" {
		return s.sendError(c, http.StatusUnauthorized, "token has no subject")
	}

	c.Locals(principalKey, principal{UserID: claims.Subject, Role: claims.Role})
	return c.Next()
}

func (s *server) requireRole(h fiber.Handler, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := principalFrom(c)
		for _, role := range roles {
			if p.Role == role {
				return h(c)
			}
		}
		return s.sendError(c, http.StatusForbidden, "insufficient role")
	}
}

func principalFrom(c *fiber.Ctx) principal {
	p, _ := c.Locals(principalKey).(principal)
	return p
}
