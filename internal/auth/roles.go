package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/leasing-crm/internal/domain"
	apperrors "github.com/spec-kit/leasing-crm/pkg/util"
)

// RequireAgent ensures an authenticated agent principal is present.
func RequireAgent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeAgent || principal.Agent == nil {
			return apperrors.NewForbidden("MISSING_AUTHENTICATED_USER", "agent authentication required")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures the caller is authenticated (agent or guest).
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
