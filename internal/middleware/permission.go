package middleware

import (
	"fmt"

	"github.com/careerpoint/admin-backend/internal/catalog"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/identity"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Gate slugs are checked against the permission catalog when the route
// table is built, so a misspelled slug fails at startup instead of
// silently denying every request.
var gateCatalog = catalog.NewRegistry()

func mustKnowSlug(slug string) {
	if !gateCatalog.Exists(slug) {
		panic(fmt.Sprintf("unknown permission slug %q in route gate", slug))
	}
}

// RequirePermission gates a route on one capability. The authz layer fails
// closed, so a broken lookup renders as access denied, never a 500.
func RequirePermission(authz *services.AuthzService, permissionSlug string) fiber.Handler {
	mustKnowSlug(permissionSlug)
	return func(c *fiber.Ctx) error {
		userID, err := identity.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}
		if !authz.HasPermission(userID, permissionSlug) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Access denied"))
		}
		return c.Next()
	}
}

// RequireAnyPermission passes when the user holds at least one of the
// listed capabilities.
func RequireAnyPermission(authz *services.AuthzService, permissionSlugs ...string) fiber.Handler {
	for _, slug := range permissionSlugs {
		mustKnowSlug(slug)
	}
	return func(c *fiber.Ctx) error {
		userID, err := identity.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}
		if !authz.HasAnyPermission(userID, permissionSlugs...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Access denied"))
		}
		return c.Next()
	}
}

// RequireSuperAdmin gates role management, which no granular permission
// unlocks.
func RequireSuperAdmin(authz *services.AuthzService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := identity.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
		}
		if !authz.IsSuperAdmin(userID) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Super Admin access required"))
		}
		return c.Next()
	}
}
