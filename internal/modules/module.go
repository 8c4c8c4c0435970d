package modules

import (
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Module is one self-contained admin area (ads, payment settings, ...).
// Each module owns its models and mounts its own permission-gated routes.
type Module interface {
	// ID returns the unique module identifier.
	ID() string

	// Models returns the GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterAdminRoutes mounts the module's routes on the admin group.
	// The group already has JWT middleware applied; modules add their own
	// permission gates per route.
	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, authz *services.AuthzService)
}
