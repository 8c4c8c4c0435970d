package payments

import (
	"github.com/careerpoint/admin-backend/internal/middleware"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "payments" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Setting{},
	}
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, authz *services.AuthzService) {
	service := NewService(db)
	handler := NewHandler(service)

	router.Get("/settings", middleware.RequireAnyPermission(authz, "view_settings", "edit_settings"), handler.List)
	router.Put("/settings/:key", middleware.RequirePermission(authz, "edit_settings"), handler.Set)
	router.Delete("/settings/:key", middleware.RequirePermission(authz, "edit_settings"), handler.Delete)
}
