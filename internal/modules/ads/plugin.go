package ads

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

func (p *Plugin) ID() string { return "ads" }

func (p *Plugin) Models() []interface{} {
	return []interface{}{
		&Advertisement{},
	}
}

func (p *Plugin) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, authz *services.AuthzService) {
	service := NewService(db)
	handler := NewHandler(service)

	router.Get("/ads", middleware.RequireAnyPermission(authz, "view_ads", "edit_ads"), handler.List)
	router.Get("/ads/:id", middleware.RequireAnyPermission(authz, "view_ads", "edit_ads"), handler.Get)
	router.Post("/ads", middleware.RequirePermission(authz, "edit_ads"), handler.Create)
	router.Put("/ads/:id", middleware.RequirePermission(authz, "edit_ads"), handler.Update)
	router.Post("/ads/:id/toggle", middleware.RequirePermission(authz, "edit_ads"), handler.Toggle)
	router.Delete("/ads/:id", middleware.RequirePermission(authz, "delete_ads"), handler.Delete)
}
