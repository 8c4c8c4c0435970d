package routes

import (
	"time"

	"github.com/careerpoint/admin-backend/internal/config"
	"github.com/careerpoint/admin-backend/internal/handlers"
	"github.com/careerpoint/admin-backend/internal/middleware"
	"github.com/careerpoint/admin-backend/internal/modules"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authz *services.AuthzService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	roleHandler *handlers.RoleHandler,
	reportHandler *handlers.ReportHandler,
	userHandler *handlers.UserHandler,
	jobHandler *handlers.JobHandler,
	statsHandler *handlers.StatsHandler,
	moduleList []modules.Module,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit, 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Report intake — any authenticated user may file a report
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.CreateReport)

	// Admin surface: JWT first, then per-route permission gates
	admin := api.Group("/admin", middleware.JWTProtected(cfg))

	admin.Get("/stats", middleware.RequirePermission(authz, "view_stats"), statsHandler.Dashboard)

	admin.Get("/users", middleware.RequireAnyPermission(authz, "view_users", "manage_users"), userHandler.ListUsers)
	admin.Get("/users/:id", middleware.RequireAnyPermission(authz, "view_users", "manage_users"), userHandler.GetUser)
	admin.Put("/users/:id/role", middleware.RequireSuperAdmin(authz), userHandler.AssignRole)

	admin.Get("/jobs", middleware.RequireAnyPermission(authz, "view_jobs", "manage_jobs"), jobHandler.ListJobs)
	admin.Get("/jobs/:id", middleware.RequireAnyPermission(authz, "view_jobs", "manage_jobs"), jobHandler.GetJob)
	admin.Put("/jobs/:id/status", middleware.RequirePermission(authz, "manage_jobs"), jobHandler.SetJobStatus)
	admin.Delete("/jobs/:id", middleware.RequirePermission(authz, "manage_jobs"), jobHandler.DeleteJob)

	admin.Get("/reports", middleware.RequireAnyPermission(authz, "view_reports", "manage_reports"), reportHandler.ListReports)
	admin.Get("/reports/:id", middleware.RequireAnyPermission(authz, "view_reports", "manage_reports"), reportHandler.GetReport)
	admin.Put("/reports/:id", middleware.RequirePermission(authz, "manage_reports"), reportHandler.ActionReport)

	// Role management is Super Admin territory
	roles := admin.Group("/roles", middleware.RequireSuperAdmin(authz))
	roles.Get("/", roleHandler.ListRoles)
	roles.Get("/permissions", roleHandler.ListPermissions)
	roles.Get("/:id", roleHandler.GetRole)
	roles.Post("/", roleHandler.CreateRole)
	roles.Put("/:id", roleHandler.UpdateRole)
	roles.Delete("/:id", roleHandler.DeleteRole)
	roles.Post("/:id/toggle", roleHandler.ToggleRoleStatus)

	// Feature modules mount their own permission-gated routes
	for _, m := range moduleList {
		m.RegisterAdminRoutes(admin, db, authz)
	}
}
