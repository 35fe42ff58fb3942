package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limiter "github.com/ulule/limiter/v3"

	"github.com/CellkomStore/cellkom_store_app/cmd/docs"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/middleware"
	"github.com/CellkomStore/cellkom_store_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes: credential auth (rate limited), Google sign-in, the
	// storefront catalog and service order tracking
	registerAuthRoutes(r, cfg, services, authLimiter)
	registerStorefrontRoutes(r, services)

	// Staff API behind JWT auth
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	staff := []domain.UserRole{domain.RoleAdmin, domain.RoleKasir}

	registerLedgerRoutes(v1, services.Ledger, services.Receipt, staff)
	registerUserRoutes(v1, services.User)
	registerProductRoutes(v1, services.Product, staff)
	registerCustomerRoutes(v1, services.Customer, staff)
	registerSupplierRoutes(v1, services.Supplier, staff)
	registerSaleRoutes(v1, services.Sale, staff)
	registerServiceOrderRoutes(v1, services.ServiceOrder, staff)
	registerReportRoutes(v1, services.Reporting, services.Receipt)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
