package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/workspace_finance_app/cmd/docs"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/middleware"
	"github.com/SscSPs/workspace_finance_app/internal/platform/config"
	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes. analytics may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.AnalyticsClient,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if err := setupAPIV1Routes(r, cfg, services, analytics); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group. Auth endpoints are public,
// onboarding and profile need a session, everything else needs a workspace.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.AnalyticsClient,
) error {
	v1 := r.Group("/api/v1")

	var credentialsLimit gin.HandlerFunc
	if cfg.LoginRateLimit != "" {
		l, err := middleware.NewRateLimiter(cfg.LoginRateLimit)
		if err != nil {
			return fmt.Errorf("configure login rate limit: %w", err)
		}
		credentialsLimit = middleware.RateLimit(l)
	}
	registerAuthRoutes(v1, services.Auth, cfg.FrontendBaseURL, cfg.IsProduction, credentialsLimit)

	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer), middleware.AnalyticsMiddleware(analytics))
	registerOnboardingRoutes(authed, services.Onboarding)
	registerUserRoutes(authed, services.User)

	scoped := authed.Group("", middleware.WorkspaceScopeMiddleware(services.Workspace))
	registerWorkspaceRoutes(scoped, services.Workspace)
	registerAccountRoutes(scoped, services.Account)
	registerCreditCardRoutes(scoped, services.CreditCard)
	registerCategoryRoutes(scoped, services.Category)
	registerTransactionRoutes(scoped, services.Transaction)
	registerGoalRoutes(scoped, services.Goal)
	registerDashboardRoutes(scoped, services.Dashboard)
	return nil
}

// setupSwaggerRoutes serves the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
