package app

import (
	"hackathon_judging_backend/docs"
	"hackathon_judging_backend/internal/config"
	"hackathon_judging_backend/internal/middleware"
	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// Judge endpoints
		judge := authGroup.Group("/")
		judge.Use(middleware.RoleMiddleware(model.JudgeRole))
		{
			judge.POST("/hackathons/:id/evaluations", c.evaluation.Submit)
		}

		// Admin endpoints
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/hackathons/:id/results", c.results.GetResults)
			admin.GET("/hackathons/:id/judge-activity", c.results.GetJudgeActivity)
			admin.POST("/hackathons/:id/snapshots", c.snapshot.Create)
			admin.GET("/snapshots", c.snapshot.List)
			admin.GET("/snapshots/:id", c.snapshot.Get)
			admin.POST("/snapshots/:id/export", c.snapshot.Export)
		}
	}
}
