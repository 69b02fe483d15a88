package app

import (
	"devquiz_backend/docs"
	"devquiz_backend/internal/config"
	"devquiz_backend/internal/middleware"
	"devquiz_backend/internal/model"
	"devquiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerCandidateRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerCandidateRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	rg.GET("/positions", c.position.List)
	rg.GET("/positions/:id", c.position.Get)

	// quiz lifecycle, candidate side
	rg.POST("/quizzes", c.quiz.Create)
	rg.POST("/quizzes/submit", c.quiz.Submit)
	rg.GET("/quizzes/:id", c.quiz.Get)
	rg.GET("/quizzes/results/:userId", c.quiz.ResultsByUser)

	rg.POST("/assignments/:id/submit", c.assignment.Submit)
	rg.GET("/assignments/:id", c.assignment.Get)
	rg.GET("/assignments/results/:userId", c.assignment.ResultsByUser)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/positions", c.position.Create)
		admin.PUT("/positions/:id", c.position.Update)
		admin.DELETE("/positions/:id", c.position.Delete)

		admin.POST("/questions", c.question.Create)
		admin.GET("/positions/:positionId/questions", c.question.ListByPosition)
		admin.GET("/questions/:id", c.question.Get)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)
		admin.POST("/questions/:id/choices", c.question.AddChoice)
		admin.DELETE("/choices/:id", c.question.DeleteChoice)
		admin.POST("/questions/:id/attachment", c.question.UploadAttachment)

		admin.POST("/quizzes/review", c.quiz.Review)

		admin.POST("/assignments", c.assignment.Create)
		admin.POST("/assignments/:id/review", c.assignment.Review)

		admin.GET("/analytics/positions/:positionId/top", c.analytics.TopByPosition)
		admin.GET("/analytics/users/:userId/top", c.analytics.TopByUser)
		admin.GET("/analytics/positions/:positionId/extremes", c.analytics.Extremes)
		admin.GET("/analytics/positions/:positionId/outcomes", c.analytics.Outcomes)
		admin.GET("/analytics/positions/averages", c.analytics.PositionAverages)
	}
}
