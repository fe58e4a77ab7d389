package router

import (
	"virtual-tutor/internal/cache"
	"virtual-tutor/internal/database"
	"virtual-tutor/internal/handler"
	"virtual-tutor/internal/handler/auth"
	"virtual-tutor/internal/handler/generator"
	"virtual-tutor/internal/handler/history"
	"virtual-tutor/internal/handler/performance"
	"virtual-tutor/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup registers every route. apiKey is the upstream completion credential;
// empty means the generator answers its fixed unconfigured response.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, apiKey string) {
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiAuth := e.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db))
	apiAuth.GET("/users", auth.ListUsersHandler(db), middleware.RequireAdmin)

	apiHistory := e.Group("/history", middleware.RequireAuth)
	apiHistory.POST("/", history.CreateHandler(db, rdb))
	apiHistory.GET("/", history.ListHandler(db, rdb))

	apiPerformance := e.Group("/performance", middleware.RequireAuth)
	apiPerformance.POST("/", performance.CreateHandler(db, rdb))
	apiPerformance.GET("/", performance.ListHandler(db, rdb))

	apiGenerator := e.Group("/generator", middleware.RequireAuth)
	apiGenerator.POST("/chat", generator.ChatHandler(apiKey))
	apiGenerator.POST("/flashcards", generator.FlashcardsHandler())
	apiGenerator.POST("/quiz", generator.QuizHandler())
}
