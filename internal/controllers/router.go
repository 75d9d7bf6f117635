package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	URLService      URLCreator
	RedirectService Redirector
	SearchService   URLSearcher
	ManageService   OwnerURLManager
	PingService     ConnectionChecker

	// BaseURL базовый адрес коротких ссылок. Пусто - Scheme://Host запроса.
	BaseURL string
	Session middlewares.SessionConfig

	// Metrics может быть nil, тогда /metrics не регистрируется.
	Metrics MetricsExporter
	Logger  *zap.Logger
}

// MetricsExporter учитывает HTTP запросы и отдает накопленные метрики.
type MetricsExporter interface {
	middlewares.HTTPObserver
	Handler() http.Handler
}

// SetupRouter собирает gin.Engine со всеми маршрутами сервиса.
func SetupRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.LoggerMiddleware(p.Logger))
	r.Use(gin.Recovery())

	var observer middlewares.HTTPObserver
	if p.Metrics != nil {
		observer = p.Metrics
		r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	}
	r.Use(middlewares.MetricsMiddleware(observer))

	r.GET("/ping", NewPingController(p.PingService).Ping)

	app := r.Group("/")
	app.Use(middlewares.GzipMiddleware())
	app.Use(middlewares.SessionMiddleware(p.Session))
	app.Use(middlewares.CSRFMiddleware())

	shortURLController := NewShortURLController(p.URLService, p.RedirectService, p.BaseURL)
	searchController := NewSearchController(p.SearchService, p.BaseURL)
	userURLsController := NewUserURLsController(p.ManageService, p.BaseURL)
	sessionController := NewSessionController(p.Session)

	app.POST("/", shortURLController.CreateShortURL)
	app.GET("/s/:shortCode", shortURLController.Redirect)

	api := app.Group("/api")
	api.POST("/shorten", shortURLController.CreateShortURL)
	api.GET("/search", searchController.Search)
	api.POST("/session", sessionController.Create)

	user := api.Group("/user")
	user.Use(middlewares.RequireSession())
	user.GET("/urls", userURLsController.List)
	user.GET("/urls/:id", userURLsController.Detail)
	user.PATCH("/urls/:id", userURLsController.SetActive)
	user.DELETE("/urls/:id", userURLsController.Delete)

	return r
}
