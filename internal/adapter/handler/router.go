package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-manager/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-manager/pkg/config"
	"github.com/johnquangdev/meeting-manager/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	jwtManager       *jwt.Manager
	authHandler      *Auth
	dashboardHandler *Dashboard
	meetingHandler   *Meeting
	taskHandler      *Task
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	jwtManager *jwt.Manager,
	authHandler *Auth,
	dashboardHandler *Dashboard,
	meetingHandler *Meeting,
	taskHandler *Task,
) *Router {
	return &Router{
		cfg:              cfg,
		jwtManager:       jwtManager,
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		meetingHandler:   meetingHandler,
		taskHandler:      taskHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)

	// Everything below requires a valid access token
	authed := v1.Group("", middleware.EchoAuth(rt.jwtManager))
	rt.setupDashboardRoutes(authed)
	rt.setupMeetingRoutes(authed)
	rt.setupTaskRoutes(authed)
}

func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")
	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
}

func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard", rt.dashboardHandler.Get)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")
	meetingGroup.GET("", rt.meetingHandler.List)
	meetingGroup.POST("", rt.meetingHandler.Create)
	// Registered before /:id so "stats" is not parsed as an identifier
	meetingGroup.GET("/stats", rt.meetingHandler.Stats)
	meetingGroup.GET("/:id", rt.meetingHandler.Get)
	meetingGroup.PUT("/:id/transcript", rt.meetingHandler.UpdateTranscript)
	meetingGroup.POST("/:id/summarize", rt.meetingHandler.Summarize)
	meetingGroup.GET("/:id/sentiment", rt.meetingHandler.Sentiment)
}

func (rt *Router) setupTaskRoutes(g *echo.Group) {
	g.GET("/tasks", rt.taskHandler.List)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
