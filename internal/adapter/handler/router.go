package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/summary"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	summaryHandler *Summary
	emailHandler   *Email
	remoteAI       bool
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, summaryHandler *Summary, emailHandler *Email, remoteAI bool) *Router {
	return &Router{
		cfg:            cfg,
		summaryHandler: summaryHandler,
		emailHandler:   emailHandler,
		remoteAI:       remoteAI,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("", rt.apiStatus)

	rt.setupSummaryRoutes(api)
	rt.setupEmailRoutes(api)
}

// setupSummaryRoutes configures summary CRUD routes
func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	summaries := g.Group("/summarize")

	summaries.POST("", rt.summaryHandler.Create)
	summaries.GET("", rt.summaryHandler.List)
	summaries.GET("/:id", rt.summaryHandler.Get)
	summaries.PUT("/:id", rt.summaryHandler.Update)
	summaries.DELETE("/:id", rt.summaryHandler.Delete)
}

// setupEmailRoutes configures summary sharing routes
func (rt *Router) setupEmailRoutes(g *echo.Group) {
	email := g.Group("/email")

	email.POST("/:id", rt.emailHandler.Send)
	email.GET("/:id/archive", rt.emailHandler.SentEmails)
}

// root answers liveness probes with plain text
func (rt *Router) root(c echo.Context) error {
	return c.String(http.StatusOK, "Meeting Notes Summarizer API is running")
}

// apiStatus reports whether summaries come from the model or the fallback
// @Summary      API status
// @Tags         System
// @Produce      json
// @Success      200  {object}  summary.APIStatusResponse
// @Router       /api [get]
func (rt *Router) apiStatus(c echo.Context) error {
	status := "Using fallback mock AI"
	if rt.remoteAI {
		status = "API key configured"
	}
	return c.JSON(http.StatusOK, summary.APIStatusResponse{
		Status:   "ok",
		Message:  "API is running",
		AIStatus: status,
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
	})
}
