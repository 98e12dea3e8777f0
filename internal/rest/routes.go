package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiPrefix = "/api"

	topicsPath          = "/topics"
	articlesPath        = "/articles"
	articleByIDPath     = articlesPath + "/:article_id"
	articleCommentsPath = articleByIDPath + "/comments"
	commentByIDPath     = articleCommentsPath + "/:comment_id"
	usersPath           = "/users"

	healthPath  = "/health"
	metricsPath = "/metrics"
)

// RegisterRoutes registers all routes for the handler
func (h *BoardHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Use(h.loggingMiddleware, metricsMiddleware)

	h.registerAPIRoutes(e)

	h.registerHealthCheck(e)

	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	return e
}

func (h *BoardHandler) registerAPIRoutes(e *echo.Echo) {
	api := e.Group(apiPrefix)

	api.GET("", h.Endpoints)
	api.GET(topicsPath, h.Topics)
	api.GET(articlesPath, h.Articles)
	api.GET(articleByIDPath, h.ArticleByID)
	api.PATCH(articleByIDPath, h.AdjustVotes)
	api.GET(articleCommentsPath, h.ArticleComments)
	api.POST(articleCommentsPath, h.AddComment)
	api.DELETE(commentByIDPath, h.DeleteComment)
	api.GET(usersPath, h.Users)
}

func (h *BoardHandler) registerHealthCheck(e *echo.Echo) {
	e.GET(healthPath, h.handleHealth)
}

func (h *BoardHandler) handleHealth(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		h.log.Error("health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// httpErrorHandler renders router errors (unknown path, wrong method) in the {"msg": ...} shape.
func (h *BoardHandler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := msgInternalError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch {
		case status == http.StatusNotFound:
			msg = msgNotFound
		case status < http.StatusInternalServerError:
			msg = http.StatusText(status)
		}
	}

	h.log.Warn("HTTP error", "status", status, "path", c.Request().URL.Path, "error", err)

	if err := c.JSON(status, ErrorResponse{Msg: msg}); err != nil {
		h.log.Error("failed to write error response", "error", err)
	}
}

func (h *BoardHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		status := c.Response().Status
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return err
	}
}
