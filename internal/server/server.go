// Package server exposes the answering service over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goanswer/internal/answer"
)

var questionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "goanswer_questions_total",
	Help: "Questions handled, by outcome.",
}, []string{"outcome"})

// Handler serves the ask endpoint backed by the answer service.
type Handler struct {
	Answer *answer.Service
}

// New builds the echo instance with middleware, routes and the unified JSON
// error handler. The caller owns starting and shutting it down.
func New(svc *answer.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		log.Error().Int("status", code).Str("method", req.Method).Str("path", req.URL.Path).Err(err).Msg("request failed")
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]string{"error": msg})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	h := &Handler{Answer: svc}
	e.POST("/api/ask", h.ask)
	return e
}

func (h *Handler) ask(c echo.Context) error {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&req); err != nil {
		questionsTotal.WithLabelValues("bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Question is required.")
	}

	resp, err := h.Answer.Ask(c.Request().Context(), req.Question)
	switch {
	case err == nil:
		if len(resp.Sources) == 0 {
			questionsTotal.WithLabelValues("no_context").Inc()
		} else {
			questionsTotal.WithLabelValues("answered").Inc()
		}
		return c.JSON(http.StatusOK, resp)
	case errors.Is(err, answer.ErrEmptyQuestion):
		questionsTotal.WithLabelValues("bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "Question is required.")
	case errors.Is(err, answer.ErrCompletion):
		questionsTotal.WithLabelValues("completion_error").Inc()
		return echo.NewHTTPError(http.StatusBadGateway, "Answer generation failed.")
	case errors.Is(err, answer.ErrNoSeeds):
		questionsTotal.WithLabelValues("config_error").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, "No seed documents available. Ensure the crawl CSV is uploaded.")
	default:
		questionsTotal.WithLabelValues("config_error").Inc()
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
