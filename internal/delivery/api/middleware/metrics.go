package middleware

import (
	"net/http"
	"time"

	"shelf/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Metrics records request counts and latency per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else if !c.Response().Committed {
				status = http.StatusInternalServerError
			}
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		metrics.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
