package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder receives per-request counters and latencies.
type RequestRecorder interface {
	RecordRequest(endpoint, status string)
	RecordLatency(operation string, seconds float64)
}

// Metrics records request counts and latencies per templated route so
// label cardinality stays bounded regardless of the symbols requested.
func Metrics(rec RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}
			rec.RecordRequest(route, strconv.Itoa(c.Response().Status))
			rec.RecordLatency("http_request", time.Since(start).Seconds())

			return err
		}
	}
}
