package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs one structured event per request
func EchoMiddleware(log *Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("request_id", res.Header().Get(echo.HeaderXRequestID)),
			}

			switch {
			case res.Status >= 500:
				log.Error("request completed", append(fields, Err(err))...)
			case res.Status >= 400:
				log.Warn("request completed", fields...)
			default:
				log.Info("request completed", fields...)
			}

			return nil
		}
	}
}
