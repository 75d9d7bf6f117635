package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver принимает итог обработки запроса.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware учитывает запросы по шаблону маршрута, а не по фактическому пути,
// чтобы короткие коды не раздували число серий.
func MetricsMiddleware(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if observer == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
