package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/cloud-ru/feasibility-go/internal/metrics"
)

// RequestLogger пишет итог каждого запроса в лог и в метрику api_calls_total
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		metrics.APICalls.WithLabelValues("http", path, strconv.Itoa(status)).Inc()

		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("Запрос завершён с ошибкой")
			return
		}
		entry.Debug("Запрос обработан")
	}
}
