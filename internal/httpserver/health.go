package httpserver

import (
	"github.com/gin-gonic/gin"

	"relay-srv/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "relay-srv"
)

// healthCheck handles health check requests
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (Postgres + MinIO).
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.postgresDB.PingContext(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	if err := srv.minioClient.HealthCheck(ctx); err != nil {
		c.JSON(503, gin.H{
			"status":  "not ready",
			"message": "Object storage connection failed",
			"error":   err.Error(),
		})
		return
	}
	response.OK(c, gin.H{
		"status":   "ready",
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": "connected",
		"storage":  "connected",
	})
}

// liveCheck handles liveness check requests
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
