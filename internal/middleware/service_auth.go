package middleware

import (
	"strings"

	"relay-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ServiceAuth validates X-Service-Key header for internal service-to-service
// authentication. The header carries "serviceName:key".
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		serviceKey := c.GetHeader("X-Service-Key")
		if serviceKey == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		parts := strings.SplitN(serviceKey, ":", 2)
		if len(parts) != 2 {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName := parts[0]
		keyValue := parts[1]

		configuredKey, exists := m.config.InternalConfig.ServiceKeys[serviceName]
		if !exists {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values
		if keyValue != configuredKey {
			m.l.Errorf(c.Request.Context(), "ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Store service name in context for logging/audit
		c.Set("service_name", serviceName)
		c.Next()
	}
}

// InternalAuth validates the internal key from the Authorization header
// (Bearer <key> or raw key). If internalKey is empty, all requests are
// rejected with 401.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		tokenString := authHeader
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		}
		if m.internalKey == "" || tokenString != m.internalKey {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
