package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/auth"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/Domenick1991/stadiumbooking/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"

	principalKey = "principal"
)

// RequestLogger tags each request with an id, puts a logrus entry carrying
// it on the request context and records the request duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(logger.ToContext(c.Request.Context(), entry))

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(elapsed.Seconds())
		entry.WithFields(logrus.Fields{
			"status":   c.Writer.Status(),
			"duration": elapsed,
		}).Debug("request served")
	}
}

// Authenticate reads the caller from the identity headers. Requests without
// them stay anonymous; a malformed role is rejected.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderUserID)
		rawRole := c.GetHeader(HeaderUserRole)
		if id == "" && rawRole == "" {
			c.Next()
			return
		}

		role, err := auth.ParseRole(rawRole)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Set(principalKey, &auth.Principal{ID: id, Role: role})
		c.Next()
	}
}

func RequireRole(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "sign in required"})
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role " + string(p.Role) + " may not access this resource"})
	}
}

func principalFrom(c *gin.Context) (*auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*auth.Principal)
	return p, ok && p != nil
}
