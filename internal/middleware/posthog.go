package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/campus_connect/internal/utils"
	"github.com/gin-gonic/gin"
)

// EventTracker is the subset of the analytics client the middleware needs.
type EventTracker interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// PosthogMiddleware records one analytics event per successful, authenticated
// write request. Reads are public and are not tracked.
func PosthogMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || !tracker.IsInitialized() || c.Request.Method == http.MethodGet {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := EventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Enqueue(userID, eventName, props)
	}
}

// EventName derives an event name from a route, e.g. PUT /api/marketplace/:id -> "put_api_marketplace_id".
func EventName(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	path := strings.Trim(fullPath, "/")
	path = strings.ReplaceAll(path, ":", "")
	path = strings.ReplaceAll(path, "/", "_")
	path = strings.ReplaceAll(path, "-", "_")
	return strings.ToLower(method) + "_" + path
}

var _ EventTracker = (*utils.PosthogClientWrapper)(nil)
