package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/workspace_finance_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AnalyticsMiddleware captures one product event per successful mutating
// request of an authenticated user, named after the route,
// e.g. "POST /api/v1/transactions" becomes "post_api_v1_transactions".
func AnalyticsMiddleware(client *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.Enabled() {
			c.Next()
			return
		}

		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		route := c.FullPath()
		if route == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       route,
			"status_code": c.Writer.Status(),
		}
		if scope, ok := GetScopeFromContext(c); ok {
			props["workspace_id"] = scope.WorkspaceID
		}
		client.Capture(userID, analyticsEventName(c.Request.Method, route), props)
	}
}

func analyticsEventName(method, route string) string {
	name := strings.ToLower(method) + "_" + strings.Trim(route, "/")
	name = strings.NewReplacer("/", "_", ":", "", "-", "_").Replace(name)
	return name
}
