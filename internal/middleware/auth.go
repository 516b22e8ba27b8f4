package middleware

import (
	"net/http"

	"sbu-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// deny aborts the request before any page handler (and so any backend fetch)
// can run, and bounces the viewer to the landing page.
func deny(c *gin.Context) {
	sess := sessions.Default(c)
	sess.AddFlash("Unauthorized access")
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
	c.Abort()
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		token, _ := sess.Get("token").(string)
		if token == "" {
			deny(c)
			return
		}
		c.Next()
	}
}

func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, ok := sess.Get("role").(string)
		if !ok || models.UserRole(roleStr) != role {
			deny(c)
			return
		}
		c.Next()
	}
}
