package middleware

import (
	"sbu-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectSession copies the stored token/role/username triple into the gin
// context so handlers and templates see one Session value per request.
func InjectSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		token, _ := sess.Get("token").(string)
		role, _ := sess.Get("role").(string)
		username, _ := sess.Get("username").(string)

		if token != "" {
			c.Set("Session", models.Session{
				Token:    token,
				Role:     models.UserRole(role),
				Username: username,
			})
		}

		c.Next()
	}
}
