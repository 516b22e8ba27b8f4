package handlers

import (
	"sbu-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and hands every template the current session fields
// plus any pending flash notices.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if v, ok := c.Get("Session"); ok {
		if s, ok := v.(models.Session); ok {
			data["Session"] = s
			data["CurrentUsername"] = s.Username
			data["CurrentRole"] = s.Role
		}
	}

	// Flashes() consumes, so the session has to be saved again.
	sess := sessions.Default(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		_ = sess.Save()
		data["Flashes"] = flashes
	}

	c.HTML(status, tmpl, data)
}
