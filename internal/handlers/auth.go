package handlers

import (
	"net/http"

	"sbu-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login exchanges credentials for a session. One request, no retry; a failed
// attempt leaves the viewer on the login page with nothing persisted.
func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid login"})
		return
	}

	res, err := h.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"username": form.Username,
		}).WithError(err).Warn("login rejected")
		render(c, http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid login"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("token", res.AccessToken)
	sess.Set("role", res.Role)
	sess.Set("username", res.Username)
	_ = sess.Save()

	// Single branch: anything the backend calls non-admin lands on the
	// staff page.
	if models.UserRole(res.Role) == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/staff")
}

// Logout clears the whole session, identically from any page.
func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
