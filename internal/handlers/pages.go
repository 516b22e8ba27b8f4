package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{
		"isAuthed": currentSession(c).Authenticated(),
	})
}
