package handlers

import (
	"sbu-console/internal/api"
	"sbu-console/internal/config"
	"sbu-console/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves every page. It owns nothing but the backend client; all
// state lives in the session cookie or on the backend.
type Handler struct {
	api *api.Client
	log *logrus.Logger
}

func New(client *api.Client) *Handler {
	return &Handler{
		api: client,
		log: config.GetLogger(),
	}
}

func currentSession(c *gin.Context) models.Session {
	if v, ok := c.Get("Session"); ok {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Session{}
}
