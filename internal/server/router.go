package server

import (
	"html/template"
	"net/http"

	"sbu-console/internal/api"
	"sbu-console/internal/config"
	"sbu-console/internal/handlers"
	"sbu-console/internal/middleware"
	"sbu-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expensecategory", models.ValidExpenseCategory)
	}
}

func NewRouter(cfg *config.Config, client *api.Client) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"naira": models.Naira,
		"comma": models.Comma,
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	registerValidations()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("sbu_session", store))

	r.Use(middleware.RequestID())
	r.Use(middleware.InjectSession())

	h := handlers.New(client)

	// LANDING
	r.GET("/", h.IndexPage)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// STAFF
	staff := auth.Group("/staff", middleware.RequireRole(models.RoleStaff))
	staff.GET("", h.StaffDashboard)
	staff.POST("/expenses", h.SaveExpense)

	// ADMIN
	admin := auth.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("", h.AdminDashboard)
	admin.POST("/staff", h.CreateStaff)
	admin.GET("/report", h.SBUReport)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
