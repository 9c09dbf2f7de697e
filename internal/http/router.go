package api

import (
	"log"
	stdhttp "net/http"

	"backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps bundles the wired handlers the router mounts. Everything is built
// in main and passed down; handlers hold their own collaborators.
type Deps struct {
	System    h.SystemHandler
	Auth      h.AuthHandler
	Users     h.UserHandler
	Companies h.CompanyHandler
	Tasks     h.TaskHandler
	Reports   h.ReportsHandler
}

func NewRouter(env config.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", deps.System.Health)
		api.GET("/db-check", deps.System.DBCheck)

		api.POST("/auth/token", deps.Auth.Token)

		users := api.Group("/users")
		users.GET("", deps.Users.List)
		users.GET("/search", deps.Users.Search)
		users.GET("/:id", deps.Users.Get)
		users.POST("", deps.Users.Create)
		users.PUT("/:id", deps.Users.Update)
		users.DELETE("/:id", deps.Users.Delete)

		companies := api.Group("/companies")
		companies.GET("", deps.Companies.List)
		companies.GET("/:companyId", deps.Companies.Get)
		companies.POST("", deps.Companies.Create)
		companies.PUT("/:companyId", deps.Companies.Update)
		companies.DELETE("/:companyId", deps.Companies.Delete)
		companies.GET("/:companyId/users", deps.Companies.ListUsers)
		companies.POST("/:companyId/users/:userId", deps.Companies.AssignUser)
		companies.DELETE("/:companyId/users/:userId", deps.Companies.RemoveUser)

		// The report endpoint is only locked down when admin auth is
		// fully configured; a secret without a password hash would make
		// tokens unobtainable.
		reportsSecret := ""
		if env.JWTSecret != "" && env.AdminPasswordHash != "" {
			reportsSecret = env.JWTSecret
		}
		reports := api.Group("/reports", middleware.AdminRequired(reportsSecret))
		reports.GET("/users", deps.Reports.UserDirectory)
	}

	// Tasks predate the /api prefix and keep their legacy mount.
	tasks := r.Group("/tasks")
	tasks.GET("", deps.Tasks.List)
	tasks.GET("/:id", deps.Tasks.Get)
	tasks.POST("", deps.Tasks.Create)
	tasks.DELETE("/:id", deps.Tasks.Delete)

	return r
}
