// Package handler provides the HTTP API for the portfolio site.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haikal-dev-fs/my-portofolio/store"
)

// Options configures a Handler.
type Options struct {
	// AdminPassword is the shared secret checked at login.
	AdminPassword string
	// UploadDir is where CV files are written; it must be served at /uploads.
	UploadDir string
	// Notifier, if set, is told about new contact messages.
	Notifier Notifier
}

// Handler holds the server dependencies and registers routes.
type Handler struct {
	store    store.Store
	sessions *sessionStore
	logins   *loginLimiter
	opts     Options
}

// New creates a Handler around the given store.
func New(s store.Store, opts Options) *Handler {
	return &Handler{
		store:    s,
		sessions: newSessionStore(),
		logins:   newLoginLimiter(),
		opts:     opts,
	}
}

// Register wires all API routes onto r.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", h.health)
	api.GET("/profile", h.getProfile)
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:id", h.getProject)
	api.GET("/experiences", h.listExperiences)
	api.POST("/contact", h.createMessage)
	api.GET("/cv", h.downloadCV)
	api.POST("/auth", h.login)
	api.DELETE("/auth", h.logout)

	admin := api.Group("")
	admin.Use(h.requireAdmin())
	admin.PUT("/profile", h.updateProfile)
	admin.POST("/projects", h.createProject)
	admin.PUT("/projects", h.updateProject)
	admin.DELETE("/projects", h.deleteProject)
	admin.POST("/projects/image", h.uploadProjectImage)
	admin.DELETE("/projects/image", h.deleteProjectImage)
	admin.POST("/experiences", h.createExperience)
	admin.PUT("/experiences", h.updateExperience)
	admin.DELETE("/experiences", h.deleteExperience)
	admin.GET("/contact", h.listMessages)
	admin.PATCH("/contact/:id", h.setMessageRead)
	admin.DELETE("/contact/:id", h.deleteMessage)
	admin.POST("/cv", h.uploadCV)
	admin.DELETE("/cv", h.deleteCV)
	admin.GET("/stats", h.getStats)
	admin.POST("/setup", h.setup)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// setup seeds default content for any entity that is still empty.
func (h *Handler) setup(c *gin.Context) {
	if err := store.Seed(c.Request.Context(), h.store); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to seed default content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Default content seeded"})
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okMsg(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// storeFail translates a store error to 404 or 500.
func storeFail(c *gin.Context, err error, notFoundMsg, serverMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, notFoundMsg)
		return
	}
	fail(c, http.StatusInternalServerError, serverMsg)
}
