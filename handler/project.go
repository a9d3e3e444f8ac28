package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haikal-dev-fs/my-portofolio/store"
	"github.com/haikal-dev-fs/my-portofolio/upload"
)

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	ok(c, projects)
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.store.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeFail(c, err, "Project not found", "Failed to fetch project")
		return
	}
	ok(c, project)
}

type projectRequest struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription string     `json:"longDescription"`
	ImageURL        string     `json:"imageUrl"`
	LiveURL         string     `json:"liveUrl"`
	GithubURL       string     `json:"githubUrl"`
	Technologies    store.Tags `json:"technologies"`
	Category        string     `json:"category"`
	Featured        *bool      `json:"featured"`
	Order           *int       `json:"order"`
}

func (r *projectRequest) validate() string {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Description) == "" {
		return "Title and description are required"
	}
	if len(r.Technologies) == 0 {
		return "At least one technology is required"
	}
	return ""
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	project := &store.Project{
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		LongDescription: req.LongDescription,
		ImageURL:        req.ImageURL,
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		Technologies:    req.Technologies,
		Category:        req.Category,
		Order:           -1, // append unless the request names a slot
	}
	if project.Category == "" {
		project.Category = "Other"
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	saved, err := h.store.CreateProject(c.Request.Context(), project)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create project")
		return
	}
	okMsg(c, saved, "Project created successfully")
}

func (h *Handler) updateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}
	if msg := req.validate(); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	existing, err := h.store.GetProject(c.Request.Context(), req.ID)
	if err != nil {
		storeFail(c, err, "Project not found", "Failed to fetch project")
		return
	}

	existing.Title = strings.TrimSpace(req.Title)
	existing.Description = strings.TrimSpace(req.Description)
	existing.LongDescription = req.LongDescription
	existing.Technologies = req.Technologies
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}
	if req.LiveURL != "" {
		existing.LiveURL = req.LiveURL
	}
	if req.GithubURL != "" {
		existing.GithubURL = req.GithubURL
	}
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.Featured != nil {
		existing.Featured = *req.Featured
	}
	if req.Order != nil {
		existing.Order = *req.Order
	}

	saved, err := h.store.UpdateProject(c.Request.Context(), existing)
	if err != nil {
		storeFail(c, err, "Project not found", "Failed to update project")
		return
	}
	okMsg(c, saved, "Project updated successfully")
}

func (h *Handler) deleteProject(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}
	if err := h.store.DeleteProject(c.Request.Context(), id); err != nil {
		storeFail(c, err, "Project not found", "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
}

func (h *Handler) uploadProjectImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file provided")
		return
	}
	projectID := c.PostForm("projectId")
	if projectID == "" {
		fail(c, http.StatusBadRequest, "Project ID required")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if err := upload.Validate(contentType, file.Size, upload.ProjectImage); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	project, err := h.store.GetProject(c.Request.Context(), projectID)
	if err != nil {
		storeFail(c, err, "Project not found", "Failed to fetch project")
		return
	}
	project.ImageURL = upload.DataURL(contentType, data)
	if _, err := h.store.UpdateProject(c.Request.Context(), project); err != nil {
		storeFail(c, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": project.ImageURL,
		"message":  "Image uploaded successfully",
	})
}

type projectImageDeleteRequest struct {
	ProjectID string `json:"projectId"`
}

func (h *Handler) deleteProjectImage(c *gin.Context) {
	var req projectImageDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProjectID == "" {
		fail(c, http.StatusBadRequest, "Project ID required")
		return
	}
	project, err := h.store.GetProject(c.Request.Context(), req.ProjectID)
	if err != nil {
		storeFail(c, err, "Project not found", "Failed to fetch project")
		return
	}
	project.ImageURL = ""
	if _, err := h.store.UpdateProject(c.Request.Context(), project); err != nil {
		storeFail(c, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image removed successfully"})
}
