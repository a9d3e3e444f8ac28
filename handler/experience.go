package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haikal-dev-fs/my-portofolio/store"
)

func (h *Handler) listExperiences(c *gin.Context) {
	experiences, err := h.store.ListExperiences(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}
	ok(c, experiences)
}

type experienceRequest struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Location    string     `json:"location"`
	Skills      store.Tags `json:"skills"`
	Order       *int       `json:"order"`
}

func (r *experienceRequest) validate() string {
	if strings.TrimSpace(r.Company) == "" || strings.TrimSpace(r.Position) == "" {
		return "Company and position are required"
	}
	if strings.TrimSpace(r.StartDate) == "" {
		return "Start date is required"
	}
	return ""
}

func (h *Handler) createExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	experience := &store.Experience{
		Company:     strings.TrimSpace(req.Company),
		Position:    strings.TrimSpace(req.Position),
		Description: req.Description,
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
		Location:    req.Location,
		Skills:      req.Skills,
		Order:       -1,
	}
	if req.Order != nil {
		experience.Order = *req.Order
	}

	saved, err := h.store.CreateExperience(c.Request.Context(), experience)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create experience")
		return
	}
	okMsg(c, saved, "Experience created successfully")
}

func (h *Handler) updateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		fail(c, http.StatusBadRequest, "Experience ID is required")
		return
	}
	if msg := req.validate(); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	experience := &store.Experience{
		ID:          req.ID,
		Company:     strings.TrimSpace(req.Company),
		Position:    strings.TrimSpace(req.Position),
		Description: req.Description,
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
		Location:    req.Location,
		Skills:      req.Skills,
	}
	if req.Order != nil {
		experience.Order = *req.Order
	}

	saved, err := h.store.UpdateExperience(c.Request.Context(), experience)
	if err != nil {
		storeFail(c, err, "Experience not found", "Failed to update experience")
		return
	}
	okMsg(c, saved, "Experience updated successfully")
}

func (h *Handler) deleteExperience(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		fail(c, http.StatusBadRequest, "Experience ID is required")
		return
	}
	if err := h.store.DeleteExperience(c.Request.Context(), id); err != nil {
		storeFail(c, err, "Experience not found", "Failed to delete experience")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Experience deleted successfully"})
}
