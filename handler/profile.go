package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haikal-dev-fs/my-portofolio/store"
)

func (h *Handler) getProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil {
		profile = store.DefaultProfile()
	}
	ok(c, profile)
}

type profileRequest struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location"`
	LinkedinURL string            `json:"linkedinUrl"`
	GithubURL   string            `json:"githubUrl"`
	ResumeURL   string            `json:"resumeUrl"`
	AvatarURL   string            `json:"avatarUrl"`
	Skills      store.SkillGroups `json:"skills"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Title = strings.TrimSpace(req.Title)
	req.Bio = strings.TrimSpace(req.Bio)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Title == "" || req.Bio == "" || req.Email == "" {
		fail(c, http.StatusBadRequest, "Name, title, bio and email are required")
		return
	}

	profile := &store.Profile{
		Name:        req.Name,
		Title:       req.Title,
		Bio:         req.Bio,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
		ResumeURL:   req.ResumeURL,
		AvatarURL:   req.AvatarURL,
		Skills:      req.Skills,
	}
	// The CV endpoints own the resume reference; an edit form that omits it
	// must not clear an uploaded CV.
	if profile.ResumeURL == "" || profile.AvatarURL == "" {
		existing, err := h.store.GetProfile(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to fetch profile")
			return
		}
		if existing != nil {
			if profile.ResumeURL == "" {
				profile.ResumeURL = existing.ResumeURL
			}
			if profile.AvatarURL == "" {
				profile.AvatarURL = existing.AvatarURL
			}
		}
	}
	saved, err := h.store.UpsertProfile(c.Request.Context(), profile)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	okMsg(c, saved, "Profile updated successfully")
}
