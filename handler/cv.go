package handler

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/haikal-dev-fs/my-portofolio/store"
	"github.com/haikal-dev-fs/my-portofolio/upload"
)

const cvFileName = "cv.pdf"

func (h *Handler) uploadCV(c *gin.Context) {
	file, err := c.FormFile("cv")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if err := upload.Validate(contentType, file.Size, upload.CV); err != nil {
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

	ref, err := upload.SaveFile(h.opts.UploadDir, cvFileName, data)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to store CV")
		return
	}

	ctx := c.Request.Context()
	profile, err := h.store.GetProfile(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil {
		profile = store.DefaultProfile()
	}
	profile.ResumeURL = ref
	if _, err := h.store.UpsertProfile(ctx, profile); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	okMsg(c, gin.H{"url": ref}, "CV uploaded successfully")
}

func (h *Handler) downloadCV(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil || profile.ResumeURL == "" {
		fail(c, http.StatusNotFound, "CV not found")
		return
	}

	data, err := os.ReadFile(filepath.Join(h.opts.UploadDir, path.Base(profile.ResumeURL)))
	if err != nil {
		fail(c, http.StatusNotFound, "CV file not found on server")
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+cvFileName+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) deleteCV(c *gin.Context) {
	ctx := c.Request.Context()
	profile, err := h.store.GetProfile(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil {
		fail(c, http.StatusNotFound, "Profile not found")
		return
	}

	ref := profile.ResumeURL
	profile.ResumeURL = ""
	if _, err := h.store.UpsertProfile(ctx, profile); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if ref != "" {
		// Stored file removal is best effort; the reference is already gone.
		_ = upload.Remove(h.opts.UploadDir, ref)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "CV deleted successfully"})
}
