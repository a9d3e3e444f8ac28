package handler

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) createMessage(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if !emailRe.MatchString(req.Email) {
		fail(c, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	message, err := h.store.CreateMessage(c.Request.Context(), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	if h.opts.Notifier != nil {
		go h.opts.Notifier.MessageReceived(message)
	}

	okMsg(c, message, "Thank you for your message! I will get back to you soon.")
}

func (h *Handler) listMessages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	messages, total, err := h.store.ListMessages(c.Request.Context(), page, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    messages,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + limit - 1) / limit,
		},
	})
}

type messageReadRequest struct {
	IsRead bool `json:"isRead"`
}

func (h *Handler) setMessageRead(c *gin.Context) {
	var req messageReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	message, err := h.store.SetMessageRead(c.Request.Context(), c.Param("id"), req.IsRead)
	if err != nil {
		storeFail(c, err, "Message not found", "Failed to update message")
		return
	}
	okMsg(c, message, "Message updated successfully")
}

func (h *Handler) deleteMessage(c *gin.Context) {
	if err := h.store.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		storeFail(c, err, "Message not found", "Failed to delete message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message deleted successfully"})
}
