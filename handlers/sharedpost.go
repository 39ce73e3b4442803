package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type SharedPostHandler struct {
	shared *services.SharedPostService
}

func NewSharedPostHandler(shared *services.SharedPostService) *SharedPostHandler {
	return &SharedPostHandler{shared: shared}
}

type sharePostRequest struct {
	OriginalPostID string `json:"originalPostId" binding:"required"`
	SharedByUserID string `json:"sharedByUserId" binding:"required"`
	SharedToUserID string `json:"sharedToUserId" binding:"required"`
}

func (h *SharedPostHandler) Share(c *gin.Context) {
	var req sharePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := h.shared.Share(c.Request.Context(), req.OriginalPostID, req.SharedByUserID, req.SharedToUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *SharedPostHandler) GetForUser(c *gin.Context) {
	records, err := h.shared.GetForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
