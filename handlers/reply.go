package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type ReplyHandler struct {
	replies *services.ReplyService
}

func NewReplyHandler(replies *services.ReplyService) *ReplyHandler {
	return &ReplyHandler{replies: replies}
}

type createReplyRequest struct {
	CommentID string `json:"commentId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

func (h *ReplyHandler) Create(c *gin.Context) {
	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := h.replies.Create(c.Request.Context(), req.CommentID, req.UserID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

type updateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *ReplyHandler) Update(c *gin.Context) {
	var req updateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := h.replies.Update(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (h *ReplyHandler) Delete(c *gin.Context) {
	if err := h.replies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}

func (h *ReplyHandler) GetByComment(c *gin.Context) {
	replies, err := h.replies.GetByComment(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, replies)
}

func (h *ReplyHandler) Count(c *gin.Context) {
	count, err := h.replies.Count(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
