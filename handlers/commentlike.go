package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type CommentLikeHandler struct {
	likes *services.CommentLikeService
}

func NewCommentLikeHandler(likes *services.CommentLikeService) *CommentLikeHandler {
	return &CommentLikeHandler{likes: likes}
}

func (h *CommentLikeHandler) Toggle(c *gin.Context) {
	commentID := c.Query("commentId")
	userID := c.Query("userId")
	if commentID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "commentId and userId are required"})
		return
	}

	like, removed, err := h.likes.Toggle(c.Request.Context(), commentID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if removed {
		c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
		return
	}
	c.JSON(http.StatusCreated, like)
}

func (h *CommentLikeHandler) GetByComment(c *gin.Context) {
	likes, err := h.likes.GetByComment(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (h *CommentLikeHandler) Count(c *gin.Context) {
	count, err := h.likes.Count(c.Request.Context(), c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *CommentLikeHandler) Status(c *gin.Context) {
	commentID := c.Query("commentId")
	userID := c.Query("userId")
	if commentID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "commentId and userId are required"})
		return
	}
	liked := h.likes.HasLiked(c.Request.Context(), commentID, userID)
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
