package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

func (h *LikeHandler) Toggle(c *gin.Context) {
	postID := c.Query("postId")
	userID := c.Query("userId")
	if postID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postId and userId are required"})
		return
	}

	like, removed, err := h.likes.Toggle(c.Request.Context(), postID, userID)
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

func (h *LikeHandler) GetByPost(c *gin.Context) {
	likes, err := h.likes.GetByPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

func (h *LikeHandler) Count(c *gin.Context) {
	count, err := h.likes.Count(c.Request.Context(), c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *LikeHandler) Status(c *gin.Context) {
	postID := c.Query("postId")
	userID := c.Query("userId")
	if postID == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postId and userId are required"})
		return
	}
	liked := h.likes.HasLiked(c.Request.Context(), postID, userID)
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
