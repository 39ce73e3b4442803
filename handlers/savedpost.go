package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type SavedPostHandler struct {
	saved *services.SavedPostService
}

func NewSavedPostHandler(saved *services.SavedPostService) *SavedPostHandler {
	return &SavedPostHandler{saved: saved}
}

func (h *SavedPostHandler) Toggle(c *gin.Context) {
	userID := c.Query("userId")
	postID := c.Query("postId")
	if userID == "" || postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and postId are required"})
		return
	}

	record, removed, err := h.saved.Toggle(c.Request.Context(), userID, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	if removed {
		c.JSON(http.StatusOK, gin.H{"message": "Post unsaved"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *SavedPostHandler) GetPosts(c *gin.Context) {
	posts, err := h.saved.GetPosts(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *SavedPostHandler) Status(c *gin.Context) {
	userID := c.Query("userId")
	postID := c.Query("postId")
	if userID == "" || postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and postId are required"})
		return
	}
	saved := h.saved.IsSaved(c.Request.Context(), userID, postID)
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *SavedPostHandler) Count(c *gin.Context) {
	count, err := h.saved.Count(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
