package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type MediaHandler struct {
	media *services.MediaService
}

func NewMediaHandler(media *services.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

// Create handles multipart post uploads. Image posts send one to three
// files under "images"; video posts a single file under "video".
func (h *MediaHandler) Create(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		userID = c.GetString("userId")
	}
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}
	description := c.PostForm("description")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	ctx := c.Request.Context()
	if videos := form.File["video"]; len(videos) > 0 {
		post, err := h.media.CreatePost(ctx, userID, description, videos, true)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
		return
	}

	images := form.File["images"]
	post, err := h.media.CreatePost(ctx, userID, description, images, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *MediaHandler) GetAll(c *gin.Context) {
	posts, err := h.media.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *MediaHandler) GetByID(c *gin.Context) {
	post, err := h.media.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *MediaHandler) GetByUser(c *gin.Context) {
	posts, err := h.media.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type updateDescriptionRequest struct {
	Description string `json:"description"`
}

func (h *MediaHandler) Update(c *gin.Context) {
	var req updateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := h.media.UpdateDescription(c.Request.Context(), c.Param("id"), req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	if err := h.media.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
