package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/models"
	"learnhub/services"
)

type ProgressHandler struct {
	progress *services.ProgressService
}

func NewProgressHandler(progress *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

func (h *ProgressHandler) Create(c *gin.Context) {
	var update models.ProgressUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.progress.Create(c.Request.Context(), c.Param("userId"), &update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProgressHandler) GetAll(c *gin.Context) {
	updates, err := h.progress.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

func (h *ProgressHandler) GetByID(c *gin.Context) {
	update, err := h.progress.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

func (h *ProgressHandler) GetByUser(c *gin.Context) {
	updates, err := h.progress.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

func (h *ProgressHandler) Update(c *gin.Context) {
	var update models.ProgressUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.progress.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProgressHandler) Delete(c *gin.Context) {
	if err := h.progress.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress update deleted successfully"})
}
