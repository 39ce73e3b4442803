package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/models"
	"learnhub/services"
)

type LearningPlanHandler struct {
	plans *services.LearningPlanService
}

func NewLearningPlanHandler(plans *services.LearningPlanService) *LearningPlanHandler {
	return &LearningPlanHandler{plans: plans}
}

func (h *LearningPlanHandler) Create(c *gin.Context) {
	var plan models.LearningPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.plans.Create(c.Request.Context(), &plan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *LearningPlanHandler) GetByUser(c *gin.Context) {
	plans, err := h.plans.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *LearningPlanHandler) GetByID(c *gin.Context) {
	plan, err := h.plans.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *LearningPlanHandler) Update(c *gin.Context) {
	var plan models.LearningPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.plans.Update(c.Request.Context(), c.Param("id"), &plan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *LearningPlanHandler) Delete(c *gin.Context) {
	if err := h.plans.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Learning plan deleted successfully"})
}
