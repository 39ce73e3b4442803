package handlers

import (
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type PushHandler struct {
	push *services.WebPushService
}

func NewPushHandler(push *services.WebPushService) *PushHandler {
	return &PushHandler{push: push}
}

func (h *PushHandler) PublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": h.push.PublicKey()})
}

type subscribeRequest struct {
	UserID       string               `json:"userId" binding:"required"`
	Subscription webpush.Subscription `json:"subscription" binding:"required"`
}

func (h *PushHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.push.Subscribe(c.Request.Context(), req.UserID, req.Subscription); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed to push notifications"})
}
