package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnhub/services"
)

type FollowHandler struct {
	follows *services.FollowService
}

func NewFollowHandler(follows *services.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	follow, err := h.follows.Follow(c.Request.Context(), c.Param("followerId"), c.Param("followingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, follow)
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	if err := h.follows.Unfollow(c.Request.Context(), c.Param("followerId"), c.Param("followingId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

func (h *FollowHandler) Check(c *gin.Context) {
	following, err := h.follows.IsFollowing(c.Request.Context(), c.Param("followerId"), c.Param("followingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// Stats returns follower and following counts for a user in one call.
func (h *FollowHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	followers, err := h.follows.FollowersCount(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	following, err := h.follows.FollowingCount(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"followers": followers,
		"following": following,
	})
}
