package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"learnhub/middleware"
	"learnhub/services"
)

// Handlers groups every resource handler for route registration.
type Handlers struct {
	Auth           *AuthHandler
	GoogleAuth     *GoogleAuthHandler
	Users          *UserHandler
	Media          *MediaHandler
	Likes          *LikeHandler
	CommentLikes   *CommentLikeHandler
	Comments       *CommentHandler
	Replies        *ReplyHandler
	Follows        *FollowHandler
	Notifications  *NotificationHandler
	SavedPosts     *SavedPostHandler
	SharedPosts    *SharedPostHandler
	LearningPlans  *LearningPlanHandler
	Courses        *CourseHandler
	Certifications *CertificationHandler
	Skills         *SkillHandler
	Progress       *ProgressHandler
	Push           *PushHandler
}

// respondError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a 500 with the detail kept in the
// server log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// issueToken signs a 24h JWT for the user id.
func issueToken(userID string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
