package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"learnhub/handlers"
	"learnhub/middleware"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "LearnHub API is running",
			"time":    time.Now().Unix(),
		})
	})

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:5500", "http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimitMiddleware())

	// Public routes (no auth required)
	router.POST("/api/signup", h.Auth.Register)
	router.POST("/api/login", h.Auth.Login)
	router.GET("/api/vapid-public-key", h.Push.PublicKey)

	// Google OAuth routes
	router.GET("/api/google/auth-url", h.GoogleAuth.GetAuthURL)
	router.GET("/api/google/callback", h.GoogleAuth.Callback)

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())

	// Users
	protected.GET("/users", h.Users.GetAll)
	protected.GET("/users/search", h.Users.Search)
	protected.GET("/users/:id", h.Users.GetByID)
	protected.PUT("/users/:id", h.Users.UpdateProfile)
	protected.POST("/users/:id/avatar", h.Users.UploadAvatar)
	protected.GET("/users/:id/followers", h.Users.Followers)
	protected.GET("/users/:id/following", h.Users.Following)

	// Posts
	protected.POST("/posts", h.Media.Create)
	protected.GET("/posts", h.Media.GetAll)
	protected.GET("/posts/:id", h.Media.GetByID)
	protected.GET("/posts/user/:userId", h.Media.GetByUser)
	protected.PUT("/posts/:id", h.Media.Update)
	protected.DELETE("/posts/:id", h.Media.Delete)

	// Post likes
	protected.POST("/likes/toggle", h.Likes.Toggle)
	protected.GET("/likes/status", h.Likes.Status)
	protected.GET("/likes/post/:postId", h.Likes.GetByPost)
	protected.GET("/likes/post/:postId/count", h.Likes.Count)

	// Comment likes
	protected.POST("/comment-likes/toggle", h.CommentLikes.Toggle)
	protected.GET("/comment-likes/status", h.CommentLikes.Status)
	protected.GET("/comment-likes/comment/:commentId", h.CommentLikes.GetByComment)
	protected.GET("/comment-likes/comment/:commentId/count", h.CommentLikes.Count)

	// Comments
	protected.POST("/comments", h.Comments.Create)
	protected.PUT("/comments/:id", h.Comments.Update)
	protected.DELETE("/comments/:id", h.Comments.Delete)
	protected.GET("/comments/post/:postId", h.Comments.GetByPost)
	protected.GET("/comments/post/:postId/count", h.Comments.Count)

	// Comment replies
	protected.POST("/replies", h.Replies.Create)
	protected.PUT("/replies/:id", h.Replies.Update)
	protected.DELETE("/replies/:id", h.Replies.Delete)
	protected.GET("/replies/comment/:commentId", h.Replies.GetByComment)
	protected.GET("/replies/comment/:commentId/count", h.Replies.Count)

	// Follows
	protected.POST("/follow/:followerId/:followingId", h.Follows.Follow)
	protected.DELETE("/follow/:followerId/:followingId", h.Follows.Unfollow)
	protected.GET("/follow/:followerId/:followingId", h.Follows.Check)
	protected.GET("/follow/stats/:userId", h.Follows.Stats)

	// Notifications
	protected.GET("/notifications/user/:userId", h.Notifications.GetForUser)
	protected.GET("/notifications/user/:userId/unread", h.Notifications.GetUnread)
	protected.GET("/notifications/user/:userId/count", h.Notifications.UnreadCount)
	protected.PUT("/notifications/user/:userId/read-all", h.Notifications.MarkAllRead)
	protected.PUT("/notifications/:notificationId/read", h.Notifications.MarkRead)

	// Saved posts
	protected.POST("/saved/toggle", h.SavedPosts.Toggle)
	protected.GET("/saved/status", h.SavedPosts.Status)
	protected.GET("/saved/user/:userId", h.SavedPosts.GetPosts)
	protected.GET("/saved/user/:userId/count", h.SavedPosts.Count)

	// Shared posts
	protected.POST("/shared", h.SharedPosts.Share)
	protected.GET("/shared/user/:userId", h.SharedPosts.GetForUser)

	// Learning plans
	protected.POST("/plans", h.LearningPlans.Create)
	protected.GET("/plans/user/:userId", h.LearningPlans.GetByUser)
	protected.GET("/plans/:id", h.LearningPlans.GetByID)
	protected.PUT("/plans/:id", h.LearningPlans.Update)
	protected.DELETE("/plans/:id", h.LearningPlans.Delete)

	// Courses
	protected.POST("/courses", h.Courses.Create)
	protected.GET("/courses", h.Courses.GetAll)
	protected.GET("/courses/search", h.Courses.Search)
	protected.GET("/courses/user/:userId/enrolled", h.Courses.GetEnrolled)
	protected.GET("/courses/:id/user/:userId", h.Courses.GetForUser)
	protected.PUT("/courses/:id/enroll/:userId", h.Courses.Enroll)
	protected.PUT("/courses/:id/unenroll/:userId", h.Courses.Unenroll)
	protected.PUT("/courses/:id/lesson-viewed/:userId", h.Courses.MarkLessonViewed)
	protected.PUT("/courses/:id/download/:userId/:resourceName", h.Courses.MarkResourceDownloaded)
	protected.PUT("/courses/:id/complete/:userId", h.Courses.MarkCompleted)

	// Certifications
	protected.POST("/certifications", h.Certifications.Add)
	protected.GET("/certifications", h.Certifications.GetAll)
	protected.GET("/certifications/user/:userId", h.Certifications.GetByUser)
	protected.GET("/certifications/user/:userId/search", h.Certifications.Search)
	protected.PUT("/certifications/:id", h.Certifications.Update)
	protected.DELETE("/certifications/:id", h.Certifications.Delete)

	// Skills
	protected.POST("/skills", h.Skills.Add)
	protected.GET("/skills/user/:userId", h.Skills.GetByUser)
	protected.DELETE("/skills/:id", h.Skills.Delete)

	// Progress updates
	protected.POST("/progress/user/:userId", h.Progress.Create)
	protected.GET("/progress", h.Progress.GetAll)
	protected.GET("/progress/user/:userId", h.Progress.GetByUser)
	protected.GET("/progress/:id", h.Progress.GetByID)
	protected.PUT("/progress/:id", h.Progress.Update)
	protected.DELETE("/progress/:id", h.Progress.Delete)

	// Push subscriptions
	protected.POST("/subscribe", h.Push.Subscribe)

	// Catch-all for undefined API routes
	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
