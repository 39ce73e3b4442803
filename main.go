package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"learnhub/database"
	"learnhub/handlers"
	"learnhub/repository"
	"learnhub/routes"
	"learnhub/services"
	"learnhub/storage"
)

func main() {
	log.Println("Starting LearnHub API server...")

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	mongoURI := os.Getenv("MONGODB_URI")
	if jwtSecret == "" || mongoURI == "" {
		log.Fatal("JWT_SECRET and MONGODB_URI must be set")
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	log.Println("Connecting to MongoDB...")

	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(); err != nil {
			dbErr = err
			log.Printf("MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB ping failed: ", err)
	}
	log.Println("MongoDB connected")

	// ===== MEDIA STORAGE =====
	var uploader services.Uploader
	if cld, err := storage.NewCloudinary(); err != nil {
		log.Printf("Media uploads disabled: %v", err)
		uploader = storage.Disabled{}
	} else {
		log.Println("Cloudinary storage configured")
		uploader = cld
	}

	// ===== VAPID KEYS =====
	vapidPublic := os.Getenv("VAPID_PUBLIC_KEY")
	vapidPrivate := os.Getenv("VAPID_PRIVATE_KEY")
	if vapidPublic == "" || vapidPrivate == "" {
		var err error
		vapidPrivate, vapidPublic, err = webpush.GenerateVAPIDKeys()
		if err != nil {
			log.Fatal("Failed to generate VAPID keys: ", err)
		}
		log.Println("Generated ephemeral VAPID keys; set VAPID_PUBLIC_KEY and VAPID_PRIVATE_KEY to persist subscriptions across restarts")
	}

	// ===== WIRING =====
	repos := repository.NewMongoRepos(database.DB)

	pushSvc := services.NewWebPushService(repos.PushSubs, vapidPublic, vapidPrivate)
	notificationSvc := services.NewNotificationService(repos.Notifications, repos.Users, pushSvc)
	userSvc := services.NewUserService(repos.Users, repos.Follows)
	mediaSvc := services.NewMediaService(repos, uploader)
	likeSvc := services.NewLikeService(repos.Likes, repos.Users, repos.Media, notificationSvc)
	commentLikeSvc := services.NewCommentLikeService(repos.CommentLikes, repos.Comments, repos.Users)
	commentSvc := services.NewCommentService(repos.Comments, repos.Replies, repos.CommentLikes, repos.Users, repos.Media, notificationSvc)
	replySvc := services.NewReplyService(repos.Replies, repos.Comments, repos.Users)
	followSvc := services.NewFollowService(repos.Follows, repos.Users, notificationSvc)
	savedSvc := services.NewSavedPostService(repos.SavedPosts, repos.Media)
	sharedSvc := services.NewSharedPostService(repos.SharedPosts, repos.Media, repos.Users)
	planSvc := services.NewLearningPlanService(repos.LearningPlans)
	courseSvc := services.NewCourseService(repos.Courses)
	certSvc := services.NewCertificationService(repos.Certifications)
	skillSvc := services.NewSkillService(repos.Skills)
	progressSvc := services.NewProgressService(repos.Progress, repos.Users, skillSvc)

	h := &handlers.Handlers{
		Auth:           handlers.NewAuthHandler(userSvc),
		GoogleAuth:     handlers.NewGoogleAuthHandler(userSvc),
		Users:          handlers.NewUserHandler(userSvc, uploader),
		Media:          handlers.NewMediaHandler(mediaSvc),
		Likes:          handlers.NewLikeHandler(likeSvc),
		CommentLikes:   handlers.NewCommentLikeHandler(commentLikeSvc),
		Comments:       handlers.NewCommentHandler(commentSvc),
		Replies:        handlers.NewReplyHandler(replySvc),
		Follows:        handlers.NewFollowHandler(followSvc),
		Notifications:  handlers.NewNotificationHandler(notificationSvc),
		SavedPosts:     handlers.NewSavedPostHandler(savedSvc),
		SharedPosts:    handlers.NewSharedPostHandler(sharedSvc),
		LearningPlans:  handlers.NewLearningPlanHandler(planSvc),
		Courses:        handlers.NewCourseHandler(courseSvc),
		Certifications: handlers.NewCertificationHandler(certSvc),
		Skills:         handlers.NewSkillHandler(skillSvc),
		Progress:       handlers.NewProgressHandler(progressSvc),
		Push:           handlers.NewPushHandler(pushSvc),
	}

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	}

	router := routes.SetupRouter(h)

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	if err := database.DisconnectMongo(); err != nil {
		log.Println("MongoDB disconnect: ", err)
	}

	log.Println("Server stopped gracefully")
}
