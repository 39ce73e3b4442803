package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"learnhub/models"
	"learnhub/repository"
)

const maxVideoSize = 30 * 1024 * 1024 // 30MB

// Uploader abstracts the object store keeping post media. Files go in
// by folder, come back as delivery URLs, and are destroyed by URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
	Destroy(ctx context.Context, url string) error
}

type MediaService struct {
	media        repository.MediaRepo
	users        repository.UserRepo
	likes        repository.LikeRepo
	comments     repository.CommentRepo
	replies      repository.ReplyRepo
	commentLikes repository.CommentLikeRepo
	saved        repository.SavedPostRepo
	shared       repository.SharedPostRepo
	uploader     Uploader
}

func NewMediaService(repos *repository.Repos, uploader Uploader) *MediaService {
	return &MediaService{
		media:        repos.Media,
		users:        repos.Users,
		likes:        repos.Likes,
		comments:     repos.Comments,
		replies:      repos.Replies,
		commentLikes: repos.CommentLikes,
		saved:        repos.SavedPosts,
		shared:       repos.SharedPosts,
		uploader:     uploader,
	}
}

// CreatePost uploads the files to object storage and persists the post
// document. Image posts carry 1 to 3 images; video posts exactly one
// video under 30MB.
func (s *MediaService) CreatePost(ctx context.Context, userID, description string, files []*multipart.FileHeader, isVideo bool) (*models.Media, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	post := &models.Media{
		UserID:      user.ID,
		Description: description,
		CreatedAt:   time.Now().Unix(),
	}

	if isVideo {
		if len(files) != 1 {
			return nil, fmt.Errorf("%w: exactly one video file required", ErrValidation)
		}
		if err := validateVideo(files[0]); err != nil {
			return nil, err
		}
		url, err := s.uploadFile(ctx, files[0], "videos")
		if err != nil {
			return nil, err
		}
		post.VideoURL = url
		post.MediaType = models.MediaTypeVideo
	} else {
		if err := validateImages(files); err != nil {
			return nil, err
		}
		urls := make([]string, 0, len(files))
		for _, file := range files {
			url, err := s.uploadFile(ctx, file, "images")
			if err != nil {
				return nil, err
			}
			urls = append(urls, url)
		}
		post.ImageURLs = urls
		post.MediaType = models.MediaTypeImage
	}

	if err := s.media.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *MediaService) uploadFile(ctx context.Context, header *multipart.FileHeader, folder string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return s.uploader.Upload(ctx, file, folder)
}

func validateVideo(header *multipart.FileHeader) error {
	if header.Size == 0 {
		return fmt.Errorf("%w: video file is empty", ErrValidation)
	}
	if header.Size > maxVideoSize {
		return fmt.Errorf("%w: video must be under 30MB", ErrValidation)
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "video/") {
		return fmt.Errorf("%w: invalid video format", ErrValidation)
	}
	return nil
}

func validateImages(headers []*multipart.FileHeader) error {
	if len(headers) == 0 || len(headers) > 3 {
		return fmt.Errorf("%w: you must upload 1 to 3 images", ErrValidation)
	}
	for _, header := range headers {
		if header.Size == 0 {
			return fmt.Errorf("%w: one or more image files are empty", ErrValidation)
		}
		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			return fmt.Errorf("%w: invalid image format", ErrValidation)
		}
	}
	return nil
}

func (s *MediaService) GetAll(ctx context.Context) ([]models.Media, error) {
	return s.media.FindAll(ctx)
}

func (s *MediaService) GetByID(ctx context.Context, id string) (*models.Media, error) {
	post, err := s.media.FindByID(ctx, id)
	if err == repository.ErrNoDocument {
		return nil, fmt.Errorf("%w: post not found", ErrNotFound)
	}
	return post, err
}

func (s *MediaService) GetByUser(ctx context.Context, userID string) ([]models.Media, error) {
	return s.media.FindByUser(ctx, userID)
}

func (s *MediaService) UpdateDescription(ctx context.Context, id, description string) (*models.Media, error) {
	post, err := s.media.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return nil, err
	}
	post.Description = description
	if err := s.media.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the storage objects, the post document, and every
// dependent record: likes, comments with their replies and likes,
// saved and shared references.
func (s *MediaService) Delete(ctx context.Context, id string) error {
	post, err := s.media.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return fmt.Errorf("%w: post not found", ErrNotFound)
		}
		return err
	}

	for _, url := range post.ImageURLs {
		if err := s.uploader.Destroy(ctx, url); err != nil {
			log.Printf("destroy image %s: %v", url, err)
		}
	}
	if post.VideoURL != "" {
		if err := s.uploader.Destroy(ctx, post.VideoURL); err != nil {
			log.Printf("destroy video %s: %v", post.VideoURL, err)
		}
	}

	if err := s.media.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.likes.DeleteByPost(ctx, id); err != nil {
		log.Printf("delete likes of post %s: %v", id, err)
	}

	comments, err := s.comments.FindByPost(ctx, id)
	if err != nil {
		log.Printf("list comments of post %s: %v", id, err)
	}
	for _, comment := range comments {
		commentID := comment.ID.Hex()
		if err := s.replies.DeleteByComment(ctx, commentID); err != nil {
			log.Printf("delete replies of comment %s: %v", commentID, err)
		}
		if err := s.commentLikes.DeleteByComment(ctx, commentID); err != nil {
			log.Printf("delete likes of comment %s: %v", commentID, err)
		}
		if err := s.comments.Delete(ctx, commentID); err != nil {
			log.Printf("delete comment %s: %v", commentID, err)
		}
	}

	if err := s.saved.DeleteByPost(ctx, id); err != nil {
		log.Printf("delete saved refs of post %s: %v", id, err)
	}
	if err := s.shared.DeleteByOriginalPost(ctx, id); err != nil {
		log.Printf("delete shared refs of post %s: %v", id, err)
	}
	return nil
}
