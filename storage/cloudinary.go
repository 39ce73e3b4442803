package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Cloudinary wraps the upload API behind the small surface the
// services need: put a file, remove a file by its delivery URL.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary() (*Cloudinary, error) {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return nil, fmt.Errorf("CLOUDINARY_URL not set")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld}, nil
}

// Upload stores the file under the given folder and returns the
// secure delivery URL.
func (s *Cloudinary) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	params := uploader.UploadParams{
		Folder:       "learnhub/" + folder,
		PublicID:     uuid.New().String(),
		ResourceType: resourceType(folder),
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// Destroy removes the asset a delivery URL points at. Unknown URLs are
// ignored so a post with externally hosted media can still be deleted.
func (s *Cloudinary) Destroy(ctx context.Context, url string) error {
	publicID := extractPublicID(url)
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceTypeFromURL(url),
	})
	return err
}

// Disabled stands in when no CLOUDINARY_URL is configured. Uploads
// fail with a clear error; destroys are no-ops.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	return "", fmt.Errorf("media storage not configured")
}

func (Disabled) Destroy(ctx context.Context, url string) error {
	return nil
}

func resourceType(folder string) string {
	if folder == "videos" {
		return "video"
	}
	return "image"
}

func resourceTypeFromURL(url string) string {
	if strings.Contains(url, "/video/upload/") {
		return "video"
	}
	return "image"
}

// extractPublicID turns a delivery URL like
// https://res.cloudinary.com/demo/image/upload/v12345/learnhub/images/abc.jpg
// into "learnhub/images/abc".
func extractPublicID(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return ""
	}
	path := url[idx+len("/upload/"):]

	// Strip the version segment if present
	if strings.HasPrefix(path, "v") {
		if slash := strings.Index(path, "/"); slash > 0 {
			allDigits := true
			for _, ch := range path[1:slash] {
				if ch < '0' || ch > '9' {
					allDigits = false
					break
				}
			}
			if allDigits {
				path = path[slash+1:]
			}
		}
	}

	// Strip the file extension
	if dot := strings.LastIndex(path, "."); dot > strings.LastIndex(path, "/") {
		path = path[:dot]
	}
	return path
}
