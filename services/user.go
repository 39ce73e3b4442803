package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"learnhub/models"
	"learnhub/repository"
)

type UserService struct {
	users   repository.UserRepo
	follows repository.FollowRepo
}

func NewUserService(users repository.UserRepo, follows repository.FollowRepo) *UserService {
	return &UserService{users: users, follows: follows}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if err != repository.ErrNoDocument {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashed)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: "local",
		Role:         "user",
		CreatedAt:    time.Now().Unix(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return nil, err
	}

	if user.AuthProvider != "local" {
		return nil, fmt.Errorf("%w: use Google login for this account", ErrValidation)
	}
	if user.PasswordHash == nil || bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	return user, nil
}

// RegisterOrGetGoogleUser is the first-login path for Google accounts:
// an existing user with the same email is returned as-is.
func (s *UserService) RegisterOrGetGoogleUser(ctx context.Context, name, email, imageURL string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if err != repository.ErrNoDocument {
		return nil, err
	}

	user = &models.User{
		Name:         name,
		Email:        email,
		ImageURL:     imageURL,
		AuthProvider: "google",
		Role:         "user",
		CreatedAt:    time.Now().Unix(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err == repository.ErrNoDocument {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return user, err
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.users.Search(ctx, query)
}

// UpdateProfile overwrites name, email and image URL. Empty fields are
// left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, id, name, email, imageURL string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNoDocument {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if imageURL != "" {
		user.ImageURL = imageURL
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Followers resolves the follow records pointing at the user into user
// documents, skipping dangling references.
func (s *UserService) Followers(ctx context.Context, userID string) ([]models.User, error) {
	records, err := s.follows.FindFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, record := range records {
		user, err := s.users.FindByID(ctx, record.FollowerID.Hex())
		if err != nil {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

func (s *UserService) Following(ctx context.Context, userID string) ([]models.User, error) {
	records, err := s.follows.FindFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, record := range records {
		user, err := s.users.FindByID(ctx, record.FollowingID.Hex())
		if err != nil {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}
