package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"learnhub/models"
	"learnhub/repository"
	"learnhub/services"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*models.User{}}
}

func (r *memUserRepo) Insert(_ context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (r *memUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Search(_ context.Context, query string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.ID.Hex()]; !ok {
		return repository.ErrNoDocument
	}
	r.users[u.ID.Hex()] = u
	return nil
}

type memFollowRepo struct{}

func (memFollowRepo) Insert(context.Context, *models.Follow) error { return nil }
func (memFollowRepo) FindPair(context.Context, string, string) (*models.Follow, error) {
	return nil, repository.ErrNoDocument
}
func (memFollowRepo) DeletePair(context.Context, string, string) error {
	return repository.ErrNoDocument
}
func (memFollowRepo) FindFollowers(context.Context, string) ([]models.Follow, error) {
	return nil, nil
}
func (memFollowRepo) FindFollowing(context.Context, string) ([]models.Follow, error) {
	return nil, nil
}
func (memFollowRepo) CountFollowers(context.Context, string) (int64, error) { return 0, nil }
func (memFollowRepo) CountFollowing(context.Context, string) (int64, error) { return 0, nil }

func newAuthTestRouter(t *testing.T) (*gin.Engine, *memUserRepo) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	svc := services.NewUserService(users, memFollowRepo{})
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/api/signup", h.Register)
	r.POST("/api/login", h.Login)
	return r, users
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupIssuesToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	w := postJSON(router, "/api/signup", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if resp["token"] == "" || resp["userId"] == "" {
		t.Errorf("response missing token or userId: %v", resp)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
	if w := postJSON(router, "/api/signup", body); w.Code != http.StatusCreated {
		t.Fatalf("first signup failed: %d", w.Code)
	}
	if w := postJSON(router, "/api/signup", body); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestSignupValidation(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	cases := []string{
		`{"email":"alice@example.com","password":"secret123"}`,
		`{"name":"Alice","email":"not-an-email","password":"secret123"}`,
		`{"name":"Alice","email":"alice@example.com","password":"short"}`,
	}
	for _, body := range cases {
		if w := postJSON(router, "/api/signup", body); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", body, w.Code)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	postJSON(router, "/api/signup", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`)

	w := postJSON(router, "/api/login", `{"email":"alice@example.com","password":"secret123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(router, "/api/login", `{"email":"alice@example.com","password":"wrongpass"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	w = postJSON(router, "/api/login", `{"email":"nobody@example.com","password":"secret123"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", w.Code)
	}
}
