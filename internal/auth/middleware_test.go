package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hireorbit/backend/internal/apperror"
	"github.com/hireorbit/backend/internal/model"
	"github.com/hireorbit/backend/internal/repository"
)

// stubUserRepo resolves a single known email.
type stubUserRepo struct {
	user *model.User
}

func (s *stubUserRepo) CreateUser(context.Context, *model.User) error { return nil }

func (s *stubUserRepo) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, apperror.NotFound("user", email)
}

func (s *stubUserRepo) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, apperror.NotFound("user", id)
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newGate(t *testing.T, users repository.UserRepository) (func(http.Handler) http.Handler, *TokenService) {
	t.Helper()
	tokens := newTestTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return RequireAuth(tokens, users, logger), tokens
}

// okHandler records whether the chain reached the protected handler and what
// user it saw.
func okHandler(reached *bool, seen **model.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		if user, ok := UserFromContext(r.Context()); ok {
			*seen = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	alice := &model.User{ID: "u1", Username: "alice", Email: "a@x.com"}
	gate, tokens := newGate(t, &stubUserRepo{user: alice})

	token, err := tokens.Generate("a@x.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var reached bool
	var seen *model.User
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate(okHandler(&reached, &seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Fatal("protected handler was not reached")
	}
	if seen == nil || seen.ID != "u1" {
		t.Errorf("handler saw user %+v, want alice", seen)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	gate, _ := newGate(t, &stubUserRepo{})

	var reached bool
	var seen *model.User
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()

	gate(okHandler(&reached, &seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("protected handler must not run without a token")
	}
	if !strings.Contains(rec.Body.String(), "Not authenticated") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	gate, tokens := newGate(t, &stubUserRepo{})
	token, _ := tokens.Generate("a@x.com")

	for _, header := range []string{"Basic abc", token, "Bearer", "Bearer  "} {
		var reached bool
		var seen *model.User
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		gate(okHandler(&reached, &seen)).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, rec.Code)
		}
		if reached {
			t.Errorf("header %q: protected handler must not run", header)
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	gate, _ := newGate(t, &stubUserRepo{})

	var reached bool
	var seen *model.User
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	gate(okHandler(&reached, &seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	alice := &model.User{ID: "u1", Email: "a@x.com"}
	gate, tokens := newGate(t, &stubUserRepo{user: alice})

	token, err := tokens.GenerateWithDuration("a@x.com", -time.Second)
	if err != nil {
		t.Fatalf("GenerateWithDuration() error = %v", err)
	}

	var reached bool
	var seen *model.User
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate(okHandler(&reached, &seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("protected handler must not run with an expired token")
	}
}

func TestRequireAuth_SubjectNotFound(t *testing.T) {
	// Token is valid but its subject no longer resolves to an account.
	gate, tokens := newGate(t, &stubUserRepo{})

	token, _ := tokens.Generate("ghost@x.com")

	var reached bool
	var seen *model.User
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate(okHandler(&reached, &seen)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUserFromContext_Absent(t *testing.T) {
	if _, ok := UserFromContext(context.Background()); ok {
		t.Error("UserFromContext() on an empty context should return ok=false")
	}
}
