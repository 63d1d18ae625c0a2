package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/club-management/internal/core/domain"
	"github.com/campushub/club-management/internal/core/ports"
)

const testSecret = "test-secret"

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role, clubID string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		ClubID:       clubID,
	})
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "pw123456", domain.RoleClubAdmin, "club-1")
	svc := NewAuthService(repo, newStubThrottle(5), testSecret, time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "alice", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected user alice, got %q", user.Username)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["id"] != "id-alice" || claims["username"] != "alice" {
		t.Errorf("unexpected identity claims: %v", claims)
	}
	if claims["role"] != "club-admin" || claims["club_id"] != "club-1" {
		t.Errorf("unexpected role claims: %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token must carry an expiry")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "pw123456", domain.RoleStudent, "")
	svc := NewAuthService(repo, newStubThrottle(5), testSecret, time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubThrottle(5), testSecret, time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "ghost", "pw123456")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user must look like a bad password, got %v", err)
	}
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, testSecret, time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("empty password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginThrottleLockout(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "pw123456", domain.RoleStudent, "")
	throttle := newStubThrottle(3)
	svc := NewAuthService(repo, throttle, testSecret, time.Hour, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	// Locked now, even with the correct password.
	if _, _, err := svc.Login(context.Background(), "alice", "pw123456"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestLoginResetsThrottleOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "pw123456", domain.RoleStudent, "")
	throttle := newStubThrottle(3)
	svc := NewAuthService(repo, throttle, testSecret, time.Hour, zerolog.Nop())

	svc.Login(context.Background(), "alice", "wrong")
	svc.Login(context.Background(), "alice", "wrong")

	if _, _, err := svc.Login(context.Background(), "alice", "pw123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if throttle.failures["alice"] != 0 {
		t.Errorf("expected failure counter reset, got %d", throttle.failures["alice"])
	}
}

func TestLoginThrottleOutageDoesNotBlock(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "pw123456", domain.RoleStudent, "")
	throttle := newStubThrottle(3)
	throttle.allowErr = errors.New("redis down")
	svc := NewAuthService(repo, throttle, testSecret, time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "alice", "pw123456"); err != nil {
		t.Fatalf("throttle outage must not block login: %v", err)
	}
}

func TestRegister(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, testSecret, time.Hour, zerolog.Nop())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Password: "pw123456",
		Name:     "Bob",
		Role:     "student",
		ClubID:   "club-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated id")
	}
	if user.Role != domain.RoleStudent {
		t.Errorf("expected role student, got %q", user.Role)
	}
	if user.PasswordHash == "pw123456" {
		t.Error("password must not be stored in the clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123456")) != nil {
		t.Error("stored hash must verify the original password")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), nil, testSecret, time.Hour, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Password: "pw123456",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob", "pw123456", domain.RoleStudent, "")
	svc := NewAuthService(repo, nil, testSecret, time.Hour, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Password: "pw123456",
		Role:     "student",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, testSecret, time.Hour, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background(), "admin", "changeme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	user, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin must exist after bootstrap: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("expected role admin, got %q", user.Role)
	}

	// Second run is a no-op.
	if err := svc.EnsureAdmin(context.Background(), "admin", "changeme"); err != nil {
		t.Fatalf("repeated bootstrap must not fail: %v", err)
	}
	if len(repo.users) != 1 {
		t.Errorf("expected a single user, got %d", len(repo.users))
	}
}

func TestEnsureAdminSkippedWithoutPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, testSecret, time.Hour, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background(), "admin", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.users) != 0 {
		t.Error("bootstrap without a password must not create a user")
	}
}
