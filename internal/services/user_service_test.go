package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/SAP-F-2025/sims-service/internal/auth"
	"github.com/SAP-F-2025/sims-service/internal/models"
	"github.com/SAP-F-2025/sims-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestUserService(t *testing.T) (UserService, *mockUserRepository) {
	t.Helper()
	userRepo := &mockUserRepository{usersByName: make(map[string]*models.User)}
	repo := &mockRepository{user: userRepo}
	svc := NewUserService(repo, nil, testLogger(), validator.New())
	return svc, userRepo
}

func seedUser(t *testing.T, repo *mockUserRepository, username, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &models.User{Username: username, PasswordHash: hash, Role: role}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func TestUserService_Login(t *testing.T) {
	svc, repo := newTestUserService(t)
	seeded := seedUser(t, repo, "admin", "s3cret-pass", models.RoleAdmin)
	ctx := context.Background()

	user, err := svc.Login(ctx, &validator.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Expected successful login, got %v", err)
	}
	if user.ID != seeded.ID || user.Role != models.RoleAdmin {
		t.Errorf("Login returned wrong account: %+v", user)
	}
}

func TestUserService_Login_FailuresIndistinguishable(t *testing.T) {
	svc, repo := newTestUserService(t)
	seedUser(t, repo, "admin", "s3cret-pass", models.RoleAdmin)
	ctx := context.Background()

	_, wrongPass := svc.Login(ctx, &validator.LoginRequest{Username: "admin", Password: "bad-pass"})
	_, unknownUser := svc.Login(ctx, &validator.LoginRequest{Username: "ghost", Password: "bad-pass"})

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("Wrong password error = %v, want ErrInvalidCredentials", wrongPass)
	}
	if !errors.Is(unknownUser, ErrInvalidCredentials) {
		t.Errorf("Unknown user error = %v, want ErrInvalidCredentials", unknownUser)
	}
	if wrongPass.Error() != unknownUser.Error() {
		t.Errorf("Failure messages differ: %q vs %q", wrongPass, unknownUser)
	}
}

func TestUserService_CreateUser(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &validator.UserCreateRequest{
		Username: "registrar",
		Password: "long-enough-pass",
		Role:     "Admin",
	})
	if err != nil {
		t.Fatalf("Expected user created, got %v", err)
	}
	if user.PasswordHash == "long-enough-pass" {
		t.Error("Password stored in plaintext")
	}
	if !auth.CheckPassword(user.PasswordHash, "long-enough-pass") {
		t.Error("Stored hash does not verify the password")
	}

	_, err = svc.CreateUser(ctx, &validator.UserCreateRequest{
		Username: "registrar",
		Password: "another-pass-123",
		Role:     "Faculty",
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Duplicate username error = %v, want ErrAlreadyExists", err)
	}
}

func TestUserService_CreateUser_RejectsBadRole(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.CreateUser(context.Background(), &validator.UserCreateRequest{
		Username: "intruder",
		Password: "long-enough-pass",
		Role:     "Root",
	})
	if err == nil {
		t.Fatal("Expected validation failure for unknown role")
	}
}
