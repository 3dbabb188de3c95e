package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/sims-service/internal/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, 30*time.Minute), mr
}

func TestStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &Session{
		UserID:    42,
		Username:  "jdoe",
		Role:      models.RoleFaculty,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if id == "" {
		t.Fatal("Expected non-empty session id")
	}

	sess, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if sess.UserID != 42 || sess.Username != "jdoe" || sess.Role != models.RoleFaculty {
		t.Errorf("Session round-trip mismatch: %+v", sess)
	}
}

func TestStore_GetUnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "no-such-session")
	if err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &Session{UserID: 1, Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	mr.FastForward(31 * time.Minute)

	if _, err := store.Get(ctx, id); err != ErrNotFound {
		t.Errorf("Expected expired session to be gone, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, &Session{UserID: 7, Username: "student1", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if _, err := store.Get(ctx, id); err != ErrNotFound {
		t.Errorf("Expected deleted session to be gone, got %v", err)
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, id); err != nil {
		t.Errorf("Expected idempotent delete, got %v", err)
	}
}
