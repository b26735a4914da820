package test_utils

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/eventra/eventra/pkg/user"
	"github.com/google/uuid"
)

// CreateTestUser inserts a user row and returns it. Event rows carry a
// foreign key to users, so repository tests need a real owner.
func CreateTestUser(t *testing.T, db *sql.DB, username string) user.User {
	t.Helper()

	u := user.User{
		ID:           uuid.NewString(),
		Username:     username,
		DisplayName:  "Test User",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().Truncate(time.Millisecond),
	}
	if err := user.NewUserRepo(db).CreateUser(context.Background(), u); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return u
}
