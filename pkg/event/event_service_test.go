package event

import (
	"context"
	"testing"
	"time"

	"github.com/eventra/eventra/internal/utils"
	"github.com/eventra/eventra/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerCtx = user.WithUser(context.Background(), user.User{ID: "user-1", Username: "owner"})
	otherCtx = user.WithUser(context.Background(), user.User{ID: "user-2", Username: "intruder"})
)

func setupServiceTest() (*EventServiceImpl, *StubEventRepo) {
	repo := NewStubEventRepo()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)}
	return NewEventService(repo, clock), repo
}

func TestEventService_Create(t *testing.T) {
	t.Run("stamps the caller as owner and assigns a fresh id", func(t *testing.T) {
		service, _ := setupServiceTest()

		date := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
		created, err := service.Create(ownerCtx, EventDraft{Title: "Standup", Description: "", Date: &date})

		require.NoError(t, err)
		assert.Equal(t, "user-1", created.OwnerID)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Standup", created.Title)
		assert.Equal(t, &date, created.Date)
	})

	t.Run("ids are unique across creates", func(t *testing.T) {
		service, _ := setupServiceTest()

		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			created, err := service.Create(ownerCtx, EventDraft{Title: "Standup"})
			require.NoError(t, err)
			assert.False(t, seen[created.ID])
			seen[created.ID] = true
		}
	})

	t.Run("date is optional", func(t *testing.T) {
		service, _ := setupServiceTest()

		created, err := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		require.NoError(t, err)
		assert.Nil(t, created.Date)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		service, repo := setupServiceTest()

		_, err := service.Create(ownerCtx, EventDraft{Title: "   "})

		assert.ErrorIs(t, err, ErrTitleRequired)
		assert.Empty(t, repo.events)
	})

	t.Run("fails without a user in context", func(t *testing.T) {
		service, _ := setupServiceTest()

		_, err := service.Create(context.Background(), EventDraft{Title: "Standup"})

		assert.ErrorIs(t, err, user.ErrNoUser)
	})
}

func TestEventService_List(t *testing.T) {
	t.Run("returns exactly the caller's events", func(t *testing.T) {
		service, _ := setupServiceTest()

		created, err := service.Create(ownerCtx, EventDraft{Title: "Standup"})
		require.NoError(t, err)

		mine, err := service.List(ownerCtx)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, created.ID, mine[0].ID)

		theirs, err := service.List(otherCtx)
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})

	t.Run("no events is an empty result, not an error", func(t *testing.T) {
		service, _ := setupServiceTest()

		events, err := service.List(ownerCtx)

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_Get(t *testing.T) {
	t.Run("owner can read the event", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		got, err := service.Get(ownerCtx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("unknown id is not found regardless of caller", func(t *testing.T) {
		service, _ := setupServiceTest()

		_, err := service.Get(ownerCtx, "nonexistent-id")
		assert.ErrorIs(t, err, ErrEventNotFound)

		_, err = service.Get(otherCtx, "nonexistent-id")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("non-owner gets forbidden and no event data", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		got, err := service.Get(otherCtx, created.ID)

		assert.ErrorIs(t, err, ErrNotEventOwner)
		assert.Equal(t, Event{}, got)
	})
}

func TestEventService_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("provided non-empty fields replace, omitted fields are retained", func(t *testing.T) {
		service, _ := setupServiceTest()
		date := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup", Description: "daily", Date: &date})

		updated, err := service.Update(ownerCtx, created.ID, EventPatch{Title: strPtr("Retro")})

		require.NoError(t, err)
		assert.Equal(t, "Retro", updated.Title)
		assert.Equal(t, "daily", updated.Description)
		assert.Equal(t, &date, updated.Date)

		stored, err := service.Get(ownerCtx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("empty string does not clear a field", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup", Description: "daily"})

		updated, err := service.Update(ownerCtx, created.ID, EventPatch{
			Title:       strPtr(""),
			Description: strPtr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, "Standup", updated.Title)
		assert.Equal(t, "daily", updated.Description)
	})

	t.Run("all fields omitted is a successful no-op", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		updated, err := service.Update(ownerCtx, created.ID, EventPatch{})

		require.NoError(t, err)
		assert.Equal(t, created, updated)
	})

	t.Run("idempotent under repeated identical input", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})
		patch := EventPatch{Title: strPtr("Retro"), Description: strPtr("biweekly")}

		first, err := service.Update(ownerCtx, created.ID, patch)
		require.NoError(t, err)
		second, err := service.Update(ownerCtx, created.ID, patch)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("non-owner update is forbidden and leaves the event unchanged", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		_, err := service.Update(otherCtx, created.ID, EventPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotEventOwner)

		stored, err := service.Get(ownerCtx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Standup", stored.Title)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		service, _ := setupServiceTest()

		_, err := service.Update(ownerCtx, "nonexistent-id", EventPatch{Title: strPtr("x")})

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	t.Run("delete is terminal", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		require.NoError(t, service.Delete(ownerCtx, created.ID))

		_, err := service.Get(ownerCtx, created.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)
		_, err = service.Update(ownerCtx, created.ID, EventPatch{})
		assert.ErrorIs(t, err, ErrEventNotFound)
		err = service.Delete(ownerCtx, created.ID)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("non-owner delete is forbidden and keeps the event", func(t *testing.T) {
		service, _ := setupServiceTest()
		created, _ := service.Create(ownerCtx, EventDraft{Title: "Standup"})

		err := service.Delete(otherCtx, created.ID)
		assert.ErrorIs(t, err, ErrNotEventOwner)

		_, err = service.Get(ownerCtx, created.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		service, _ := setupServiceTest()

		err := service.Delete(ownerCtx, "nonexistent-id")

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}
