package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/milan/taxi-booking-website/internal/domain"
	"github.com/milan/taxi-booking-website/internal/repository/postgres"
	"github.com/milan/taxi-booking-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSessionRepository_GetValid(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	userRepo := postgres.NewUserRepository(testDB.DB)
	repo := postgres.NewSessionRepository(testDB.DB)
	ctx := context.Background()

	user := newUser(t, "sessions@example.com")
	require.NoError(t, userRepo.Create(ctx, user))

	now := time.Now()

	live := &domain.Session{
		ID:        "live-token",
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	stale := &domain.Session{
		ID:        "stale-token",
		UserID:    user.ID,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-25 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, stale))

	got, err := repo.GetValid(ctx, "live-token", now)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	// The expired row is still in the table but never returned
	_, err = repo.GetValid(ctx, "stale-token", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// A live row read after its expiry instant is rejected too
	_, err = repo.GetValid(ctx, "live-token", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetValid(ctx, "no-such-token", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	userRepo := postgres.NewUserRepository(testDB.DB)
	repo := postgres.NewSessionRepository(testDB.DB)
	ctx := context.Background()

	user := newUser(t, "session-delete@example.com")
	require.NoError(t, userRepo.Create(ctx, user))

	now := time.Now()
	session := &domain.Session{
		ID:        "delete-me",
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, session))

	require.NoError(t, repo.Delete(ctx, "delete-me"))
	_, err := repo.GetValid(ctx, "delete-me", now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting an absent token is a no-op
	require.NoError(t, repo.Delete(ctx, "delete-me"))
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	userRepo := postgres.NewUserRepository(testDB.DB)
	repo := postgres.NewSessionRepository(testDB.DB)
	ctx := context.Background()

	user := newUser(t, "session-sweep@example.com")
	require.NoError(t, userRepo.Create(ctx, user))

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &domain.Session{
		ID: "fresh", UserID: user.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Session{
		ID: "gone-1", UserID: user.ID, ExpiresAt: now.Add(-time.Hour), CreatedAt: now,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Session{
		ID: "gone-2", UserID: user.ID, ExpiresAt: now.Add(-time.Minute), CreatedAt: now,
	}))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.GetValid(ctx, "fresh", now)
	require.NoError(t, err)
}
