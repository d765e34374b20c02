package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/milan/taxi-booking-website/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetValid returns the session only if it exists and has not expired at
	// the given instant.
	GetValid(ctx context.Context, token string, now time.Time) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Booking BookingRepository
}
