package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/milan/taxi-booking-website/internal/domain"
	"github.com/milan/taxi-booking-website/internal/repository/postgres"
	"github.com/milan/taxi-booking-website/internal/service"
	"github.com/milan/taxi-booking-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	bookingService := service.NewBookingService(repos.Booking)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.CreateBookingInput
		wantErr error
		check   func(t *testing.T, b *domain.Booking)
	}{
		{
			name: "successful booking",
			input: service.CreateBookingInput{
				PickupLocation: "Dam Square",
				Destination:    "Schiphol",
				Date:           "2024-03-01",
				Time:           "14:00",
				Passengers:     2,
				VehicleType:    "comfort",
				Notes:          "two suitcases",
			},
			check: func(t *testing.T, b *domain.Booking) {
				assert.Equal(t, user.ID, b.UserID)
				assert.Equal(t, domain.BookingStatusPending, b.Status)
				assert.Equal(t, domain.VehicleComfort, b.VehicleType)
				assert.Equal(t, 2, b.Passengers)
				assert.Equal(t,
					time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
					b.ScheduledFor.UTC())
			},
		},
		{
			name: "defaults applied",
			input: service.CreateBookingInput{
				PickupLocation: "Central Station",
				Destination:    "Museumplein",
				Date:           "2024-06-15",
				Time:           "09:30",
			},
			check: func(t *testing.T, b *domain.Booking) {
				assert.Equal(t, 1, b.Passengers)
				assert.Equal(t, domain.VehicleStandard, b.VehicleType)
			},
		},
		{
			name: "malformed date",
			input: service.CreateBookingInput{
				PickupLocation: "A",
				Destination:    "B",
				Date:           "01-03-2024",
				Time:           "14:00",
			},
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name: "malformed time",
			input: service.CreateBookingInput{
				PickupLocation: "A",
				Destination:    "B",
				Date:           "2024-03-01",
				Time:           "2pm",
			},
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name: "missing time",
			input: service.CreateBookingInput{
				PickupLocation: "A",
				Destination:    "B",
				Date:           "2024-03-01",
			},
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name: "unknown vehicle type",
			input: service.CreateBookingInput{
				PickupLocation: "A",
				Destination:    "B",
				Date:           "2024-03-01",
				Time:           "14:00",
				VehicleType:    "limousine",
			},
			wantErr: domain.ErrInvalidVehicleType,
		},
		{
			name: "negative passengers",
			input: service.CreateBookingInput{
				PickupLocation: "A",
				Destination:    "B",
				Date:           "2024-03-01",
				Time:           "14:00",
				Passengers:     -1,
			},
			wantErr: domain.ErrInvalidPassengers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := bookingService.Create(ctx, user.ID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, booking)
			if tt.check != nil {
				tt.check(t, booking)
			}

			// The stored row matches what was returned
			stored, err := repos.Booking.GetByID(ctx, booking.ID)
			require.NoError(t, err)
			assert.Equal(t, booking.PickupLocation, stored.PickupLocation)
			assert.Equal(t, domain.BookingStatusPending, stored.Status)
		})
	}

	// Rejected inputs never reach the store
	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "only the two valid bookings should exist")
}

func TestBookingService_ListForUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	bookingService := service.NewBookingService(repos.Booking)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	// Three bookings with distinct creation times, inserted out of order
	base := time.Now().Add(-time.Hour)
	middle := testutil.NewBookingBuilder().
		WithUser(user).WithPickupLocation("middle").
		WithCreatedAt(base.Add(10 * time.Minute)).Build(t, testDB.DB)
	oldest := testutil.NewBookingBuilder().
		WithUser(user).WithPickupLocation("oldest").
		WithCreatedAt(base).Build(t, testDB.DB)
	newest := testutil.NewBookingBuilder().
		WithUser(user).WithPickupLocation("newest").
		WithCreatedAt(base.Add(20 * time.Minute)).Build(t, testDB.DB)

	// Another user's booking must not appear
	testutil.NewBookingBuilder().WithUser(other).Build(t, testDB.DB)

	bookings, err := bookingService.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, newest.ID, bookings[0].ID)
	assert.Equal(t, middle.ID, bookings[1].ID)
	assert.Equal(t, oldest.ID, bookings[2].ID)

	for i := 1; i < len(bookings); i++ {
		assert.False(t, bookings[i-1].CreatedAt.Before(bookings[i].CreatedAt),
			"bookings must be ordered newest first")
	}
}

func TestBookingService_ListForUser_Empty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	bookingService := service.NewBookingService(repos.Booking)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	bookings, err := bookingService.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
