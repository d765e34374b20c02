package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milan/taxi-booking-website/internal/domain"
	"github.com/milan/taxi-booking-website/internal/repository"
)

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "15:04"
)

type BookingService struct {
	bookingRepo repository.BookingRepository
}

func NewBookingService(bookingRepo repository.BookingRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

type CreateBookingInput struct {
	PickupLocation string
	Destination    string
	Date           string
	Time           string
	Passengers     int
	VehicleType    string
	Notes          string
}

func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input CreateBookingInput) (*domain.Booking, error) {
	scheduledFor, err := parseSchedule(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	passengers := input.Passengers
	if passengers == 0 {
		passengers = 1
	}
	if passengers < 1 {
		return nil, domain.ErrInvalidPassengers
	}

	vehicleType := domain.VehicleType(input.VehicleType)
	if vehicleType == "" {
		vehicleType = domain.VehicleStandard
	}
	if !vehicleType.IsValid() {
		return nil, domain.ErrInvalidVehicleType
	}

	booking := &domain.Booking{
		ID:             uuid.New(),
		UserID:         userID,
		PickupLocation: input.PickupLocation,
		Destination:    input.Destination,
		ScheduledFor:   scheduledFor,
		Passengers:     passengers,
		VehicleType:    vehicleType,
		Notes:          input.Notes,
		// Always starts pending; dispatch advances it elsewhere.
		Status:    domain.BookingStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	return s.bookingRepo.GetByUserID(ctx, userID)
}

// parseSchedule combines the separate date and time form fields into a single
// timestamp. Both fields are parsed strictly; malformed input is rejected
// instead of producing a zero or garbage timestamp.
func parseSchedule(date, clock string) (time.Time, error) {
	if date == "" || clock == "" {
		return time.Time{}, domain.ErrInvalidSchedule
	}
	scheduledFor, err := time.Parse(
		scheduleDateLayout+" "+scheduleTimeLayout,
		fmt.Sprintf("%s %s", date, clock),
	)
	if err != nil {
		return time.Time{}, domain.ErrInvalidSchedule
	}
	return scheduledFor, nil
}
