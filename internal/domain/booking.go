package domain

import (
	"time"

	"github.com/google/uuid"
)

type VehicleType string

const (
	VehicleStandard VehicleType = "standard"
	VehicleComfort  VehicleType = "comfort"
	VehicleVan      VehicleType = "van"
)

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleStandard, VehicleComfort, VehicleVan:
		return true
	}
	return false
}

type BookingStatus string

// Only BookingStatusPending is ever written by this service; the remaining
// statuses describe rows advanced by dispatch tooling outside this codebase.
const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID     `json:"userId" gorm:"type:uuid;not null"`
	PickupLocation string        `json:"pickupLocation" gorm:"not null"`
	Destination    string        `json:"destination" gorm:"not null"`
	ScheduledFor   time.Time     `json:"scheduledFor" gorm:"not null"`
	Passengers     int           `json:"passengers" gorm:"not null;default:1"`
	VehicleType    VehicleType   `json:"vehicleType" gorm:"not null;default:'standard'"`
	Notes          string        `json:"notes,omitempty"`
	Status         BookingStatus `json:"status" gorm:"not null;default:'pending'"`
	EstimatedPrice string        `json:"estimatedPrice,omitempty"`
	ActualPrice    string        `json:"actualPrice,omitempty"`
	DriverID       *uuid.UUID    `json:"driverId,omitempty" gorm:"type:uuid"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
