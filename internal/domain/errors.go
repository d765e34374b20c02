package domain

import "errors"

// Booking validation errors
var (
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrInvalidPassengers  = errors.New("passengers must be at least 1")
	ErrInvalidSchedule    = errors.New("invalid pickup date or time")
)
