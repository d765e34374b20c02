package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/milan/taxi-booking-website/internal/api/middleware"
	"github.com/milan/taxi-booking-website/internal/domain"
	"github.com/milan/taxi-booking-website/internal/metrics"
	"github.com/milan/taxi-booking-website/internal/service"
)

type BookingHandler struct {
	bookingService *service.BookingService
	collector      *metrics.Collector
}

func NewBookingHandler(bookingService *service.BookingService, collector *metrics.Collector) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		collector:      collector,
	}
}

type CreateBookingRequest struct {
	PickupLocation string `json:"pickupLocation"`
	Destination    string `json:"destination"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Passengers     int    `json:"passengers"`
	VehicleType    string `json:"vehicleType"`
	Notes          string `json:"notes"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PickupLocation == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "Pickup location and destination are required")
		return
	}

	booking, err := h.bookingService.Create(r.Context(), userID, service.CreateBookingInput{
		PickupLocation: req.PickupLocation,
		Destination:    req.Destination,
		Date:           req.Date,
		Time:           req.Time,
		Passengers:     req.Passengers,
		VehicleType:    req.VehicleType,
		Notes:          req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSchedule):
			writeError(w, http.StatusBadRequest, "Invalid pickup date or time")
		case errors.Is(err, domain.ErrInvalidVehicleType):
			writeError(w, http.StatusBadRequest, "Invalid vehicle type")
		case errors.Is(err, domain.ErrInvalidPassengers):
			writeError(w, http.StatusBadRequest, "Passengers must be at least 1")
		default:
			log.Printf("ERROR [booking.Create] booking creation failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.collector.RecordBookingCreated()
	writeJSON(w, http.StatusOK, booking)
}

// List returns the user's bookings, most recent first.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	bookings, err := h.bookingService.ListForUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [booking.List] listing failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	writeJSON(w, http.StatusOK, bookings)
}
