package service

import (
	"github.com/milan/taxi-booking-website/internal/config"
	"github.com/milan/taxi-booking-website/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Booking *BookingService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session, cfg),
		Booking: NewBookingService(repos.Booking),
	}
}
