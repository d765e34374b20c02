package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/milan/taxi-booking-website/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     "Test User",
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// UserResponse matches the API's public user projection
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BuildAndAuthenticate registers the user via the API and returns the user
// plus an http.Client whose cookie jar carries the session cookie.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, *http.Client) {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := client.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var userResp UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(userResp.ID)
	user := &domain.User{
		ID:    userID,
		Name:  userResp.Name,
		Email: userResp.Email,
	}

	return user, client
}

// BookingBuilder creates test bookings with a builder pattern
type BookingBuilder struct {
	user           *domain.User
	pickupLocation string
	destination    string
	scheduledFor   time.Time
	passengers     int
	vehicleType    domain.VehicleType
	createdAt      time.Time
}

// NewBookingBuilder creates a new BookingBuilder with default values
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		pickupLocation: "Dam Square",
		destination:    "Schiphol Airport",
		scheduledFor:   time.Now().Add(24 * time.Hour),
		passengers:     1,
		vehicleType:    domain.VehicleStandard,
		createdAt:      time.Now(),
	}
}

// WithUser sets the owning user
func (b *BookingBuilder) WithUser(user *domain.User) *BookingBuilder {
	b.user = user
	return b
}

// WithPickupLocation sets the pickup location
func (b *BookingBuilder) WithPickupLocation(location string) *BookingBuilder {
	b.pickupLocation = location
	return b
}

// WithDestination sets the destination
func (b *BookingBuilder) WithDestination(destination string) *BookingBuilder {
	b.destination = destination
	return b
}

// WithVehicleType sets the vehicle type
func (b *BookingBuilder) WithVehicleType(vehicleType domain.VehicleType) *BookingBuilder {
	b.vehicleType = vehicleType
	return b
}

// WithCreatedAt sets the creation timestamp, for ordering tests
func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.createdAt = createdAt
	return b
}

// Build creates the booking in the database
func (b *BookingBuilder) Build(t *testing.T, db *gorm.DB) *domain.Booking {
	t.Helper()

	if b.user == nil {
		t.Fatal("BookingBuilder requires a user")
	}

	booking := &domain.Booking{
		ID:             uuid.New(),
		UserID:         b.user.ID,
		PickupLocation: b.pickupLocation,
		Destination:    b.destination,
		ScheduledFor:   b.scheduledFor,
		Passengers:     b.passengers,
		VehicleType:    b.vehicleType,
		Status:         domain.BookingStatusPending,
		CreatedAt:      b.createdAt,
		UpdatedAt:      b.createdAt,
	}

	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}

	return booking
}
