package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ScooterView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Model           string    `json:"model"`
	ImageURL        string    `json:"image_url"`
	HourlyRatePaise int64     `json:"hourly_rate_paise"`
	MaxSpeed        string    `json:"max_speed"`
	Location        string    `json:"location"`
	Mileage         string    `json:"mileage"`
	Support         string    `json:"support"`
	Owner           string    `json:"owner"`
	Available       int32     `json:"available"`
	Rating          float64   `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	UserID           uuid.UUID `json:"user_id"`
	ScooterID        uuid.UUID `json:"scooter_id"`
	ScooterName      string    `json:"scooter_name"`
	PickupDate       string    `json:"pickup_date"`
	PickupTime       string    `json:"pickup_time"`
	DropoffDate      string    `json:"dropoff_date"`
	DropoffTime      string    `json:"dropoff_time"`
	PickupLocation   string    `json:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location"`
	TotalHours       float64   `json:"total_hours"`
	TotalAmountPaise int64     `json:"total_amount_paise"`
	PaymentRef       string    `json:"payment_ref"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type QuoteView struct {
	TotalHours        float64 `json:"total_hours"`
	TotalAmountPaise  int64   `json:"total_amount_paise"`
	TotalAmountRupees float64 `json:"total_amount_rupees"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// CatalogListing is the reconciler-served snapshot of the scooter catalog.
// Stale means the last poll failed and the entries predate it.
type CatalogListing struct {
	Scooters  []*ScooterView `json:"scooters"`
	FetchedAt time.Time      `json:"fetched_at"`
	Stale     bool           `json:"stale"`
}
