package commands

import (
	"context"
	"time"

	"eventure/internal/domain/booking"
	"eventure/internal/domain/scooter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side snapshot so commands never depend on read-side view types.
type ScooterSnapshot struct {
	ID              uuid.UUID
	Name            string
	HourlyRatePaise int64
	Available       int32
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error)
	FindIDByPaymentRef(ctx context.Context, paymentRef string) (uuid.UUID, error)
}

type ScooterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ScooterSnapshot, error)
	Insert(ctx context.Context, s *scooter.Scooter) (uuid.UUID, error)
	Update(ctx context.Context, s *scooter.Scooter) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DecrementAvailable takes one unit off the scooter, refusing to go below
	// zero. A refused decrement surfaces as a CONFLICT repository error.
	DecrementAvailable(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	LoadForUpdate(ctx context.Context, id uuid.UUID) (*scooter.Scooter, error)
}

// PaymentIntent is the gateway-side handle the hosted widget is opened with.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type IntentRequest struct {
	AmountPaise int64
	Currency    string
	Description string
}

type PaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*PaymentIntent, error)
}

// CheckoutSessions guards against duplicate payment initiation: at most one
// open session per user+scooter pair, resolved exactly once.
type CheckoutSessions interface {
	// Open returns false when a session is already open for the pair.
	Open(ctx context.Context, userID, scooterID uuid.UUID, ttl time.Duration) (bool, error)
	Close(ctx context.Context, userID, scooterID uuid.UUID) error
}

// CatalogCache receives optimistic updates ahead of the next reconciler poll.
type CatalogCache interface {
	ApplyBookingDecrement(scooterID uuid.UUID)
	Invalidate(ctx context.Context)
}
