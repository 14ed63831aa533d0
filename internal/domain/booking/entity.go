package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingPaymentRef = errors.New("payment reference is required")

// Booking is the persisted outcome of a successful booking. It is only ever
// created after the payment gateway reported success, so it carries the opaque
// payment reference from day one and starts out confirmed.
type Booking struct {
	id         uuid.UUID
	reference  string
	userID     uuid.UUID
	scooterID  uuid.UUID
	draft      Draft
	quote      Quote
	paymentRef string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking builds a confirmed booking from a validated draft, its quote and
// the gateway payment reference.
func NewBooking(userID, scooterID uuid.UUID, draft Draft, quote Quote, paymentRef string) (*Booking, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if !quote.IsPayable() {
		return nil, ErrInvalidRange
	}
	if strings.TrimSpace(paymentRef) == "" {
		return nil, ErrMissingPaymentRef
	}

	id := uuid.New()
	return &Booking{
		id:         id,
		reference:  newReference(id),
		userID:     userID,
		scooterID:  scooterID,
		draft:      draft,
		quote:      quote,
		paymentRef: strings.TrimSpace(paymentRef),
		status:     StatusConfirmed,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	reference string,
	userID, scooterID uuid.UUID,
	draft Draft,
	quote Quote,
	paymentRef string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		reference:  reference,
		userID:     userID,
		scooterID:  scooterID,
		draft:      draft,
		quote:      quote,
		paymentRef: paymentRef,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ReconstructQuote rebuilds a stored quote without re-deriving it from the
// period, so historical bookings render the amounts they were actually charged.
func ReconstructQuote(halfHours int64, amountPaise int64) Quote {
	return Quote{halfHours: halfHours, amount: NewMoney(amountPaise)}
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Reference() string    { return b.reference }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) ScooterID() uuid.UUID { return b.scooterID }
func (b *Booking) Draft() Draft         { return b.draft }
func (b *Booking) Quote() Quote         { return b.quote }
func (b *Booking) PaymentRef() string   { return b.paymentRef }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// newReference derives the human-facing booking reference from the row ID.
func newReference(id uuid.UUID) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:10]
	return fmt.Sprintf("EVB-%s", short)
}
