package queries

import (
	"context"

	"eventure/internal/domain/booking"
	"eventure/internal/infra"
	"eventure/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	// GetByID returns the booking only when actor owns it.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the ownership check for internal read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	// Quote prices a draft against a scooter's current hourly rate.
	Quote(ctx context.Context, scooterID uuid.UUID, draft booking.Draft) (*QuoteView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store        BookingReadStore
	scooterStore ScooterReadStore
}

func NewBookingQueries(store BookingReadStore, scooterStore ScooterReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, scooterStore: scooterStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Ownership is enforced here rather than in SQL so a foreign booking is
	// indistinguishable from a missing one.
	if view.UserID != actor {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *bookingQueriesImpl) Quote(ctx context.Context, scooterID uuid.UUID, draft booking.Draft) (*QuoteView, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	scooterView, err := q.scooterStore.FindByID(ctx, scooterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScooterNotFound
		}
		return nil, err
	}

	quote, err := booking.ComputeQuote(draft.Period, booking.NewMoney(scooterView.HourlyRatePaise))
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		TotalHours:        quote.Hours(),
		TotalAmountPaise:  quote.Amount().Paise(),
		TotalAmountRupees: quote.Amount().Rupees(),
	}, nil
}
