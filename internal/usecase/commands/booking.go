package commands

import (
	"context"
	"log/slog"

	"eventure/internal/domain/booking"
	"eventure/internal/infra"
	"eventure/internal/pkg/errs"
	"eventure/internal/usecase/queries"
	"eventure/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrScooterNotFound          = errs.New("scooter not found")
	ErrSoldOut                  = errs.New("scooter is sold out")
	ErrBookingPersistenceFailed = errs.New("booking persistence failed")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

type ConfirmBookingParams struct {
	UserID          uuid.UUID
	ScooterID       uuid.UUID
	PickupDate      string
	PickupTime      string
	DropoffDate     string
	DropoffTime     string
	PickupLocation  string
	DropoffLocation string
	PaymentRef      string
}

type ConfirmBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	ConfirmBooking(ctx context.Context, params ConfirmBookingParams) (*ConfirmBookingResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	scooterRepo    ScooterRepository
	sessions       CheckoutSessions
	cache          CatalogCache
	bookingQueries queries.BookingQueries
	db             shared.TxStarter
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	scooterRepo ScooterRepository,
	sessions CheckoutSessions,
	cache CatalogCache,
	bookingQueries queries.BookingQueries,
	db shared.TxStarter,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		scooterRepo:    scooterRepo,
		sessions:       sessions,
		cache:          cache,
		bookingQueries: bookingQueries,
		db:             db,
	}
}

// ConfirmBooking persists a booking after the payment gateway reported
// success. The insert and the availability decrement run in one transaction;
// a decrement refused at zero aborts the whole confirmation as ErrSoldOut.
// The insert is keyed on the payment reference, so replaying a confirmation
// (client retry after a dropped response) returns the existing booking.
func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, params ConfirmBookingParams) (*ConfirmBookingResult, error) {
	draft := booking.NewDraft(
		params.PickupDate, params.PickupTime,
		params.DropoffDate, params.DropoffTime,
		params.PickupLocation, params.DropoffLocation,
	)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if existing, err := c.findReplayed(ctx, params.PaymentRef); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	snap, err := c.scooterRepo.FindByID(ctx, params.ScooterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScooterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	quote, err := booking.ComputeQuote(draft.Period, booking.NewMoney(snap.HourlyRatePaise))
	if err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(params.UserID, params.ScooterID, draft, quote, params.PaymentRef)
	if err != nil {
		return nil, err
	}

	bookingID, err := shared.RunInTx(ctx, c.db, func(tx pgx.Tx) (uuid.UUID, error) {
		id, createErr := c.bookingRepo.Create(ctx, tx, entity)
		if createErr != nil {
			return uuid.Nil, createErr
		}
		if decErr := c.scooterRepo.DecrementAvailable(ctx, tx, params.ScooterID); decErr != nil {
			return uuid.Nil, decErr
		}
		return id, nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			// Concurrent confirmation with the same payment reference won the
			// race; serve its result instead of failing.
			if existing, replayErr := c.findReplayed(ctx, params.PaymentRef); replayErr == nil && existing != nil {
				return existing, nil
			}
			return nil, errs.Mark(err, ErrBookingPersistenceFailed)
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrSoldOut
		default:
			return nil, errs.Mark(err, ErrBookingPersistenceFailed)
		}
	}

	c.finishCheckout(ctx, params.UserID, params.ScooterID)

	view, err := c.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ConfirmBookingResult{Booking: view, IsReplayed: false}, nil
}

func (c *bookingCommandsImpl) findReplayed(ctx context.Context, paymentRef string) (*ConfirmBookingResult, error) {
	id, err := c.bookingRepo.FindIDByPaymentRef(ctx, paymentRef)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.bookingQueries.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &ConfirmBookingResult{Booking: view, IsReplayed: true}, nil
}

// finishCheckout resolves the checkout session and patches the catalog
// snapshot ahead of the next poll. Both are best-effort: the booking is
// already committed.
func (c *bookingCommandsImpl) finishCheckout(ctx context.Context, userID, scooterID uuid.UUID) {
	if err := c.sessions.Close(ctx, userID, scooterID); err != nil {
		slog.Warn("failed to close checkout session", "user_id", userID, "scooter_id", scooterID, "error", err)
	}
	c.cache.ApplyBookingDecrement(scooterID)
}
