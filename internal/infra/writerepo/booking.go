package writerepo

import (
	"context"

	"eventure/internal/domain/booking"
	"eventure/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking inside the caller's transaction. The unique
// index on payment_ref turns a replayed confirmation into a DUPLICATE_KEY
// error instead of a second row.
func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error) {
	draft := b.Draft()
	quote := b.Quote()

	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, reference, user_id, scooter_id,
			pickup_date, pickup_time, dropoff_date, dropoff_time,
			pickup_location, dropoff_location,
			total_half_hours, total_amount_paise,
			payment_ref, status
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10,
			$11, $12,
			$13, $14
		)
		RETURNING id`,
		b.ID(), b.Reference(), b.UserID(), b.ScooterID(),
		draft.Period.PickupDate(), draft.Period.PickupTime(),
		draft.Period.DropoffDate(), draft.Period.DropoffTime(),
		draft.PickupLocation, draft.DropoffLocation,
		int64(quote.Hours()*2), quote.Amount().Paise(),
		b.PaymentRef(), b.Status().String(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("booking already exists for payment reference", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindIDByPaymentRef(ctx context.Context, paymentRef string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT id FROM bookings WHERE payment_ref = $1`,
		paymentRef,
	).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("booking not found for payment reference", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to look up booking by payment reference", err)
	}
	return id, nil
}
