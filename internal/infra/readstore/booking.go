package readstore

import (
	"context"

	"eventure/internal/infra"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingSelect = `
	SELECT b.id, b.reference, b.user_id, b.scooter_id, s.name,
	       b.pickup_date, b.pickup_time, b.dropoff_date, b.dropoff_time,
	       b.pickup_location, b.dropoff_location,
	       b.total_half_hours, b.total_amount_paise,
	       b.payment_ref, b.status, b.created_at, b.updated_at
	FROM bookings b
	JOIN scooters s ON s.id = b.scooter_id`

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)

	view, err := scanBooking(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	// ISO date and 24h time columns sort lexicographically, newest pickup first.
	rows, err := r.db.Query(ctx,
		bookingSelect+` WHERE b.user_id = $1
		ORDER BY b.pickup_date DESC, b.pickup_time DESC, b.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

func scanBooking(row rowScanner) (*queries.BookingView, error) {
	view := &queries.BookingView{}
	var halfHours int64
	err := row.Scan(
		&view.ID, &view.Reference, &view.UserID, &view.ScooterID, &view.ScooterName,
		&view.PickupDate, &view.PickupTime, &view.DropoffDate, &view.DropoffTime,
		&view.PickupLocation, &view.DropoffLocation,
		&halfHours, &view.TotalAmountPaise,
		&view.PaymentRef, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.TotalHours = float64(halfHours) / 2
	return view, nil
}
