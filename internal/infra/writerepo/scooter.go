package writerepo

import (
	"context"
	"time"

	"eventure/internal/domain/scooter"
	"eventure/internal/infra"
	"eventure/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScooterRepository struct {
	db *pgxpool.Pool
}

func NewScooterRepository(db *pgxpool.Pool) *ScooterRepository {
	return &ScooterRepository{db: db}
}

func (r *ScooterRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ScooterSnapshot, error) {
	snap := &commands.ScooterSnapshot{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, hourly_rate_paise, available FROM scooters WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.Name, &snap.HourlyRatePaise, &snap.Available)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scooter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find scooter by ID", err)
	}
	return snap, nil
}

func (r *ScooterRepository) Insert(ctx context.Context, s *scooter.Scooter) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO scooters (
			id, name, model, image_url, hourly_rate_paise,
			max_speed, location, mileage, support, owner,
			available, rating
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		s.ID(), s.Name(), s.Model(), s.ImageURL(), s.HourlyRatePaise(),
		s.MaxSpeed(), s.Location(), s.Mileage(), s.Support(), s.Owner(),
		s.Available(), s.Rating(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert scooter", err)
	}
	return id, nil
}

func (r *ScooterRepository) Update(ctx context.Context, s *scooter.Scooter) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE scooters
		SET name = $2, model = $3, image_url = $4, hourly_rate_paise = $5,
		    max_speed = $6, location = $7, mileage = $8, support = $9,
		    owner = $10, available = $11, rating = $12, updated_at = now()
		WHERE id = $1`,
		s.ID(), s.Name(), s.Model(), s.ImageURL(), s.HourlyRatePaise(),
		s.MaxSpeed(), s.Location(), s.Mileage(), s.Support(),
		s.Owner(), s.Available(), s.Rating(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update scooter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("scooter not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScooterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scooters WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete scooter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("scooter not found", nil, infra.KindNotFound)
	}
	return nil
}

// DecrementAvailable is the conditional write at the heart of confirmation:
// one unit comes off only while stock remains, so concurrent confirmations
// can never drive available below zero.
func (r *ScooterRepository) DecrementAvailable(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`UPDATE scooters SET available = available - 1, updated_at = now()
		 WHERE id = $1 AND available > 0`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement scooter availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no available units to decrement", nil, infra.KindConflict)
	}
	return nil
}

func (r *ScooterRepository) LoadForUpdate(ctx context.Context, id uuid.UUID) (*scooter.Scooter, error) {
	var (
		attrs                scooter.Attributes
		scooterID            uuid.UUID
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, model, image_url, hourly_rate_paise,
		       max_speed, location, mileage, support, owner,
		       available, rating, created_at, updated_at
		FROM scooters WHERE id = $1`,
		id,
	).Scan(
		&scooterID, &attrs.Name, &attrs.Model, &attrs.ImageURL, &attrs.HourlyRatePaise,
		&attrs.MaxSpeed, &attrs.Location, &attrs.Mileage, &attrs.Support, &attrs.Owner,
		&attrs.Available, &attrs.Rating, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scooter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load scooter", err)
	}

	return scooter.Reconstruct(scooterID, attrs, createdAt, updatedAt), nil
}
