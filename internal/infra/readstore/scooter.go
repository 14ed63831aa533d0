package readstore

import (
	"context"

	"eventure/internal/infra"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const scooterColumns = `
	id, name, model, image_url, hourly_rate_paise,
	max_speed, location, mileage, support, owner,
	available, rating, created_at, updated_at`

type ScooterReadStore struct {
	db *pgxpool.Pool
}

func NewScooterReadStore(db *pgxpool.Pool) *ScooterReadStore {
	return &ScooterReadStore{db: db}
}

func (r *ScooterReadStore) FindAll(ctx context.Context) ([]*queries.ScooterView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scooterColumns+` FROM scooters ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all scooters", err)
	}
	defer rows.Close()

	var result []*queries.ScooterView
	for rows.Next() {
		view, scanErr := scanScooter(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan scooter row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read scooter rows", err)
	}

	return result, nil
}

func (r *ScooterReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ScooterView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+scooterColumns+` FROM scooters WHERE id = $1`, id)

	view, err := scanScooter(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scooter not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find scooter by ID", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScooter(row rowScanner) (*queries.ScooterView, error) {
	view := &queries.ScooterView{}
	err := row.Scan(
		&view.ID, &view.Name, &view.Model, &view.ImageURL, &view.HourlyRatePaise,
		&view.MaxSpeed, &view.Location, &view.Mileage, &view.Support, &view.Owner,
		&view.Available, &view.Rating, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return view, nil
}
