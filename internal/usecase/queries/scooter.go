package queries

import (
	"context"

	"eventure/internal/infra"
	"eventure/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrScooterNotFound = errs.New("scooter not found")

type ScooterQueries interface {
	// List serves the catalog from the reconciler snapshot, not the database.
	List(ctx context.Context) (*CatalogListing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ScooterView, error)
}

type ScooterReadStore interface {
	FindAll(ctx context.Context) ([]*ScooterView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ScooterView, error)
}

// CatalogSnapshot is the read surface of the availability reconciler.
type CatalogSnapshot interface {
	Listing() *CatalogListing
}

type scooterQueriesImpl struct {
	snapshot CatalogSnapshot
	store    ScooterReadStore
}

func NewScooterQueries(snapshot CatalogSnapshot, store ScooterReadStore) ScooterQueries {
	return &scooterQueriesImpl{snapshot: snapshot, store: store}
}

func (q *scooterQueriesImpl) List(_ context.Context) (*CatalogListing, error) {
	return q.snapshot.Listing(), nil
}

func (q *scooterQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ScooterView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScooterNotFound
		}
		return nil, err
	}
	return view, nil
}
