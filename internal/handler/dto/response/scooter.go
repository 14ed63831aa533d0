package response

import (
	"time"

	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScooterResponse struct {
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

// CatalogResponse exposes the snapshot metadata so clients can tell a fresh
// listing from one served while the reconciler cannot reach the database.
type CatalogResponse struct {
	Scooters  []*ScooterResponse `json:"scooters"`
	FetchedAt time.Time          `json:"fetched_at"`
	Stale     bool               `json:"stale"`
}

func FromScooterView(view *queries.ScooterView) (*ScooterResponse, error) {
	resp := &ScooterResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromCatalogListing(listing *queries.CatalogListing) (*CatalogResponse, error) {
	scooters := make([]*ScooterResponse, 0, len(listing.Scooters))
	for _, view := range listing.Scooters {
		resp, err := FromScooterView(view)
		if err != nil {
			return nil, err
		}
		scooters = append(scooters, resp)
	}
	return &CatalogResponse{
		Scooters:  scooters,
		FetchedAt: listing.FetchedAt,
		Stale:     listing.Stale,
	}, nil
}
