//go:build unit

package builder

import (
	"time"

	domscooter "eventure/internal/domain/scooter"
	reqdto "eventure/internal/handler/dto/request"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScooterBuilder struct {
	ID              uuid.UUID
	Name            string
	Model           string
	ImageURL        string
	HourlyRatePaise int64
	MaxSpeed        string
	Location        string
	Mileage         string
	Support         string
	Owner           string
	Available       int32
	Rating          float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewScooterBuilder() *ScooterBuilder {
	now := time.Now()
	return &ScooterBuilder{
		ID:              uuid.New(),
		Name:            "Ather 450X",
		Model:           "Gen 3",
		ImageURL:        "https://example.com/ather-450x.jpg",
		HourlyRatePaise: 12000, // ₹120/hour
		MaxSpeed:        "90 km/h",
		Location:        "Bengaluru",
		Mileage:         "105 km",
		Support:         "24x7 roadside",
		Owner:           "EVenture Fleet",
		Available:       5,
		Rating:          4.5,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ScooterBuilder) With(mutate func(*ScooterBuilder)) *ScooterBuilder {
	mutate(b)
	return b
}

func (b *ScooterBuilder) BuildAttributes() domscooter.Attributes {
	return domscooter.Attributes{
		Name:            b.Name,
		Model:           b.Model,
		ImageURL:        b.ImageURL,
		HourlyRatePaise: b.HourlyRatePaise,
		MaxSpeed:        b.MaxSpeed,
		Location:        b.Location,
		Mileage:         b.Mileage,
		Support:         b.Support,
		Owner:           b.Owner,
		Available:       b.Available,
		Rating:          b.Rating,
	}
}

func (b *ScooterBuilder) BuildDomain() (*domscooter.Scooter, error) {
	return domscooter.New(b.BuildAttributes())
}

func (b *ScooterBuilder) BuildView() *queries.ScooterView {
	return &queries.ScooterView{
		ID:              b.ID,
		Name:            b.Name,
		Model:           b.Model,
		ImageURL:        b.ImageURL,
		HourlyRatePaise: b.HourlyRatePaise,
		MaxSpeed:        b.MaxSpeed,
		Location:        b.Location,
		Mileage:         b.Mileage,
		Support:         b.Support,
		Owner:           b.Owner,
		Available:       b.Available,
		Rating:          b.Rating,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ScooterBuilder) BuildSnapshot() *commands.ScooterSnapshot {
	return &commands.ScooterSnapshot{
		ID:              b.ID,
		Name:            b.Name,
		HourlyRatePaise: b.HourlyRatePaise,
		Available:       b.Available,
	}
}

func (b *ScooterBuilder) BuildCreateRequestDTO() reqdto.CreateScooterRequest {
	return reqdto.CreateScooterRequest{
		ScooterAttributesRequest: reqdto.ScooterAttributesRequest{
			Name:            b.Name,
			Model:           b.Model,
			ImageURL:        b.ImageURL,
			HourlyRatePaise: b.HourlyRatePaise,
			MaxSpeed:        b.MaxSpeed,
			Location:        b.Location,
			Mileage:         b.Mileage,
			Support:         b.Support,
			Owner:           b.Owner,
			Available:       b.Available,
			Rating:          b.Rating,
		},
	}
}

// Fluent builder methods
func (b *ScooterBuilder) WithID(id uuid.UUID) *ScooterBuilder {
	b.ID = id
	return b
}

func (b *ScooterBuilder) WithName(name string) *ScooterBuilder {
	b.Name = name
	return b
}

func (b *ScooterBuilder) WithHourlyRatePaise(rate int64) *ScooterBuilder {
	b.HourlyRatePaise = rate
	return b
}

func (b *ScooterBuilder) WithAvailable(available int32) *ScooterBuilder {
	b.Available = available
	return b
}

func (b *ScooterBuilder) WithRating(rating float64) *ScooterBuilder {
	b.Rating = rating
	return b
}

func (b *ScooterBuilder) AsSoldOut() *ScooterBuilder {
	b.Available = 0
	return b
}
