package request

import (
	"eventure/internal/domain/scooter"
)

type ScooterAttributesRequest struct {
	Name            string  `json:"name" binding:"required"`
	Model           string  `json:"model" binding:"required"`
	ImageURL        string  `json:"image_url"`
	HourlyRatePaise int64   `json:"hourly_rate_paise" binding:"required,min=0"`
	MaxSpeed        string  `json:"max_speed"`
	Location        string  `json:"location" binding:"required"`
	Mileage         string  `json:"mileage"`
	Support         string  `json:"support"`
	Owner           string  `json:"owner" binding:"required"`
	Available       int32   `json:"available" binding:"min=0"`
	Rating          float64 `json:"rating" binding:"min=0,max=5"`
}

func (r *ScooterAttributesRequest) ToDomain() scooter.Attributes {
	return scooter.Attributes{
		Name:            r.Name,
		Model:           r.Model,
		ImageURL:        r.ImageURL,
		HourlyRatePaise: r.HourlyRatePaise,
		MaxSpeed:        r.MaxSpeed,
		Location:        r.Location,
		Mileage:         r.Mileage,
		Support:         r.Support,
		Owner:           r.Owner,
		Available:       r.Available,
		Rating:          r.Rating,
	}
}

type CreateScooterRequest struct {
	ScooterAttributesRequest
}

type UpdateScooterRequest struct {
	ScooterAttributesRequest
}
