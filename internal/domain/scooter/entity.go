package scooter

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("scooter name is required")
	ErrEmptyModel        = errors.New("scooter model is required")
	ErrEmptyLocation     = errors.New("scooter location is required")
	ErrEmptyOwner        = errors.New("scooter owner is required")
	ErrNegativeRate      = errors.New("hourly rate cannot be negative")
	ErrNegativeAvailable = errors.New("available count cannot be negative")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Scooter is a rentable fleet unit. The free-text descriptor fields (max speed,
// mileage, support) are displayed verbatim and carry no invariants; the numeric
// fields do: rate >= 0, available >= 0, rating in [0,5].
type Scooter struct {
	id              uuid.UUID
	name            string
	model           string
	imageURL        string
	hourlyRatePaise int64
	maxSpeed        string
	location        string
	mileage         string
	support         string
	owner           string
	available       int32
	rating          float64
	createdAt       time.Time
	updatedAt       time.Time
}

type Attributes struct {
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
}

func New(attrs Attributes) (*Scooter, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	return &Scooter{
		id:              uuid.New(),
		name:            strings.TrimSpace(attrs.Name),
		model:           strings.TrimSpace(attrs.Model),
		imageURL:        strings.TrimSpace(attrs.ImageURL),
		hourlyRatePaise: attrs.HourlyRatePaise,
		maxSpeed:        attrs.MaxSpeed,
		location:        strings.TrimSpace(attrs.Location),
		mileage:         attrs.Mileage,
		support:         attrs.Support,
		owner:           strings.TrimSpace(attrs.Owner),
		available:       attrs.Available,
		rating:          attrs.Rating,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	attrs Attributes,
	createdAt, updatedAt time.Time,
) *Scooter {
	return &Scooter{
		id:              id,
		name:            attrs.Name,
		model:           attrs.Model,
		imageURL:        attrs.ImageURL,
		hourlyRatePaise: attrs.HourlyRatePaise,
		maxSpeed:        attrs.MaxSpeed,
		location:        attrs.Location,
		mileage:         attrs.Mileage,
		support:         attrs.Support,
		owner:           attrs.Owner,
		available:       attrs.Available,
		rating:          attrs.Rating,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Update replaces the mutable attributes, re-running the invariant checks.
func (s *Scooter) Update(attrs Attributes) error {
	if err := validate(attrs); err != nil {
		return err
	}

	s.name = strings.TrimSpace(attrs.Name)
	s.model = strings.TrimSpace(attrs.Model)
	s.imageURL = strings.TrimSpace(attrs.ImageURL)
	s.hourlyRatePaise = attrs.HourlyRatePaise
	s.maxSpeed = attrs.MaxSpeed
	s.location = strings.TrimSpace(attrs.Location)
	s.mileage = attrs.Mileage
	s.support = attrs.Support
	s.owner = strings.TrimSpace(attrs.Owner)
	s.available = attrs.Available
	s.rating = attrs.Rating
	return nil
}

func (s *Scooter) IsBookable() bool {
	return s.available > 0
}

func (s *Scooter) ID() uuid.UUID          { return s.id }
func (s *Scooter) Name() string           { return s.name }
func (s *Scooter) Model() string          { return s.model }
func (s *Scooter) ImageURL() string       { return s.imageURL }
func (s *Scooter) HourlyRatePaise() int64 { return s.hourlyRatePaise }
func (s *Scooter) MaxSpeed() string       { return s.maxSpeed }
func (s *Scooter) Location() string       { return s.location }
func (s *Scooter) Mileage() string        { return s.mileage }
func (s *Scooter) Support() string        { return s.support }
func (s *Scooter) Owner() string          { return s.owner }
func (s *Scooter) Available() int32       { return s.available }
func (s *Scooter) Rating() float64        { return s.rating }
func (s *Scooter) CreatedAt() time.Time   { return s.createdAt }
func (s *Scooter) UpdatedAt() time.Time   { return s.updatedAt }

func validate(attrs Attributes) error {
	if strings.TrimSpace(attrs.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(attrs.Model) == "" {
		return ErrEmptyModel
	}
	if strings.TrimSpace(attrs.Location) == "" {
		return ErrEmptyLocation
	}
	if strings.TrimSpace(attrs.Owner) == "" {
		return ErrEmptyOwner
	}
	if attrs.HourlyRatePaise < 0 {
		return ErrNegativeRate
	}
	if attrs.Available < 0 {
		return ErrNegativeAvailable
	}
	if attrs.Rating < MinRating || attrs.Rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}
