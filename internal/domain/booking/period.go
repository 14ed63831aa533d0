package booking

import (
	"errors"
	"time"
)

var (
	ErrIncompletePeriod = errors.New("incomplete rental period")
	ErrInvalidRange     = errors.New("drop-off must be after pickup")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// halfHour is the billing granularity: any started half hour is charged in full.
const halfHour = 30 * time.Minute

// RentalPeriod holds the four wall-clock components of a booking draft. The
// components are local wall-clock values with no timezone; they are combined in
// the process-local zone only to measure elapsed duration.
type RentalPeriod struct {
	pickupDate  string
	pickupTime  string
	dropoffDate string
	dropoffTime string
}

func NewRentalPeriod(pickupDate, pickupTime, dropoffDate, dropoffTime string) RentalPeriod {
	return RentalPeriod{
		pickupDate:  pickupDate,
		pickupTime:  pickupTime,
		dropoffDate: dropoffDate,
		dropoffTime: dropoffTime,
	}
}

func (p RentalPeriod) PickupDate() string  { return p.pickupDate }
func (p RentalPeriod) PickupTime() string  { return p.pickupTime }
func (p RentalPeriod) DropoffDate() string { return p.dropoffDate }
func (p RentalPeriod) DropoffTime() string { return p.dropoffTime }

func (p RentalPeriod) IsComplete() bool {
	return p.pickupDate != "" && p.pickupTime != "" && p.dropoffDate != "" && p.dropoffTime != ""
}

// PickupAt combines the pickup date and time into a single local instant.
func (p RentalPeriod) PickupAt() (time.Time, error) {
	return combine(p.pickupDate, p.pickupTime)
}

func (p RentalPeriod) DropoffAt() (time.Time, error) {
	return combine(p.dropoffDate, p.dropoffTime)
}

// BillableHalfHours returns the rental duration in half-hour units, ceiled: any
// positive duration up to 30 minutes counts as one unit, and exact half-hour
// boundaries map to themselves. Returns ErrIncompletePeriod when any component
// is missing and ErrInvalidRange when drop-off is not after pickup.
func (p RentalPeriod) BillableHalfHours() (int64, error) {
	if !p.IsComplete() {
		return 0, ErrIncompletePeriod
	}

	pickup, err := p.PickupAt()
	if err != nil {
		return 0, ErrIncompletePeriod
	}
	dropoff, err := p.DropoffAt()
	if err != nil {
		return 0, ErrIncompletePeriod
	}

	d := dropoff.Sub(pickup)
	if d <= 0 {
		return 0, ErrInvalidRange
	}

	// Integer ceiling avoids float rounding at exact half-hour boundaries.
	units := int64(d / halfHour)
	if d%halfHour != 0 {
		units++
	}
	return units, nil
}

// BillableHours is BillableHalfHours expressed in hours (multiples of 0.5).
func (p RentalPeriod) BillableHours() (float64, error) {
	units, err := p.BillableHalfHours()
	if err != nil {
		return 0, err
	}
	return float64(units) / 2, nil
}

func combine(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, time.Local)
}
