package booking

import (
	"errors"
	"strings"
)

var ErrIncompleteFields = errors.New("all pickup and drop-off fields are required")

// Draft is the in-progress, unpersisted user input for a prospective booking.
// It is created empty when a scooter is selected and discarded after
// confirmation or cancel.
type Draft struct {
	Period          RentalPeriod
	PickupLocation  string
	DropoffLocation string
}

func NewDraft(pickupDate, pickupTime, dropoffDate, dropoffTime, pickupLocation, dropoffLocation string) Draft {
	return Draft{
		Period:          NewRentalPeriod(pickupDate, pickupTime, dropoffDate, dropoffTime),
		PickupLocation:  strings.TrimSpace(pickupLocation),
		DropoffLocation: strings.TrimSpace(dropoffLocation),
	}
}

// Validate checks the six required fields and the time range. Field
// completeness is reported before range validity so a user filling the form
// sees the missing-field error first.
func (d Draft) Validate() error {
	if !d.Period.IsComplete() || d.PickupLocation == "" || d.DropoffLocation == "" {
		return ErrIncompleteFields
	}
	if _, err := d.Period.BillableHalfHours(); err != nil {
		if errors.Is(err, ErrIncompletePeriod) {
			return ErrIncompleteFields
		}
		return err
	}
	return nil
}
