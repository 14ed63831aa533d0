package request

import (
	"eventure/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	ScooterID       uuid.UUID `json:"scooter_id" binding:"required"`
	PickupLocation  string    `json:"pickup_location" binding:"required"`
	DropoffLocation string    `json:"dropoff_location" binding:"required"`
	RentalPeriodRequest
}

func (r *CheckoutRequest) ToParams(userID uuid.UUID) commands.CheckoutParams {
	return commands.CheckoutParams{
		UserID:          userID,
		ScooterID:       r.ScooterID,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		DropoffDate:     r.DropoffDate,
		DropoffTime:     r.DropoffTime,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
	}
}

type DismissCheckoutRequest struct {
	ScooterID uuid.UUID `json:"scooter_id" binding:"required"`
}
