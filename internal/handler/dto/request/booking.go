package request

import (
	"eventure/internal/usecase/commands"

	"github.com/google/uuid"
)

// RentalPeriodRequest carries the pickup and dropoff schedule the way the
// booking form submits it: dates as "2006-01-02", times as "15:04".
type RentalPeriodRequest struct {
	PickupDate  string `json:"pickup_date" binding:"required"`
	PickupTime  string `json:"pickup_time" binding:"required"`
	DropoffDate string `json:"dropoff_date" binding:"required"`
	DropoffTime string `json:"dropoff_time" binding:"required"`
}

type QuoteRequest struct {
	ScooterID       uuid.UUID `json:"scooter_id" binding:"required"`
	PickupLocation  string    `json:"pickup_location" binding:"required"`
	DropoffLocation string    `json:"dropoff_location" binding:"required"`
	RentalPeriodRequest
}

type ConfirmBookingRequest struct {
	ScooterID       uuid.UUID `json:"scooter_id" binding:"required"`
	PickupLocation  string    `json:"pickup_location" binding:"required"`
	DropoffLocation string    `json:"dropoff_location" binding:"required"`
	PaymentRef      string    `json:"payment_ref" binding:"required"`
	RentalPeriodRequest
}

func (r *ConfirmBookingRequest) ToParams(userID uuid.UUID) commands.ConfirmBookingParams {
	return commands.ConfirmBookingParams{
		UserID:          userID,
		ScooterID:       r.ScooterID,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		DropoffDate:     r.DropoffDate,
		DropoffTime:     r.DropoffTime,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		PaymentRef:      r.PaymentRef,
	}
}
