//go:build unit

package builder

import (
	"time"

	dombooking "eventure/internal/domain/booking"
	reqdto "eventure/internal/handler/dto/request"
	"eventure/internal/usecase/commands"
	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	UserID          uuid.UUID
	ScooterID       uuid.UUID
	ScooterName     string
	PickupDate      string
	PickupTime      string
	DropoffDate     string
	DropoffTime     string
	PickupLocation  string
	DropoffLocation string
	PaymentRef      string
	HourlyRatePaise int64
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		UserID:          uuid.New(),
		ScooterID:       uuid.New(),
		ScooterName:     "Ather 450X",
		PickupDate:      "2026-09-01",
		PickupTime:      "10:00",
		DropoffDate:     "2026-09-01",
		DropoffTime:     "12:00",
		PickupLocation:  "Indiranagar",
		DropoffLocation: "Koramangala",
		PaymentRef:      "pi_test_12345",
		HourlyRatePaise: 12000,
		CreatedAt:       time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDraft() dombooking.Draft {
	return dombooking.NewDraft(
		b.PickupDate, b.PickupTime,
		b.DropoffDate, b.DropoffTime,
		b.PickupLocation, b.DropoffLocation,
	)
}

func (b *BookingBuilder) BuildQuote() (dombooking.Quote, error) {
	return dombooking.ComputeQuote(b.BuildDraft().Period, dombooking.NewMoney(b.HourlyRatePaise))
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	quote, err := b.BuildQuote()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.UserID, b.ScooterID, b.BuildDraft(), quote, b.PaymentRef)
}

func (b *BookingBuilder) BuildConfirmParams() commands.ConfirmBookingParams {
	return commands.ConfirmBookingParams{
		UserID:          b.UserID,
		ScooterID:       b.ScooterID,
		PickupDate:      b.PickupDate,
		PickupTime:      b.PickupTime,
		DropoffDate:     b.DropoffDate,
		DropoffTime:     b.DropoffTime,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		PaymentRef:      b.PaymentRef,
	}
}

func (b *BookingBuilder) BuildCheckoutParams() commands.CheckoutParams {
	return commands.CheckoutParams{
		UserID:          b.UserID,
		ScooterID:       b.ScooterID,
		PickupDate:      b.PickupDate,
		PickupTime:      b.PickupTime,
		DropoffDate:     b.DropoffDate,
		DropoffTime:     b.DropoffTime,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
	}
}

func (b *BookingBuilder) BuildConfirmRequestDTO() reqdto.ConfirmBookingRequest {
	return reqdto.ConfirmBookingRequest{
		ScooterID:       b.ScooterID,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		PaymentRef:      b.PaymentRef,
		RentalPeriodRequest: reqdto.RentalPeriodRequest{
			PickupDate:  b.PickupDate,
			PickupTime:  b.PickupTime,
			DropoffDate: b.DropoffDate,
			DropoffTime: b.DropoffTime,
		},
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	quote, _ := b.BuildQuote()
	return &queries.BookingView{
		ID:               uuid.New(),
		Reference:        "EVB-TEST000001",
		UserID:           b.UserID,
		ScooterID:        b.ScooterID,
		ScooterName:      b.ScooterName,
		PickupDate:       b.PickupDate,
		PickupTime:       b.PickupTime,
		DropoffDate:      b.DropoffDate,
		DropoffTime:      b.DropoffTime,
		PickupLocation:   b.PickupLocation,
		DropoffLocation:  b.DropoffLocation,
		TotalHours:       quote.Hours(),
		TotalAmountPaise: quote.Amount().Paise(),
		PaymentRef:       b.PaymentRef,
		Status:           string(dombooking.StatusConfirmed),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithUserID(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithScooterID(scooterID uuid.UUID) *BookingBuilder {
	b.ScooterID = scooterID
	return b
}

func (b *BookingBuilder) WithPeriod(pickupDate, pickupTime, dropoffDate, dropoffTime string) *BookingBuilder {
	b.PickupDate = pickupDate
	b.PickupTime = pickupTime
	b.DropoffDate = dropoffDate
	b.DropoffTime = dropoffTime
	return b
}

func (b *BookingBuilder) WithPaymentRef(ref string) *BookingBuilder {
	b.PaymentRef = ref
	return b
}

func (b *BookingBuilder) WithHourlyRatePaise(rate int64) *BookingBuilder {
	b.HourlyRatePaise = rate
	return b
}
