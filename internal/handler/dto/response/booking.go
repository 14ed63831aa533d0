package response

import (
	"time"

	"eventure/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	ScooterID        uuid.UUID `json:"scooter_id"`
	ScooterName      string    `json:"scooter_name"`
	PickupDate       string    `json:"pickup_date"`
	PickupTime       string    `json:"pickup_time"`
	DropoffDate      string    `json:"dropoff_date"`
	DropoffTime      string    `json:"dropoff_time"`
	PickupLocation   string    `json:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location"`
	TotalHours       float64   `json:"total_hours"`
	TotalAmountPaise int64     `json:"total_amount_paise"`
	PaymentRef       string    `json:"payment_ref"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type QuoteResponse struct {
	TotalHours        float64 `json:"total_hours"`
	TotalAmountPaise  int64   `json:"total_amount_paise"`
	TotalAmountRupees float64 `json:"total_amount_rupees"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	resp := &BookingResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	result := make([]*BookingResponse, 0, len(views))
	for _, view := range views {
		resp, err := FromBookingView(view)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		TotalHours:        view.TotalHours,
		TotalAmountPaise:  view.TotalAmountPaise,
		TotalAmountRupees: view.TotalAmountRupees,
	}
}
