package response

import "eventure/internal/usecase/commands"

type CheckoutResponse struct {
	IntentID     string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	AmountPaise  int64   `json:"amount_paise"`
	TotalHours   float64 `json:"total_hours"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		IntentID:     result.IntentID,
		ClientSecret: result.ClientSecret,
		AmountPaise:  result.AmountPaise,
		TotalHours:   result.TotalHours,
	}
}
