package booking

import "math"

// Quote is the derived duration/price pair for a draft. It is never persisted
// as its own record; the accepted values are copied onto the booking at
// confirmation time.
type Quote struct {
	halfHours int64
	amount    Money
}

// ComputeQuote prices a rental period at the given hourly rate. Pure: the same
// period and rate always produce the same quote.
func ComputeQuote(period RentalPeriod, hourlyRate Money) (Quote, error) {
	units, err := period.BillableHalfHours()
	if err != nil {
		return Quote{}, err
	}

	// amount = hours * rate = units * rate / 2, rounded to the nearest paisa.
	paise := int64(math.Round(float64(units) * float64(hourlyRate.Paise()) / 2))
	return Quote{halfHours: units, amount: NewMoney(paise)}, nil
}

func (q Quote) Hours() float64 {
	return float64(q.halfHours) / 2
}

func (q Quote) Amount() Money {
	return q.amount
}

// IsPayable reports whether the quote can be taken to the payment gateway.
func (q Quote) IsPayable() bool {
	return q.halfHours > 0 && q.amount.Paise() > 0
}
