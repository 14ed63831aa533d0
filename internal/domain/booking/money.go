package booking

import (
	"errors"
	"math"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an INR amount in paise (minor units). Rupee values convert with
// round-to-nearest so fractional rates never drift through float truncation.
type Money struct {
	paise int64
}

func NewMoney(paise int64) Money {
	return Money{paise: paise}
}

func NewMoneyFromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{paise: paise}, nil
}

func MoneyFromRupees(rupees float64) Money {
	return Money{paise: int64(math.Round(rupees * 100))}
}

func (m Money) Paise() int64 {
	return m.paise
}

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) IsZero() bool {
	return m.paise == 0
}
