//go:build unit

package booking_test

import (
	"testing"

	"eventure/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(pickupTime, dropoffTime string) booking.RentalPeriod {
	return booking.NewRentalPeriod("2026-09-01", pickupTime, "2026-09-01", dropoffTime)
}

func TestComputeQuote(t *testing.T) {
	cases := []struct {
		name          string
		period        booking.RentalPeriod
		hourlyPaise   int64
		wantHours     float64
		wantPaise     int64
		errIs         error
	}{
		{
			name:        "two hours at 120 rupees per hour",
			period:      period("10:00", "12:00"),
			hourlyPaise: 12000,
			wantHours:   2, wantPaise: 24000,
		},
		{
			name:        "half hour charges half the hourly rate",
			period:      period("10:00", "10:30"),
			hourlyPaise: 12000,
			wantHours:   0.5, wantPaise: 6000,
		},
		{
			name:        "odd rate rounds to nearest paisa",
			period:      period("10:00", "10:30"),
			hourlyPaise: 3333,
			wantHours:   0.5, wantPaise: 1667, // 1666.5 rounds up
		},
		{
			name:        "partial half hour billed in full",
			period:      period("10:00", "12:01"),
			hourlyPaise: 12000,
			wantHours:   2.5, wantPaise: 30000,
		},
		{
			name:        "invalid range propagates",
			period:      period("12:00", "10:00"),
			hourlyPaise: 12000,
			errIs:       booking.ErrInvalidRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := booking.ComputeQuote(tc.period, booking.NewMoney(tc.hourlyPaise))
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHours, quote.Hours())
			assert.Equal(t, tc.wantPaise, quote.Amount().Paise())
		})
	}
}

func TestComputeQuoteIsDeterministic(t *testing.T) {
	p := period("09:15", "18:45")
	rate := booking.NewMoney(9900)

	first, err := booking.ComputeQuote(p, rate)
	require.NoError(t, err)
	second, err := booking.ComputeQuote(p, rate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuoteIsPayable(t *testing.T) {
	payable, err := booking.ComputeQuote(period("10:00", "12:00"), booking.NewMoney(12000))
	require.NoError(t, err)
	assert.True(t, payable.IsPayable())

	free, err := booking.ComputeQuote(period("10:00", "12:00"), booking.NewMoney(0))
	require.NoError(t, err)
	assert.False(t, free.IsPayable())
}

func TestMoneyConversions(t *testing.T) {
	assert.Equal(t, int64(9999), booking.MoneyFromRupees(99.99).Paise())
	assert.Equal(t, int64(10000), booking.MoneyFromRupees(99.996).Paise())
	assert.InEpsilon(t, 120.0, booking.NewMoney(12000).Rupees(), 1e-9)
	assert.True(t, booking.NewMoney(0).IsZero())

	_, err := booking.NewMoneyFromPaise(-1)
	assert.ErrorIs(t, err, booking.ErrNegativeAmount)
}
