//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"eventure/internal/domain/booking"
	"eventure/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.ScooterID, actual.ScooterID())
		assert.Equal(t, b.PaymentRef, actual.PaymentRef())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, strings.HasPrefix(actual.Reference(), "EVB-"))
		assert.Len(t, actual.Reference(), len("EVB-")+10)
	})

	t.Run("missing payment reference", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithPaymentRef("   ").BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrMissingPaymentRef)
	})

	t.Run("invalid draft is rejected", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithPeriod("2026-09-01", "12:00", "2026-09-01", "10:00").
			BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("references are unique per booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		first, err1 := b.BuildDomain()
		second, err2 := b.BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
		assert.NotEqual(t, first.Reference(), second.Reference())
	})
}

func TestReconstructQuote(t *testing.T) {
	quote := booking.ReconstructQuote(5, 30000)
	assert.Equal(t, 2.5, quote.Hours())
	assert.Equal(t, int64(30000), quote.Amount().Paise())
}
