//go:build unit

package booking_test

import (
	"testing"

	"eventure/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftValidate(t *testing.T) {
	valid := func() booking.Draft {
		return booking.NewDraft("2026-09-01", "10:00", "2026-09-01", "12:00", "Indiranagar", "Koramangala")
	}

	t.Run("valid draft passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing location reports incomplete fields", func(t *testing.T) {
		d := booking.NewDraft("2026-09-01", "10:00", "2026-09-01", "12:00", "", "Koramangala")
		assert.ErrorIs(t, d.Validate(), booking.ErrIncompleteFields)
	})

	t.Run("whitespace-only location reports incomplete fields", func(t *testing.T) {
		d := booking.NewDraft("2026-09-01", "10:00", "2026-09-01", "12:00", "   ", "Koramangala")
		assert.ErrorIs(t, d.Validate(), booking.ErrIncompleteFields)
	})

	t.Run("missing period component reports incomplete fields", func(t *testing.T) {
		d := booking.NewDraft("2026-09-01", "", "2026-09-01", "12:00", "Indiranagar", "Koramangala")
		assert.ErrorIs(t, d.Validate(), booking.ErrIncompleteFields)
	})

	t.Run("completeness is reported before range validity", func(t *testing.T) {
		// Both the location and the range are wrong; the user should see the
		// missing-field error first.
		d := booking.NewDraft("2026-09-01", "12:00", "2026-09-01", "10:00", "", "Koramangala")
		assert.ErrorIs(t, d.Validate(), booking.ErrIncompleteFields)
	})

	t.Run("invalid range surfaces once fields are complete", func(t *testing.T) {
		d := booking.NewDraft("2026-09-01", "12:00", "2026-09-01", "10:00", "Indiranagar", "Koramangala")
		assert.ErrorIs(t, d.Validate(), booking.ErrInvalidRange)
	})

	t.Run("locations are trimmed", func(t *testing.T) {
		d := booking.NewDraft("2026-09-01", "10:00", "2026-09-01", "12:00", "  Indiranagar  ", " Koramangala ")
		assert.Equal(t, "Indiranagar", d.PickupLocation)
		assert.Equal(t, "Koramangala", d.DropoffLocation)
	})
}
