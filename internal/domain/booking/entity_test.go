//go:build unit

package booking_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func TestNewBooking(t *testing.T) {
	providerID := uuid.New()
	serviceID := uuid.New()
	customerID := uuid.New()

	t.Run("future start succeeds", func(t *testing.T) {
		b, err := booking.NewBooking(providerID, serviceID, customerID, now.Add(time.Hour), now)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, providerID, b.ProviderID())
		assert.Equal(t, serviceID, b.ServiceID())
		assert.Equal(t, customerID, b.CustomerID())
		assert.Equal(t, booking.StatusActive, b.Status())
		assert.Equal(t, now, b.CreatedAt())
		assert.Nil(t, b.CancelledAt())
		assert.True(t, b.IsActive())
	})

	t.Run("start equal to now is rejected", func(t *testing.T) {
		_, err := booking.NewBooking(providerID, serviceID, customerID, now, now)

		assert.ErrorIs(t, err, booking.ErrPastSlot)
	})

	t.Run("past start is rejected", func(t *testing.T) {
		_, err := booking.NewBooking(providerID, serviceID, customerID, now.Add(-time.Minute), now)

		assert.ErrorIs(t, err, booking.ErrPastSlot)
	})
}

func TestDisplayStatusAt(t *testing.T) {
	startAt := now.Add(2 * time.Hour)
	active := booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		startAt, booking.StatusActive, now, nil,
	)

	t.Run("active booking before start is confirmed", func(t *testing.T) {
		assert.Equal(t, booking.DisplayConfirmed, active.DisplayStatusAt(now))
	})

	t.Run("active booking at start is finished", func(t *testing.T) {
		assert.Equal(t, booking.DisplayFinished, active.DisplayStatusAt(startAt))
	})

	t.Run("active booking after start is finished", func(t *testing.T) {
		assert.Equal(t, booking.DisplayFinished, active.DisplayStatusAt(startAt.Add(time.Hour)))
	})

	t.Run("cancelled wins regardless of the clock", func(t *testing.T) {
		cancelledAt := now.Add(time.Minute)
		cancelled := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			startAt, booking.StatusCancelled, now, &cancelledAt,
		)

		assert.Equal(t, booking.DisplayCancelled, cancelled.DisplayStatusAt(now))
		assert.Equal(t, booking.DisplayCancelled, cancelled.DisplayStatusAt(startAt.Add(time.Hour)))
	})
}

func TestValidateCancelAt(t *testing.T) {
	startAt := now.Add(2 * time.Hour)

	t.Run("active future booking can cancel", func(t *testing.T) {
		b := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			startAt, booking.StatusActive, now, nil,
		)

		assert.NoError(t, b.ValidateCancelAt(now))
	})

	t.Run("cancelled booking cannot cancel again", func(t *testing.T) {
		cancelledAt := now.Add(time.Minute)
		b := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			startAt, booking.StatusCancelled, now, &cancelledAt,
		)

		assert.ErrorIs(t, b.ValidateCancelAt(now), booking.ErrAlreadyCancelled)
	})

	t.Run("cancel at the exact start time is too late", func(t *testing.T) {
		b := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			startAt, booking.StatusActive, now, nil,
		)

		assert.ErrorIs(t, b.ValidateCancelAt(startAt), booking.ErrCancelTooLate)
	})

	t.Run("cancel after the start is too late", func(t *testing.T) {
		b := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			startAt, booking.StatusActive, now, nil,
		)

		assert.ErrorIs(t, b.ValidateCancelAt(startAt.Add(time.Hour)), booking.ErrCancelTooLate)
	})
}
