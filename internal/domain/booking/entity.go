package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastSlot         = errors.New("slot start time is not in the future")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCancelTooLate    = errors.New("booking start time has already passed")
)

// Booking is the one entity the scheduling core mutates. It is created only
// through NewBooking at commit time and its only legal mutation afterwards
// is the active -> cancelled flip. Rows are never deleted.
type Booking struct {
	id          uuid.UUID
	providerID  uuid.UUID
	serviceID   uuid.UUID
	customerID  uuid.UUID
	startAt     time.Time
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

// NewBooking builds a booking at commit time. The future check happens here
// once and never again: a booking does not retroactively become invalid as
// the clock advances past its start.
func NewBooking(providerID, serviceID, customerID uuid.UUID, startAt, now time.Time) (*Booking, error) {
	if !startAt.After(now) {
		return nil, ErrPastSlot
	}
	return &Booking{
		id:         uuid.New(),
		providerID: providerID,
		serviceID:  serviceID,
		customerID: customerID,
		startAt:    startAt,
		status:     StatusActive,
		createdAt:  now,
	}, nil
}

// ReconstructBooking rebuilds an entity from stored state without
// re-running commit-time validation.
func ReconstructBooking(
	id, providerID, serviceID, customerID uuid.UUID,
	startAt time.Time,
	status Status,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		providerID:  providerID,
		serviceID:   serviceID,
		customerID:  customerID,
		startAt:     startAt,
		status:      status,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}
}

// DisplayStatusAt derives the reader-facing state: cancelled wins, then a
// started appointment counts as finished, otherwise it is confirmed.
func (b *Booking) DisplayStatusAt(now time.Time) DisplayStatus {
	switch {
	case b.status == StatusCancelled:
		return DisplayCancelled
	case !b.startAt.After(now):
		return DisplayFinished
	default:
		return DisplayConfirmed
	}
}

// ValidateCancelAt checks the cancel transition's legality without applying
// it. A booking whose start has passed is history and stays untouched.
func (b *Booking) ValidateCancelAt(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !b.startAt.After(now) {
		return ErrCancelTooLate
	}
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusActive
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) ProviderID() uuid.UUID   { return b.providerID }
func (b *Booking) ServiceID() uuid.UUID    { return b.serviceID }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) StartAt() time.Time      { return b.startAt }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
