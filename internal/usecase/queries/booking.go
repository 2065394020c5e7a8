package queries

import (
	"context"
	"sort"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrNotBookingOwner = errs.New("booking belongs to another customer")
	ErrQueryFailed     = errs.New("query failed")
)

type BookingQueries interface {
	GetBooking(ctx context.Context, id, customerID uuid.UUID) (*BookingView, error)
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		clock: clock,
	}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id, customerID uuid.UUID) (*BookingView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	if rec.CustomerID != customerID {
		return nil, ErrNotBookingOwner
	}

	return recordToView(rec, q.clock.Now()), nil
}

// ListCustomerBookings returns confirmed bookings first (soonest first),
// then finished and cancelled ones (most recent first), the way a booking
// history screen presents them.
func (q *bookingQueriesImpl) ListCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*BookingView, error) {
	recs, err := q.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	now := q.clock.Now()
	var upcoming, past []*BookingView
	for _, rec := range recs {
		view := recordToView(rec, now)
		if view.Status == booking.DisplayConfirmed.String() {
			upcoming = append(upcoming, view)
		} else {
			past = append(past, view)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].StartAt.Before(upcoming[j].StartAt) })
	sort.Slice(past, func(i, j int) bool { return past[i].StartAt.After(past[j].StartAt) })

	return append(upcoming, past...), nil
}

func recordToView(rec *BookingRecord, now time.Time) *BookingView {
	entity := booking.ReconstructBooking(
		rec.ID, rec.ProviderID, rec.ServiceID, rec.CustomerID,
		rec.StartAt, rec.Status, rec.CreatedAt, rec.CancelledAt,
	)
	return &BookingView{
		ID:           rec.ID,
		ProviderID:   rec.ProviderID,
		ProviderName: rec.ProviderName,
		ServiceID:    rec.ServiceID,
		ServiceName:  rec.ServiceName,
		PriceCents:   rec.PriceCents,
		StartAt:      rec.StartAt,
		Status:       entity.DisplayStatusAt(now).String(),
		CreatedAt:    rec.CreatedAt,
		CancelledAt:  rec.CancelledAt,
	}
}
