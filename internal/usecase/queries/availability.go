package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProviderNotFound = errs.New("provider not found")
	ErrServiceNotFound  = errs.New("service not found")
)

type AvailabilityQueries interface {
	ListDaySlots(ctx context.Context, providerID, serviceID uuid.UUID, day time.Time) ([]*SlotView, error)
}

type availabilityQueriesImpl struct {
	catalog  CatalogReadStore
	bookings BookingReadStore
}

func NewAvailabilityQueries(catalog CatalogReadStore, bookings BookingReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog:  catalog,
		bookings: bookings,
	}
}

// ListDaySlots recomputes availability from current store state on every
// call. There is deliberately no caching here: a cached "free" answer could
// outlive the commit that takes the slot. Staleness between this read and
// the client's commit is resolved by the commit re-validating, not by
// serializing reads.
func (q *availabilityQueriesImpl) ListDaySlots(ctx context.Context, providerID, serviceID uuid.UUID, day time.Time) ([]*SlotView, error) {
	provider, err := q.catalog.FindProviderByID(ctx, providerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	service, err := q.catalog.FindServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	if service.ProviderID() != provider.ID() {
		return nil, ErrServiceNotFound
	}

	candidates := schedule.Generate(day, service.Duration(), provider.Hours())
	if len(candidates) == 0 {
		return []*SlotView{}, nil
	}

	taken, err := q.bookings.ListActiveStartTimes(ctx, providerID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	free := schedule.FilterAvailable(candidates, taken)
	views := make([]*SlotView, len(free))
	for i, s := range free {
		views[i] = &SlotView{StartAt: s.Start(), EndAt: s.End()}
	}
	return views, nil
}
