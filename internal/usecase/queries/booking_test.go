//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	records map[uuid.UUID]*queries.BookingRecord
	starts  []time.Time
}

func newFakeBookingReadStore() *fakeBookingReadStore {
	return &fakeBookingReadStore{records: make(map[uuid.UUID]*queries.BookingRecord)}
}

func (s *fakeBookingReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingRecord, error) {
	rec, ok := s.records[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (s *fakeBookingReadStore) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*queries.BookingRecord, error) {
	var recs []*queries.BookingRecord
	for _, rec := range s.records {
		if rec.CustomerID == customerID {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (s *fakeBookingReadStore) ListActiveStartTimes(context.Context, uuid.UUID, time.Time) ([]time.Time, error) {
	return s.starts, nil
}

var queryNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func record(customerID uuid.UUID, startAt time.Time, status booking.Status) *queries.BookingRecord {
	rec := &queries.BookingRecord{
		ID:           uuid.New(),
		ProviderID:   uuid.New(),
		ProviderName: "Vintage Cuts",
		ServiceID:    uuid.New(),
		ServiceName:  "Haircut",
		PriceCents:   4500,
		CustomerID:   customerID,
		StartAt:      startAt,
		Status:       status,
		CreatedAt:    queryNow.Add(-24 * time.Hour),
	}
	if status == booking.StatusCancelled {
		cancelledAt := queryNow.Add(-time.Hour)
		rec.CancelledAt = &cancelledAt
	}
	return rec
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("returns the derived display status, not the stored one", func(t *testing.T) {
		store := newFakeBookingReadStore()
		rec := record(customerID, queryNow.Add(-time.Hour), booking.StatusActive)
		store.records[rec.ID] = rec
		q := queries.NewBookingQueries(store, clock.NewMockClock(queryNow))

		view, err := q.GetBooking(ctx, rec.ID, customerID)

		require.NoError(t, err)
		assert.Equal(t, "finished", view.Status)
		assert.Equal(t, "Vintage Cuts", view.ProviderName)
		assert.Equal(t, int64(4500), view.PriceCents)
	})

	t.Run("unknown booking", func(t *testing.T) {
		q := queries.NewBookingQueries(newFakeBookingReadStore(), clock.NewMockClock(queryNow))

		_, err := q.GetBooking(ctx, uuid.New(), customerID)

		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("another customer's booking", func(t *testing.T) {
		store := newFakeBookingReadStore()
		rec := record(customerID, queryNow.Add(time.Hour), booking.StatusActive)
		store.records[rec.ID] = rec
		q := queries.NewBookingQueries(store, clock.NewMockClock(queryNow))

		_, err := q.GetBooking(ctx, rec.ID, uuid.New())

		assert.ErrorIs(t, err, queries.ErrNotBookingOwner)
	})
}

func TestListCustomerBookings(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("upcoming soonest-first, then past most-recent-first", func(t *testing.T) {
		store := newFakeBookingReadStore()
		later := record(customerID, queryNow.Add(48*time.Hour), booking.StatusActive)
		sooner := record(customerID, queryNow.Add(2*time.Hour), booking.StatusActive)
		finished := record(customerID, queryNow.Add(-2*time.Hour), booking.StatusActive)
		olderFinished := record(customerID, queryNow.Add(-48*time.Hour), booking.StatusActive)
		cancelled := record(customerID, queryNow.Add(-24*time.Hour), booking.StatusCancelled)
		for _, rec := range []*queries.BookingRecord{later, sooner, finished, olderFinished, cancelled} {
			store.records[rec.ID] = rec
		}
		q := queries.NewBookingQueries(store, clock.NewMockClock(queryNow))

		views, err := q.ListCustomerBookings(ctx, customerID)

		require.NoError(t, err)
		require.Len(t, views, 5)
		assert.Equal(t, sooner.ID, views[0].ID)
		assert.Equal(t, later.ID, views[1].ID)
		assert.Equal(t, finished.ID, views[2].ID)
		assert.Equal(t, cancelled.ID, views[3].ID)
		assert.Equal(t, olderFinished.ID, views[4].ID)

		assert.Equal(t, "confirmed", views[0].Status)
		assert.Equal(t, "confirmed", views[1].Status)
		assert.Equal(t, "finished", views[2].Status)
		assert.Equal(t, "cancelled", views[3].Status)
	})

	t.Run("only the caller's bookings are listed", func(t *testing.T) {
		store := newFakeBookingReadStore()
		mine := record(customerID, queryNow.Add(2*time.Hour), booking.StatusActive)
		other := record(uuid.New(), queryNow.Add(3*time.Hour), booking.StatusActive)
		store.records[mine.ID] = mine
		store.records[other.ID] = other
		q := queries.NewBookingQueries(store, clock.NewMockClock(queryNow))

		views, err := q.ListCustomerBookings(ctx, customerID)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, mine.ID, views[0].ID)
	})

	t.Run("no bookings yields an empty list", func(t *testing.T) {
		q := queries.NewBookingQueries(newFakeBookingReadStore(), clock.NewMockClock(queryNow))

		views, err := q.ListCustomerBookings(ctx, uuid.New())

		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

type fakeCatalogReadStore struct {
	providers map[uuid.UUID]*catalog.Provider
	services  map[uuid.UUID]*catalog.Service
}

func newFakeCatalogReadStore() *fakeCatalogReadStore {
	return &fakeCatalogReadStore{
		providers: make(map[uuid.UUID]*catalog.Provider),
		services:  make(map[uuid.UUID]*catalog.Service),
	}
}

func (s *fakeCatalogReadStore) ListProviders(_ context.Context, search string) ([]*catalog.Provider, error) {
	var out []*catalog.Provider
	for _, p := range s.providers {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeCatalogReadStore) FindProviderByID(_ context.Context, id uuid.UUID) (*catalog.Provider, error) {
	p, ok := s.providers[id]
	if !ok {
		return nil, infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (s *fakeCatalogReadStore) ListServicesByProvider(_ context.Context, providerID uuid.UUID) ([]*catalog.Service, error) {
	var out []*catalog.Service
	for _, svc := range s.services {
		if svc.ProviderID() == providerID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *fakeCatalogReadStore) FindServiceByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, ok := s.services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return svc, nil
}

func seedCatalog(t *testing.T, store *fakeCatalogReadStore) (providerID, serviceID uuid.UUID) {
	t.Helper()

	hours, err := catalog.NewOperatingHours(9*60, 18*60, 30*time.Minute)
	require.NoError(t, err)

	providerID = uuid.New()
	provider, err := catalog.NewProvider(providerID, "Vintage Cuts", "123 Main St", "", hours)
	require.NoError(t, err)
	store.providers[providerID] = provider

	serviceID = uuid.New()
	service, err := catalog.NewService(serviceID, providerID, "Haircut", "", "", 4500, 30*time.Minute)
	require.NoError(t, err)
	store.services[serviceID] = service
	return providerID, serviceID
}

func TestListDaySlots(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	t.Run("booked starts are excluded", func(t *testing.T) {
		catalogStore := newFakeCatalogReadStore()
		providerID, serviceID := seedCatalog(t, catalogStore)
		bookingStore := newFakeBookingReadStore()
		bookingStore.starts = []time.Time{
			time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 16, 15, 30, 0, 0, time.UTC),
		}
		q := queries.NewAvailabilityQueries(catalogStore, bookingStore)

		slots, err := q.ListDaySlots(ctx, providerID, serviceID, day)

		require.NoError(t, err)
		require.Len(t, slots, 16)
		for _, slot := range slots {
			for _, taken := range bookingStore.starts {
				assert.False(t, slot.StartAt.Equal(taken))
			}
		}
	})

	t.Run("a fully free day exposes the whole grid", func(t *testing.T) {
		catalogStore := newFakeCatalogReadStore()
		providerID, serviceID := seedCatalog(t, catalogStore)
		q := queries.NewAvailabilityQueries(catalogStore, newFakeBookingReadStore())

		slots, err := q.ListDaySlots(ctx, providerID, serviceID, day)

		require.NoError(t, err)
		require.Len(t, slots, 18)
		assert.Equal(t, time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), slots[0].StartAt)
		assert.Equal(t, time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC), slots[0].EndAt)
		assert.Equal(t, time.Date(2025, 6, 16, 17, 30, 0, 0, time.UTC), slots[len(slots)-1].StartAt)
	})

	t.Run("unknown provider", func(t *testing.T) {
		catalogStore := newFakeCatalogReadStore()
		_, serviceID := seedCatalog(t, catalogStore)
		q := queries.NewAvailabilityQueries(catalogStore, newFakeBookingReadStore())

		_, err := q.ListDaySlots(ctx, uuid.New(), serviceID, day)

		assert.ErrorIs(t, err, queries.ErrProviderNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		catalogStore := newFakeCatalogReadStore()
		providerID, _ := seedCatalog(t, catalogStore)
		q := queries.NewAvailabilityQueries(catalogStore, newFakeBookingReadStore())

		_, err := q.ListDaySlots(ctx, providerID, uuid.New(), day)

		assert.ErrorIs(t, err, queries.ErrServiceNotFound)
	})

	t.Run("service of another provider is treated as unknown", func(t *testing.T) {
		catalogStore := newFakeCatalogReadStore()
		providerID, _ := seedCatalog(t, catalogStore)
		_, foreignServiceID := seedCatalog(t, catalogStore)
		q := queries.NewAvailabilityQueries(catalogStore, newFakeBookingReadStore())

		_, err := q.ListDaySlots(ctx, providerID, foreignServiceID, day)

		assert.ErrorIs(t, err, queries.ErrServiceNotFound)
	})
}

func TestGetProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("detail carries the provider's services", func(t *testing.T) {
		store := newFakeCatalogReadStore()
		providerID, serviceID := seedCatalog(t, store)
		q := queries.NewCatalogQueries(store)

		detail, err := q.GetProvider(ctx, providerID)

		require.NoError(t, err)
		assert.Equal(t, "Vintage Cuts", detail.Name)
		assert.Equal(t, 9*60, detail.OpensAtMin)
		assert.Equal(t, 30, detail.GranularityMin)
		require.Len(t, detail.Services, 1)
		assert.Equal(t, serviceID, detail.Services[0].ID)
		assert.Equal(t, 30, detail.Services[0].DurationMin)
	})

	t.Run("unknown provider", func(t *testing.T) {
		q := queries.NewCatalogQueries(newFakeCatalogReadStore())

		_, err := q.GetProvider(ctx, uuid.New())

		assert.ErrorIs(t, err, queries.ErrProviderNotFound)
	})
}
