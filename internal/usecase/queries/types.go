package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"

	"github.com/google/uuid"
)

// BookingRecord is the raw read-model row: stored status, not display
// status. Derivation happens in the query layer against the injected clock.
type BookingRecord struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	ProviderName string
	ServiceID    uuid.UUID
	ServiceName  string
	PriceCents   int64
	CustomerID   uuid.UUID
	StartAt      time.Time
	Status       booking.Status
	CreatedAt    time.Time
	CancelledAt  *time.Time
}

type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	ProviderID   uuid.UUID  `json:"providerId"`
	ProviderName string     `json:"providerName"`
	ServiceID    uuid.UUID  `json:"serviceId"`
	ServiceName  string     `json:"serviceName"`
	PriceCents   int64      `json:"priceCents"`
	StartAt      time.Time  `json:"startAt"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

type SlotView struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

type ProviderView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	ImageURL       string    `json:"imageUrl"`
	OpensAtMin     int       `json:"opensAtMin"`
	ClosesAtMin    int       `json:"closesAtMin"`
	GranularityMin int       `json:"granularityMin"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"providerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	PriceCents  int64     `json:"priceCents"`
	DurationMin int       `json:"durationMin"`
}

type ProviderDetailView struct {
	ProviderView
	Services []*ServiceView `json:"services"`
}

// BookingReadStore is the read-side store contract. Reads are snapshot
// reads; they may be stale by the time the client acts on them and the
// commit path re-validates, so no serialization against writes is needed.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingRecord, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingRecord, error)
	ListActiveStartTimes(ctx context.Context, providerID uuid.UUID, day time.Time) ([]time.Time, error)
}

// CatalogReadStore serves immutable reference data, so implementations are
// free to cache it.
type CatalogReadStore interface {
	ListProviders(ctx context.Context, search string) ([]*catalog.Provider, error)
	FindProviderByID(ctx context.Context, id uuid.UUID) (*catalog.Provider, error)
	ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*catalog.Service, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

func providerToView(p *catalog.Provider) *ProviderView {
	return &ProviderView{
		ID:             p.ID(),
		Name:           p.Name(),
		Address:        p.Address(),
		ImageURL:       p.ImageURL(),
		OpensAtMin:     p.Hours().OpensAtMin(),
		ClosesAtMin:    p.Hours().ClosesAtMin(),
		GranularityMin: int(p.Hours().Granularity() / time.Minute),
	}
}

func serviceToView(s *catalog.Service) *ServiceView {
	return &ServiceView{
		ID:          s.ID(),
		ProviderID:  s.ProviderID(),
		Name:        s.Name(),
		Description: s.Description(),
		ImageURL:    s.ImageURL(),
		PriceCents:  s.PriceCents(),
		DurationMin: int(s.Duration() / time.Minute),
	}
}
