package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Key layout. Only immutable catalog reference data lives here; availability
// is never cached because a cached "free" answer could outlive the commit
// that takes the slot.
const (
	keyProvider         = "catalog:provider:%s"
	keyService          = "catalog:service:%s"
	keyProviderServices = "catalog:provider:%s:services"
)

// CachedCatalogStore decorates a CatalogReadStore with a redis
// read-through cache. Cache failures degrade to the underlying store.
type CachedCatalogStore struct {
	inner queries.CatalogReadStore
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedCatalogStore(inner queries.CatalogReadStore, rdb *redis.Client, ttl time.Duration) *CachedCatalogStore {
	return &CachedCatalogStore{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

type providerPayload struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	ImageURL       string    `json:"imageUrl"`
	OpensAtMin     int       `json:"opensAtMin"`
	ClosesAtMin    int       `json:"closesAtMin"`
	GranularityMin int       `json:"granularityMin"`
}

type servicePayload struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"providerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	PriceCents  int64     `json:"priceCents"`
	DurationMin int       `json:"durationMin"`
}

// ListProviders goes straight to the store: search results are unbounded
// keys and not worth caching.
func (c *CachedCatalogStore) ListProviders(ctx context.Context, search string) ([]*catalog.Provider, error) {
	return c.inner.ListProviders(ctx, search)
}

func (c *CachedCatalogStore) FindProviderByID(ctx context.Context, id uuid.UUID) (*catalog.Provider, error) {
	key := fmt.Sprintf(keyProvider, id)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var payload providerPayload
		if jsonErr := json.Unmarshal(data, &payload); jsonErr == nil {
			if p, buildErr := payloadToProvider(payload); buildErr == nil {
				return p, nil
			}
		}
	}

	p, err := c.inner.FindProviderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, providerToPayload(p))
	return p, nil
}

func (c *CachedCatalogStore) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*catalog.Service, error) {
	key := fmt.Sprintf(keyProviderServices, providerID)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var payloads []servicePayload
		if jsonErr := json.Unmarshal(data, &payloads); jsonErr == nil {
			if services, buildErr := payloadsToServices(payloads); buildErr == nil {
				return services, nil
			}
		}
	}

	services, err := c.inner.ListServicesByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	payloads := make([]servicePayload, len(services))
	for i, s := range services {
		payloads[i] = serviceToPayload(s)
	}
	c.set(ctx, key, payloads)
	return services, nil
}

func (c *CachedCatalogStore) FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	key := fmt.Sprintf(keyService, id)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var payload servicePayload
		if jsonErr := json.Unmarshal(data, &payload); jsonErr == nil {
			if s, buildErr := payloadToService(payload); buildErr == nil {
				return s, nil
			}
		}
	}

	s, err := c.inner.FindServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, serviceToPayload(s))
	return s, nil
}

func (c *CachedCatalogStore) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}

func providerToPayload(p *catalog.Provider) providerPayload {
	return providerPayload{
		ID:             p.ID(),
		Name:           p.Name(),
		Address:        p.Address(),
		ImageURL:       p.ImageURL(),
		OpensAtMin:     p.Hours().OpensAtMin(),
		ClosesAtMin:    p.Hours().ClosesAtMin(),
		GranularityMin: int(p.Hours().Granularity() / time.Minute),
	}
}

func payloadToProvider(payload providerPayload) (*catalog.Provider, error) {
	hours, err := catalog.NewOperatingHours(payload.OpensAtMin, payload.ClosesAtMin, time.Duration(payload.GranularityMin)*time.Minute)
	if err != nil {
		return nil, err
	}
	return catalog.NewProvider(payload.ID, payload.Name, payload.Address, payload.ImageURL, hours)
}

func serviceToPayload(s *catalog.Service) servicePayload {
	return servicePayload{
		ID:          s.ID(),
		ProviderID:  s.ProviderID(),
		Name:        s.Name(),
		Description: s.Description(),
		ImageURL:    s.ImageURL(),
		PriceCents:  s.PriceCents(),
		DurationMin: int(s.Duration() / time.Minute),
	}
}

func payloadToService(payload servicePayload) (*catalog.Service, error) {
	return catalog.NewService(
		payload.ID, payload.ProviderID, payload.Name, payload.Description,
		payload.ImageURL, payload.PriceCents, time.Duration(payload.DurationMin)*time.Minute,
	)
}

func payloadsToServices(payloads []servicePayload) ([]*catalog.Service, error) {
	services := make([]*catalog.Service, len(payloads))
	for i, payload := range payloads {
		s, err := payloadToService(payload)
		if err != nil {
			return nil, err
		}
		services[i] = s
	}
	return services, nil
}
