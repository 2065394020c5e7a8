package readstore

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogReadStore serves provider and service reference data. The booking
// core treats it as immutable input.
type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListProviders(ctx context.Context, search string) ([]*catalog.Provider, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, image_url, opens_at, closes_at, slot_granularity_min
		FROM providers
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name`,
		search,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list providers", err)
	}
	defer rows.Close()

	var providers []*catalog.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan provider row", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read provider rows", err)
	}
	return providers, nil
}

func (r *CatalogReadStore) FindProviderByID(ctx context.Context, id uuid.UUID) (*catalog.Provider, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, address, image_url, opens_at, closes_at, slot_granularity_min
		FROM providers
		WHERE id = $1`,
		id,
	)

	p, err := scanProvider(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider by ID", err)
	}
	return p, nil
}

func (r *CatalogReadStore) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*catalog.Service, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, provider_id, name, description, image_url, price_cents, duration_min
		FROM services
		WHERE provider_id = $1
		ORDER BY name`,
		providerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var services []*catalog.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return services, nil
}

func (r *CatalogReadStore) FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, provider_id, name, description, image_url, price_cents, duration_min
		FROM services
		WHERE id = $1`,
		id,
	)

	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return s, nil
}

func scanProvider(row pgx.Row) (*catalog.Provider, error) {
	var id uuid.UUID
	var name, address, img string
	var opensAt, closesAt, granularityMin int
	if err := row.Scan(&id, &name, &address, &img, &opensAt, &closesAt, &granularityMin); err != nil {
		return nil, err
	}

	hours, err := catalog.NewOperatingHours(opensAt, closesAt, time.Duration(granularityMin)*time.Minute)
	if err != nil {
		return nil, err
	}
	return catalog.NewProvider(id, name, address, img, hours)
}

func scanService(row pgx.Row) (*catalog.Service, error) {
	var id, providerID uuid.UUID
	var name, description, img string
	var priceCents int64
	var durationMin int
	if err := row.Scan(&id, &providerID, &name, &description, &img, &priceCents, &durationMin); err != nil {
		return nil, err
	}
	return catalog.NewService(id, providerID, name, description, img, priceCents, time.Duration(durationMin)*time.Minute)
}
