package queries

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListProviders(ctx context.Context, search string) ([]*ProviderView, error)
	GetProvider(ctx context.Context, id uuid.UUID) (*ProviderDetailView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListProviders(ctx context.Context, search string) ([]*ProviderView, error) {
	providers, err := q.store.ListProviders(ctx, search)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]*ProviderView, len(providers))
	for i, p := range providers {
		views[i] = providerToView(p)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetProvider(ctx context.Context, id uuid.UUID) (*ProviderDetailView, error) {
	provider, err := q.store.FindProviderByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	services, err := q.store.ListServicesByProvider(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	detail := &ProviderDetailView{
		ProviderView: *providerToView(provider),
		Services:     make([]*ServiceView, len(services)),
	}
	for i, s := range services {
		detail.Services[i] = serviceToView(s)
	}
	return detail, nil
}
