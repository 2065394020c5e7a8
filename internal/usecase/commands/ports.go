package commands

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"

	"github.com/google/uuid"
)

// BookingRepository is the write-side store contract. Create must be backed
// by a uniqueness guarantee on (providerID, startAt) among active rows so
// that of any two concurrent commits for the same slot exactly one wins;
// the loser surfaces as a DUPLICATE_KEY repository error.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// SetCancelled flips a still-active row to cancelled. A zero-row update
	// surfaces as NOT_FOUND, which covers the loser of two concurrent
	// cancels as well as a genuinely missing row.
	SetCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error
}

// CatalogRepository supplies read-only reference data for commit-time
// validation.
type CatalogRepository interface {
	FindProviderByID(ctx context.Context, id uuid.UUID) (*catalog.Provider, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}
