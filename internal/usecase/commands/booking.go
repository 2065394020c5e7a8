package commands

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProviderNotFound        = errs.New("provider not found")
	ErrServiceNotFound         = errs.New("service not found")
	ErrInvalidSlot             = errs.New("start time is not on a bookable slot boundary")
	ErrPastSlot                = errs.New("start time is not in the future")
	ErrSlotTaken               = errs.New("slot already taken")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrNotBookingOwner         = errs.New("booking belongs to another customer")
	ErrAlreadyCancelled        = errs.New("booking already cancelled")
	ErrCancelTooLate           = errs.New("booking can no longer be cancelled")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingInput struct {
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	CustomerID uuid.UUID
	StartAt    time.Time
}

type CreateBookingResult struct {
	Booking       *booking.Booking
	DisplayStatus booking.DisplayStatus
	ProviderName  string
	ServiceName   string
	PriceCents    int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, id, customerID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		clock:       clock,
	}
}

// CreateBooking is the single creation path for bookings. Validation order:
// slot boundary first, then the future check, then the conflict check. The
// conflict check and the insert are one indivisible step: the store's
// uniqueness guarantee decides the winner between concurrent commits, so a
// stale availability read never produces a double booking.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	provider, err := c.catalogRepo.FindProviderByID(ctx, in.ProviderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	service, err := c.catalogRepo.FindServiceByID(ctx, in.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if service.ProviderID() != provider.ID() {
		return nil, ErrServiceNotFound
	}

	// Slot arithmetic runs in the provider's clock (UTC, the clock the
	// stored operating hours are expressed in). A client-supplied offset
	// must not shift the grid, so the start is normalized first; its date
	// then selects the day to generate against.
	startAt := in.StartAt.UTC()
	candidates := schedule.Generate(startAt, service.Duration(), provider.Hours())
	if !schedule.HasStart(candidates, startAt) {
		return nil, ErrInvalidSlot
	}

	now := c.clock.Now()
	entity, err := booking.NewBooking(in.ProviderID, in.ServiceID, in.CustomerID, startAt, now)
	if err != nil {
		return nil, ErrPastSlot
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking created",
		"booking_id", entity.ID(),
		"provider_id", in.ProviderID,
		"start_at", startAt)

	return &CreateBookingResult{
		Booking:       entity,
		DisplayStatus: entity.DisplayStatusAt(now),
		ProviderName:  provider.Name(),
		ServiceName:   service.Name(),
		PriceCents:    service.PriceCents(),
	}, nil
}

// CancelBooking flips one active booking to cancelled. No cross-record
// coordination is needed: the single-row conditional update serializes
// concurrent cancels, and the loser reports AlreadyCancelled.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id, customerID uuid.UUID) error {
	entity, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if entity.CustomerID() != customerID {
		return ErrNotBookingOwner
	}

	now := c.clock.Now()
	if err := entity.ValidateCancelAt(now); err != nil {
		switch err {
		case booking.ErrAlreadyCancelled:
			return ErrAlreadyCancelled
		case booking.ErrCancelTooLate:
			return ErrCancelTooLate
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if err := c.bookingRepo.SetCancelled(ctx, id, now); err != nil {
		// Zero rows updated means another cancel won the race between our
		// read and this write.
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAlreadyCancelled
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("booking cancelled", "booking_id", id)
	return nil
}
