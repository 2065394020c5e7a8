package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking row. The partial unique index on
// (provider_id, start_at) WHERE status = 'active' is what makes the
// check-then-insert race safe: the second concurrent insert for the same
// slot fails with a unique violation and is surfaced as DUPLICATE_KEY.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, provider_id, service_id, customer_id, start_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.ProviderID(), b.ServiceID(), b.CustomerID(), b.StartAt(), b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				return infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
			case pgErrCodeForeignKeyViolation:
				return infra.WrapRepoErr("unknown provider or service", err, infra.KindForeignKeyViolated)
			}
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID, providerID, serviceID, customerID uuid.UUID
		startAt, createdAt                           time.Time
		status                                       string
		cancelledAt                                  *time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, provider_id, service_id, customer_id, start_at, status, created_at, cancelled_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(&bookingID, &providerID, &serviceID, &customerID, &startAt, &status, &createdAt, &cancelledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(
		bookingID, providerID, serviceID, customerID,
		startAt, booking.Status(status), createdAt, cancelledAt,
	), nil
}

// SetCancelled is a conditional single-row update. Concurrent cancels of
// the same booking serialize on the row; whoever runs second matches zero
// rows and gets NOT_FOUND.
func (r *BookingRepository) SetCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, cancelled_at = $3
		WHERE id = $1 AND status = $4`,
		id, booking.StatusCancelled.String(), cancelledAt, booking.StatusActive.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no active booking to cancel", nil, infra.KindNotFound)
	}
	return nil
}
