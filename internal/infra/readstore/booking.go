package readstore

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const bookingRecordColumns = `
	b.id, b.provider_id, p.name, b.service_id, s.name, s.price_cents,
	b.customer_id, b.start_at, b.status, b.created_at, b.cancelled_at`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+bookingRecordColumns+`
		FROM bookings b
		JOIN providers p ON p.id = b.provider_id
		JOIN services s ON s.id = b.service_id
		WHERE b.id = $1`,
		id,
	)

	rec, err := scanBookingRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rec, nil
}

func (r *BookingReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT`+bookingRecordColumns+`
		FROM bookings b
		JOIN providers p ON p.id = b.provider_id
		JOIN services s ON s.id = b.service_id
		WHERE b.customer_id = $1
		ORDER BY b.start_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	var recs []*queries.BookingRecord
	for rows.Next() {
		rec, err := scanBookingRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return recs, nil
}

func (r *BookingReadStore) ListActiveStartTimes(ctx context.Context, providerID uuid.UUID, day time.Time) ([]time.Time, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := r.db.Query(ctx, `
		SELECT start_at
		FROM bookings
		WHERE provider_id = $1 AND status = $2 AND start_at >= $3 AND start_at < $4
		ORDER BY start_at`,
		providerID, booking.StatusActive.String(), dayStart, dayEnd,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active start times", err)
	}
	defer rows.Close()

	var starts []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan start time", err)
		}
		starts = append(starts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read start times", err)
	}
	return starts, nil
}

func scanBookingRecord(row pgx.Row) (*queries.BookingRecord, error) {
	var (
		rec    queries.BookingRecord
		status string
	)
	err := row.Scan(
		&rec.ID, &rec.ProviderID, &rec.ProviderName, &rec.ServiceID, &rec.ServiceName,
		&rec.PriceCents, &rec.CustomerID, &rec.StartAt, &status, &rec.CreatedAt, &rec.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Status = booking.Status(status)
	return &rec, nil
}
