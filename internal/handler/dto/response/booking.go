package response

import (
	"time"

	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           view.ID,
		ProviderID:   view.ProviderID,
		ProviderName: view.ProviderName,
		ServiceID:    view.ServiceID,
		ServiceName:  view.ServiceName,
		PriceCents:   view.PriceCents,
		StartAt:      view.StartAt,
		Status:       view.Status,
		CreatedAt:    view.CreatedAt,
		CancelledAt:  view.CancelledAt,
	}
}

func FromCreateResult(result *commands.CreateBookingResult) *BookingResponse {
	b := result.Booking
	return &BookingResponse{
		ID:           b.ID(),
		ProviderID:   b.ProviderID(),
		ProviderName: result.ProviderName,
		ServiceID:    b.ServiceID(),
		ServiceName:  result.ServiceName,
		PriceCents:   result.PriceCents,
		StartAt:      b.StartAt(),
		Status:       result.DisplayStatus.String(),
		CreatedAt:    b.CreatedAt(),
	}
}
