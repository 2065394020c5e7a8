package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	ServiceID  uuid.UUID `json:"service_id" binding:"required"`
	StartAt    time.Time `json:"start_at" binding:"required"`
}
