package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type SlotResponse struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

type AvailabilityResponse struct {
	Date  string          `json:"date"`
	Slots []*SlotResponse `json:"slots"`
}

func FromSlotViews(date string, views []*queries.SlotView) *AvailabilityResponse {
	slots := make([]*SlotResponse, len(views))
	for i, v := range views {
		slots[i] = &SlotResponse{StartAt: v.StartAt, EndAt: v.EndAt}
	}
	return &AvailabilityResponse{
		Date:  date,
		Slots: slots,
	}
}
