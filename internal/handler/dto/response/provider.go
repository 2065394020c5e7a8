package response

import (
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProviderResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	ImageURL       string    `json:"imageUrl"`
	OpensAtMin     int       `json:"opensAtMin"`
	ClosesAtMin    int       `json:"closesAtMin"`
	GranularityMin int       `json:"granularityMin"`
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"providerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	PriceCents  int64     `json:"priceCents"`
	DurationMin int       `json:"durationMin"`
}

type ProviderDetailResponse struct {
	ProviderResponse
	Services []*ServiceResponse `json:"services"`
}

func FromProviderView(view *queries.ProviderView) *ProviderResponse {
	return &ProviderResponse{
		ID:             view.ID,
		Name:           view.Name,
		Address:        view.Address,
		ImageURL:       view.ImageURL,
		OpensAtMin:     view.OpensAtMin,
		ClosesAtMin:    view.ClosesAtMin,
		GranularityMin: view.GranularityMin,
	}
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          view.ID,
		ProviderID:  view.ProviderID,
		Name:        view.Name,
		Description: view.Description,
		ImageURL:    view.ImageURL,
		PriceCents:  view.PriceCents,
		DurationMin: view.DurationMin,
	}
}

func FromProviderDetailView(view *queries.ProviderDetailView) *ProviderDetailResponse {
	resp := &ProviderDetailResponse{
		ProviderResponse: *FromProviderView(&view.ProviderView),
		Services:         make([]*ServiceResponse, len(view.Services)),
	}
	for i, s := range view.Services {
		resp.Services[i] = FromServiceView(s)
	}
	return resp
}
