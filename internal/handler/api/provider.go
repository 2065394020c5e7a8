package api

import (
	"errors"
	"net/http"
	"time"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProviderHandler struct {
	catalogQueries      queries.CatalogQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewProviderHandler(catalogQueries queries.CatalogQueries, availabilityQueries queries.AvailabilityQueries) *ProviderHandler {
	return &ProviderHandler{
		catalogQueries:      catalogQueries,
		availabilityQueries: availabilityQueries,
	}
}

func (h *ProviderHandler) List(c *gin.Context) {
	search := c.Query("search")

	views, err := h.catalogQueries.ListProviders(c.Request.Context(), search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp := make([]*resdto.ProviderResponse, len(views))
	for i, view := range views {
		resp[i] = resdto.FromProviderView(view)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid provider ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetProvider(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProviderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Provider not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProviderDetailView(view))
}

// Availability lists the still-free slots for one provider, service and
// day. The answer is a snapshot; booking re-validates at commit time.
func (h *ProviderHandler) Availability(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid provider ID format",
		})
		return
	}

	serviceID, err := uuid.Parse(c.Query("serviceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing serviceId",
		})
		return
	}

	dateStr := c.Query("date")
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.availabilityQueries.ListDaySlots(c.Request.Context(), providerID, serviceID, day)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProviderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Provider not found",
			})
		case errors.Is(err, queries.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(dateStr, views))
}
