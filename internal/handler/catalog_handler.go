package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/pkg/response"
)

type catalogService interface {
	Load(ctx context.Context) []models.EventSummary
}

type catalogMetrics interface {
	SetCatalogSize(n int)
}

// CatalogHandler serves the selectable marathon catalog.
type CatalogHandler struct {
	catalog catalogService
	metrics catalogMetrics
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(catalog catalogService, metrics catalogMetrics) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, metrics: metrics}
}

// List godoc
// @Summary Marathon catalog
// @Description Current, upcoming and future-window marathons, deduplicated and name-sorted. Degrades to an empty list on upstream failure.
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *CatalogHandler) List(c *gin.Context) {
	catalog := h.catalog.Load(c.Request.Context())
	if h.metrics != nil {
		h.metrics.SetCatalogSize(len(catalog))
	}
	response.JSON(c, http.StatusOK, catalog, map[string]interface{}{"count": len(catalog)})
}
