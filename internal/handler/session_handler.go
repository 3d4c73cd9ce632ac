package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/session"
	appErrors "github.com/speedrunjp/oengus-viewer-api/pkg/errors"
	"github.com/speedrunjp/oengus-viewer-api/pkg/response"
)

// SessionHandler exposes the stateful viewer sessions.
type SessionHandler struct {
	store    *session.Store
	validate *validator.Validate
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(store *session.Store, validate *validator.Validate) *SessionHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &SessionHandler{store: store, validate: validate}
}

// Create godoc
// @Summary Open a viewer session
// @Description The optional marathon query parameter seeds the initial selection, applied exactly once.
// @Tags Sessions
// @Produce json
// @Param marathon query string false "Marathon ID to select on first load"
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	controller := h.store.Create(c.Request.Context(), c.Query("marathon"))
	response.Created(c, controller.View())
}

// Get godoc
// @Summary Session snapshot
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	controller, ok := h.lookup(c)
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, controller.View())
}

// Select godoc
// @Summary Select a marathon
// @Description Runs the sequential detail/submission/selection/schedule fetch chain. An empty id clears the selection.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body dto.SelectEventRequest true "Selection"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/select [post]
func (h *SessionHandler) Select(c *gin.Context) {
	controller, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.SelectEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	response.JSON(c, http.StatusOK, controller.Select(c.Request.Context(), req.EventID))
}

// Sort godoc
// @Summary Change submission ordering
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body dto.SortRequest true "Sort mode"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/sort [post]
func (h *SessionHandler) Sort(c *gin.Context) {
	controller, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "mode must be 0, 1 or 2"))
		return
	}
	response.JSON(c, http.StatusOK, controller.SetSortMode(*req.Mode))
}

// Filter godoc
// @Summary Toggle the rejected-run filter
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body dto.FilterRequest true "Filter flag"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/filter [post]
func (h *SessionHandler) Filter(c *gin.Context) {
	controller, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "hideRejected is required"))
		return
	}
	response.JSON(c, http.StatusOK, controller.SetHideRejected(*req.HideRejected))
}

// Toggle godoc
// @Summary Expand or collapse descriptions
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param body body dto.ToggleRequest true "Row or all"
// @Success 200 {object} response.Envelope
// @Router /sessions/{id}/toggle [post]
func (h *SessionHandler) Toggle(c *gin.Context) {
	controller, ok := h.lookup(c)
	if !ok {
		return
	}
	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	if req.All {
		response.JSON(c, http.StatusOK, controller.ToggleAll())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "kind must be game or category"))
		return
	}
	response.JSON(c, http.StatusOK, controller.Toggle(req.Kind, req.ID))
}

func (h *SessionHandler) lookup(c *gin.Context) (*session.Controller, bool) {
	controller, ok := h.store.Get(c.Param("id"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "session not found"))
		return nil, false
	}
	return controller, true
}
