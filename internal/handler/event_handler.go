package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/service"
	appErrors "github.com/speedrunjp/oengus-viewer-api/pkg/errors"
	"github.com/speedrunjp/oengus-viewer-api/pkg/export"
	"github.com/speedrunjp/oengus-viewer-api/pkg/response"
)

type eventService interface {
	LoadBundle(ctx context.Context, eventID string, progress service.ProgressFunc) (*service.Bundle, error)
}

// EventHandler serves per-marathon read views.
type EventHandler struct {
	events        eventService
	csvExporter   *export.CSVExporter
	pdfExporter   *export.PDFExporter
	exportEnabled bool
}

// NewEventHandler constructs the handler.
func NewEventHandler(events eventService, exportEnabled bool) *EventHandler {
	return &EventHandler{
		events:        events,
		csvExporter:   export.NewCSVExporter(),
		pdfExporter:   export.NewPDFExporter(),
		exportEnabled: exportEnabled,
	}
}

// Get godoc
// @Summary Full marathon view
// @Description Marathon header plus derived submission rows and the day-grouped schedule.
// @Tags Events
// @Produce json
// @Param id path string true "Marathon ID"
// @Param sort query int false "Sort mode: 0 submission order, 1 name asc, 2 name desc"
// @Param hideRejected query bool false "Hide rejected runs"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	sortMode, hideRejected, err := viewParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bundle, err := h.events.LoadBundle(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	view := dto.EventView{
		Event:           service.EventInfo(bundle.Detail),
		SubmissionCount: len(bundle.Games),
		Games:           service.DeriveSubmissionView(bundle.Games, bundle.Selection, sortMode, hideRejected),
	}
	if bundle.Schedule != nil {
		view.Schedule = service.GroupScheduleByDay(bundle.Schedule.Lines)
	}
	response.JSON(c, http.StatusOK, view)
}

// Submissions godoc
// @Summary Submission rows
// @Tags Events
// @Produce json
// @Param id path string true "Marathon ID"
// @Param sort query int false "Sort mode: 0 submission order, 1 name asc, 2 name desc"
// @Param hideRejected query bool false "Hide rejected runs"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/submissions [get]
func (h *EventHandler) Submissions(c *gin.Context) {
	sortMode, hideRejected, err := viewParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	bundle, err := h.events.LoadBundle(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows := service.DeriveSubmissionView(bundle.Games, bundle.Selection, sortMode, hideRejected)
	response.JSON(c, http.StatusOK, rows, map[string]interface{}{"count": len(bundle.Games)})
}

// Schedule godoc
// @Summary Day-grouped schedule
// @Tags Events
// @Produce json
// @Param id path string true "Marathon ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/schedule [get]
func (h *EventHandler) Schedule(c *gin.Context) {
	entries, name, err := h.loadSchedule(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, map[string]interface{}{"event": name})
}

// ExportSchedule godoc
// @Summary Schedule export
// @Description Renders the published schedule as CSV or PDF.
// @Tags Events
// @Produce text/csv,application/pdf
// @Param id path string true "Marathon ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Router /events/{id}/schedule/export [get]
func (h *EventHandler) ExportSchedule(c *gin.Context) {
	if !h.exportEnabled {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "schedule export is disabled"))
		return
	}

	entries, name, err := h.loadSchedule(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dataset := service.ScheduleDataset(entries)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		body, err := h.csvExporter.Render(dataset)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv"))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="schedule.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
	case "pdf":
		body, err := h.pdfExporter.Render(dataset, name)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf"))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="schedule.pdf"`)
		c.Data(http.StatusOK, "application/pdf", body)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func (h *EventHandler) loadSchedule(c *gin.Context) ([]dto.ScheduleEntry, string, error) {
	bundle, err := h.events.LoadBundle(c.Request.Context(), c.Param("id"), nil)
	if err != nil {
		return nil, "", err
	}
	if bundle.Schedule == nil {
		return []dto.ScheduleEntry{}, bundle.Detail.Name, nil
	}
	return service.GroupScheduleByDay(bundle.Schedule.Lines), bundle.Detail.Name, nil
}

func viewParams(c *gin.Context) (sortMode int, hideRejected bool, err error) {
	if raw := c.Query("sort"); raw != "" {
		sortMode, err = strconv.Atoi(raw)
		if err != nil || sortMode < dto.SortBySubmission || sortMode > dto.SortByNameDesc {
			return 0, false, appErrors.Clone(appErrors.ErrValidation, "sort must be 0, 1 or 2")
		}
	}
	if raw := c.Query("hideRejected"); raw != "" {
		hideRejected, err = strconv.ParseBool(raw)
		if err != nil {
			return 0, false, appErrors.Clone(appErrors.ErrValidation, "hideRejected must be a boolean")
		}
	}
	return sortMode, hideRejected, nil
}
