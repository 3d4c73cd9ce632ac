package service

import (
	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/format"
	"github.com/speedrunjp/oengus-viewer-api/internal/models"
)

// EventInfo projects a marathon record into its display header. The
// markdown description is passed through untouched; rendering is the
// client's concern.
func EventInfo(detail *models.EventDetail) *dto.EventInfo {
	if detail == nil {
		return nil
	}
	info := &dto.EventInfo{
		ID:             detail.ID,
		Name:           detail.Name,
		Start:          format.Date(detail.StartDate, "yyyy/MM/dd HH:mm"),
		End:            format.Date(detail.EndDate, "yyyy/MM/dd HH:mm"),
		Onsite:         detail.Onsite,
		Language:       detail.Language,
		Description:    detail.Description,
		SelectionDone:  detail.SelectionDone,
		ScheduleDone:   detail.ScheduleDone,
		HasMultiplayer: detail.HasMultiplayer,
	}
	if detail.Location != nil {
		info.Location = *detail.Location
	}
	if detail.Country != nil {
		info.Country = *detail.Country
	}
	return info
}
