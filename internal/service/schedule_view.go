package service

import (
	"strings"
	"time"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/format"
	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/pkg/export"
)

// setupBlockLabel replaces the game title on setup slots without their
// own text. Kept verbatim from the original viewer.
const setupBlockLabel = "セットアップブロック"

// GroupScheduleByDay interleaves date separators into the published
// running order. Lines arrive pre-sorted by date; a separator is
// emitted before the first line and whenever a line falls on a later
// calendar day than the previous separator. Pure: no network, no
// shared state.
func GroupScheduleByDay(lines []models.ScheduleLine) []dto.ScheduleEntry {
	if len(lines) == 0 {
		return []dto.ScheduleEntry{}
	}

	entries := make([]dto.ScheduleEntry, 0, len(lines)+2)
	day := truncateToDay(lines[0].Date)
	entries = append(entries, dateMarker(day))

	for _, line := range lines {
		lineDay := truncateToDay(line.Date)
		if lineDay.After(day) {
			entries = append(entries, dateMarker(lineDay))
			day = lineDay
		}
		entries = append(entries, runEntry(line))
	}
	return entries
}

// ScheduleDataset flattens a grouped schedule into tabular form for the
// CSV/PDF exporters.
func ScheduleDataset(entries []dto.ScheduleEntry) export.Dataset {
	headers := []string{"Date", "Time", "Title", "Category", "Estimate", "Runners"}
	rows := make([]map[string]string, 0, len(entries))

	currentDate := ""
	for _, entry := range entries {
		if entry.Kind == dto.ScheduleEntryDate {
			currentDate = entry.Date
			continue
		}
		rows = append(rows, map[string]string{
			"Date":     currentDate,
			"Time":     entry.Time,
			"Title":    entry.Title,
			"Category": entry.Category,
			"Estimate": entry.Estimate,
			"Runners":  strings.Join(entry.Runners, " / "),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func dateMarker(day time.Time) dto.ScheduleEntry {
	return dto.ScheduleEntry{
		Kind: dto.ScheduleEntryDate,
		Date: format.Date(day, "yyyy/MM/dd"),
	}
}

func runEntry(line models.ScheduleLine) dto.ScheduleEntry {
	title := line.GameName
	estimate := line.Estimate
	if line.SetupBlock {
		if line.SetupBlockText != "" {
			title = line.SetupBlockText
		} else {
			title = setupBlockLabel
		}
		estimate = line.SetupTime
	}

	runners := make([]string, 0, len(line.Runners))
	for i := range line.Runners {
		runners = append(runners, line.Runners[i].DisplayName())
	}

	return dto.ScheduleEntry{
		Kind:     dto.ScheduleEntryRun,
		Time:     format.Date(line.Date, "HH:mm"),
		Title:    title,
		Category: line.CategoryName,
		Estimate: format.Duration(estimate),
		Setup:    line.SetupBlock,
		Runners:  runners,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
