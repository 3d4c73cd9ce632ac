package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/models"
)

func line(id int64, at time.Time, gameName string) models.ScheduleLine {
	return models.ScheduleLine{
		ID:       id,
		Date:     at,
		GameName: gameName,
		Estimate: "PT1H",
		Runners:  []models.User{{Username: "runner"}},
	}
}

func TestGroupScheduleByDayEmpty(t *testing.T) {
	assert.Empty(t, GroupScheduleByDay(nil))
}

func TestGroupScheduleByDayTwoDays(t *testing.T) {
	day1 := time.Date(2024, 8, 10, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 8, 11, 1, 30, 0, 0, time.UTC)
	lines := []models.ScheduleLine{
		line(1, day1, "First"),
		line(2, day1.Add(time.Hour), "Second"),
		line(3, day2, "Third"),
	}

	entries := GroupScheduleByDay(lines)

	require.Len(t, entries, 5)
	assert.Equal(t, dto.ScheduleEntryDate, entries[0].Kind)
	assert.Equal(t, "2024/08/10", entries[0].Date)
	assert.Equal(t, "First", entries[1].Title)
	assert.Equal(t, "Second", entries[2].Title)
	assert.Equal(t, dto.ScheduleEntryDate, entries[3].Kind)
	assert.Equal(t, "2024/08/11", entries[3].Date)
	assert.Equal(t, "Third", entries[4].Title)
}

func TestGroupScheduleSingleDayOneMarker(t *testing.T) {
	at := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	entries := GroupScheduleByDay([]models.ScheduleLine{line(1, at, "A"), line(2, at.Add(time.Hour), "B")})

	markers := 0
	for _, e := range entries {
		if e.Kind == dto.ScheduleEntryDate {
			markers++
		}
	}
	assert.Equal(t, 1, markers)
	assert.Len(t, entries, 3)
}

func TestScheduleLineFormatting(t *testing.T) {
	at := time.Date(2024, 8, 10, 13, 5, 0, 0, time.UTC)
	l := line(1, at, "Chrono Trigger")
	l.CategoryName = "Any%"

	entries := GroupScheduleByDay([]models.ScheduleLine{l})

	require.Len(t, entries, 2)
	run := entries[1]
	assert.Equal(t, "13:05", run.Time)
	assert.Equal(t, "Any%", run.Category)
	assert.Equal(t, "01:00:00", run.Estimate)
	assert.Equal(t, []string{"runner"}, run.Runners)
}

func TestSetupBlockUsesSetupTimeAndLabel(t *testing.T) {
	at := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	l := line(1, at, "ignored")
	l.SetupBlock = true
	l.SetupTime = "PT15M"

	entries := GroupScheduleByDay([]models.ScheduleLine{l})

	run := entries[1]
	assert.Equal(t, setupBlockLabel, run.Title)
	assert.Equal(t, "00:15:00", run.Estimate)
	assert.True(t, run.Setup)
}

func TestSetupBlockTextOverridesLabel(t *testing.T) {
	at := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	l := line(1, at, "ignored")
	l.SetupBlock = true
	l.SetupBlockText = "Intermission"
	l.SetupTime = "PT10M"

	entries := GroupScheduleByDay([]models.ScheduleLine{l})

	assert.Equal(t, "Intermission", entries[1].Title)
}

func TestScheduleDataset(t *testing.T) {
	day1 := time.Date(2024, 8, 10, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 8, 11, 1, 0, 0, 0, time.UTC)
	entries := GroupScheduleByDay([]models.ScheduleLine{line(1, day1, "First"), line(2, day2, "Second")})

	ds := ScheduleDataset(entries)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "2024/08/10", ds.Rows[0]["Date"])
	assert.Equal(t, "First", ds.Rows[0]["Title"])
	assert.Equal(t, "2024/08/11", ds.Rows[1]["Date"])
	assert.Equal(t, "runner", ds.Rows[1]["Runners"])
}
