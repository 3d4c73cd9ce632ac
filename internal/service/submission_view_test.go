package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/models"
)

func game(id int64, name string, categoryIDs ...int64) models.GameSubmission {
	g := models.GameSubmission{
		ID:   id,
		Name: name,
		User: &models.User{Username: "runner"},
	}
	for _, cid := range categoryIDs {
		g.Categories = append(g.Categories, models.Category{ID: cid, Name: "Any%", Estimate: "PT1H"})
	}
	return g
}

func selectionOf(statuses map[int64]models.SelectionStatus) models.SelectionMap {
	m := models.SelectionMap{}
	for cid, status := range statuses {
		m[cid] = models.Selection{CategoryID: cid, Status: status}
	}
	return m
}

func TestGameClassPriority(t *testing.T) {
	cases := []struct {
		name     string
		statuses map[int64]models.SelectionStatus
		want     string
	}{
		{"one validated wins over rejected", map[int64]models.SelectionStatus{1: models.SelectionValidated, 2: models.SelectionRejected}, dto.ClassValidated},
		{"bonus beats backup", map[int64]models.SelectionStatus{1: models.SelectionBonus, 2: models.SelectionBackup}, dto.ClassBonus},
		{"backup beats todo", map[int64]models.SelectionStatus{1: models.SelectionBackup}, dto.ClassBackup},
		{"todo with rejected stays pending", map[int64]models.SelectionStatus{2: models.SelectionRejected}, dto.ClassPending},
		{"all rejected", map[int64]models.SelectionStatus{1: models.SelectionRejected, 2: models.SelectionRejected}, dto.ClassRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := DeriveSubmissionView([]models.GameSubmission{game(1, "G", 1, 2)}, selectionOf(tc.statuses), dto.SortBySubmission, false)
			require.Len(t, rows, 1)
			assert.Equal(t, tc.want, rows[0].Class)
		})
	}
}

func TestMissingSelectionDefaultsToTodo(t *testing.T) {
	rows := DeriveSubmissionView([]models.GameSubmission{game(1, "G", 7)}, models.SelectionMap{}, dto.SortBySubmission, false)

	require.Len(t, rows, 1)
	assert.Equal(t, dto.ClassPending, rows[0].Class)
	assert.Equal(t, string(models.SelectionTodo), rows[0].Categories[0].Status)
}

func TestHideRejectedDropsFullyRejectedGame(t *testing.T) {
	games := []models.GameSubmission{game(1, "Dropped", 1, 2), game(2, "Kept", 3, 4)}
	selection := selectionOf(map[int64]models.SelectionStatus{
		1: models.SelectionRejected,
		2: models.SelectionRejected,
		3: models.SelectionValidated,
		4: models.SelectionRejected,
	})

	rows := DeriveSubmissionView(games, selection, dto.SortBySubmission, true)

	require.Len(t, rows, 1)
	assert.Equal(t, "Kept", rows[0].Name)
	// The rejected category row is filtered but the game survives.
	require.Len(t, rows[0].Categories, 1)
	assert.Equal(t, int64(3), rows[0].Categories[0].ID)
}

func TestSortModes(t *testing.T) {
	games := []models.GameSubmission{game(3, "Banjo", 1), game(1, "Chrono", 2), game(2, "Alundra", 3)}

	byID := DeriveSubmissionView(games, nil, dto.SortBySubmission, false)
	assert.Equal(t, []int64{1, 2, 3}, []int64{byID[0].ID, byID[1].ID, byID[2].ID})

	asc := DeriveSubmissionView(games, nil, dto.SortByNameAsc, false)
	assert.Equal(t, []string{"Alundra", "Banjo", "Chrono"}, []string{asc[0].Name, asc[1].Name, asc[2].Name})

	desc := DeriveSubmissionView(games, nil, dto.SortByNameDesc, false)
	assert.Equal(t, []string{"Chrono", "Banjo", "Alundra"}, []string{desc[0].Name, desc[1].Name, desc[2].Name})
}

func TestSortDoesNotMutateInput(t *testing.T) {
	games := []models.GameSubmission{game(2, "B", 1), game(1, "A", 2)}

	DeriveSubmissionView(games, nil, dto.SortByNameAsc, false)

	assert.Equal(t, int64(2), games[0].ID)
}

func TestMissingUserFallback(t *testing.T) {
	g := game(1, "G", 1)
	g.User = nil
	g.Categories[0].Opponents = []models.Opponent{{ID: 9, User: nil, Video: "https://example.com/v"}}

	rows := DeriveSubmissionView([]models.GameSubmission{g}, nil, dto.SortBySubmission, false)

	require.Len(t, rows, 1)
	assert.Equal(t, models.MissingUserLabel, rows[0].Runner)
	require.Len(t, rows[0].Categories[0].Opponents, 1)
	assert.Equal(t, models.MissingUserLabel, rows[0].Categories[0].Opponents[0].Name)
}

func TestJapaneseUsernamePreferred(t *testing.T) {
	g := game(1, "G", 1)
	g.User = &models.User{Username: "runner", UsernameJapanese: "走者"}

	rows := DeriveSubmissionView([]models.GameSubmission{g}, nil, dto.SortBySubmission, false)

	assert.Equal(t, "走者", rows[0].Runner)
}

func TestCategoryEstimateFormatted(t *testing.T) {
	g := game(1, "G", 1)
	g.Categories[0].Estimate = "PT4H30M"

	rows := DeriveSubmissionView([]models.GameSubmission{g}, nil, dto.SortBySubmission, false)

	assert.Equal(t, "04:30:00", rows[0].Categories[0].Estimate)
	assert.Equal(t, "PT4H30M", rows[0].Categories[0].EstimateRaw)
}
