package service

import (
	"sort"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/format"
	"github.com/speedrunjp/oengus-viewer-api/internal/models"
)

// DeriveSubmissionView turns raw submissions plus selection results into
// ordered display rows. Pure: no network, no shared state.
//
// Game colouring follows the original viewer exactly: one validated
// category marks the whole game validated, then bonus, then backup,
// then pending; only a game whose every category was rejected is
// classed rejected. With hideRejected set, fully rejected games are
// dropped and rejected category rows are filtered out of surviving
// games.
func DeriveSubmissionView(games []models.GameSubmission, selection models.SelectionMap, sortMode int, hideRejected bool) []dto.GameRow {
	ordered := make([]models.GameSubmission, len(games))
	copy(ordered, games)

	switch sortMode {
	case dto.SortByNameAsc:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })
	case dto.SortByNameDesc:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name > ordered[j].Name })
	default:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	}

	rows := make([]dto.GameRow, 0, len(ordered))
	for _, game := range ordered {
		tally := map[models.SelectionStatus]int{}
		for _, category := range game.Categories {
			tally[selection.StatusFor(category.ID)]++
		}

		if hideRejected && tally[models.SelectionRejected] == len(game.Categories) {
			continue
		}

		row := dto.GameRow{
			ID:          game.ID,
			Name:        game.Name,
			Runner:      game.User.DisplayName(),
			Console:     game.Console,
			Ratio:       game.Ratio,
			Emulated:    game.Emulated,
			Description: game.Description,
			Class:       gameClass(tally),
			Categories:  make([]dto.CategoryRow, 0, len(game.Categories)),
		}

		for _, category := range game.Categories {
			status := selection.StatusFor(category.ID)
			if hideRejected && status == models.SelectionRejected {
				continue
			}
			row.Categories = append(row.Categories, categoryRow(category, status))
		}

		rows = append(rows, row)
	}
	return rows
}

func gameClass(tally map[models.SelectionStatus]int) string {
	switch {
	case tally[models.SelectionValidated] > 0:
		return dto.ClassValidated
	case tally[models.SelectionBonus] > 0:
		return dto.ClassBonus
	case tally[models.SelectionBackup] > 0:
		return dto.ClassBackup
	case tally[models.SelectionTodo] > 0:
		return dto.ClassPending
	default:
		return dto.ClassRejected
	}
}

func categoryRow(category models.Category, status models.SelectionStatus) dto.CategoryRow {
	row := dto.CategoryRow{
		ID:          category.ID,
		Name:        category.Name,
		Estimate:    format.Duration(category.Estimate),
		EstimateRaw: category.Estimate,
		Description: category.Description,
		VideoURL:    category.Video,
		Type:        category.Type,
		Status:      string(status),
		Class:       statusClass(status),
	}
	for _, opponent := range category.Opponents {
		row.Opponents = append(row.Opponents, dto.OpponentRow{
			Name:     opponent.User.DisplayName(),
			VideoURL: opponent.Video,
		})
	}
	return row
}

func statusClass(status models.SelectionStatus) string {
	switch status {
	case models.SelectionValidated:
		return dto.ClassValidated
	case models.SelectionRejected:
		return dto.ClassRejected
	case models.SelectionBonus:
		return dto.ClassBonus
	case models.SelectionBackup:
		return dto.ClassBackup
	default:
		return dto.ClassPending
	}
}
