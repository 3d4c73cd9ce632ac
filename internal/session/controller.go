// Package session models one viewer's UI state: the selected marathon,
// its fetched data, sort/filter switches and per-row expansion. All
// mutation goes through Controller methods; there are no ambient
// globals.
package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/speedrunjp/oengus-viewer-api/internal/dto"
	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/internal/service"
)

// Status messages kept verbatim from the original viewer.
const (
	statusSelectEvent    = "イベントを選択してください。"
	statusLoading        = "データ取得中..."
	statusFetchDetail    = "イベント情報取得中..."
	statusFetchGames     = "応募情報取得中..."
	statusFetchSelection = "選考情報取得中..."
	statusFetchSchedule  = "スケジュール情報取得中..."
	statusFetchError     = "データ取得でエラーがありました。"
	statusGameCount      = "応募ゲーム数：%d"
)

type loader interface {
	LoadBundle(ctx context.Context, eventID string, progress service.ProgressFunc) (*service.Bundle, error)
}

// Controller owns the state of a single viewer session.
type Controller struct {
	mu     sync.Mutex
	id     string
	loader loader
	logger *zap.Logger

	eventID    string
	status     string
	loading    bool
	generation uint64

	detail    *models.EventDetail
	games     []models.GameSubmission
	selection models.SelectionMap
	schedule  *models.Schedule

	sortMode           int
	hideRejected       bool
	expandedGames      map[int64]bool
	expandedCategories map[int64]bool
	allExpanded        bool
}

func newController(id string, l loader, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		id:                 id,
		loader:             l,
		logger:             logger,
		status:             statusSelectEvent,
		selection:          models.SelectionMap{},
		expandedGames:      map[int64]bool{},
		expandedCategories: map[int64]bool{},
	}
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// Select switches the selected marathon and runs the sequential fetch
// chain. An empty id clears all derived state without touching the
// network. If another Select supersedes this one while its fetches are
// in flight, the stale result is discarded: each call bumps a
// generation counter and only the matching generation may write.
func (c *Controller) Select(ctx context.Context, eventID string) dto.SessionView {
	c.mu.Lock()
	c.generation++
	gen := c.generation

	if eventID == "" {
		c.clearLocked()
		view := c.viewLocked()
		c.mu.Unlock()
		return view
	}

	c.eventID = eventID
	c.loading = true
	c.status = statusLoading
	c.mu.Unlock()

	bundle, err := c.loader.LoadBundle(ctx, eventID, func(stage service.LoadStage) {
		c.setStageStatus(gen, stage)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A later selection took over; this result is stale.
		return c.viewLocked()
	}

	c.loading = false
	if err != nil {
		c.logger.Warn("event load failed",
			zap.String("session_id", c.id),
			zap.String("event_id", eventID),
			zap.Error(err))
		c.status = statusFetchError
		return c.viewLocked()
	}

	c.detail = bundle.Detail
	c.games = bundle.Games
	c.selection = bundle.Selection
	c.schedule = bundle.Schedule
	c.expandedGames = map[int64]bool{}
	c.expandedCategories = map[int64]bool{}
	c.allExpanded = false
	c.status = fmt.Sprintf(statusGameCount, len(bundle.Games))
	return c.viewLocked()
}

// SetSortMode changes the submission ordering.
func (c *Controller) SetSortMode(mode int) dto.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sortMode = mode
	return c.viewLocked()
}

// SetHideRejected toggles hiding of rejected runs.
func (c *Controller) SetHideRejected(hide bool) dto.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hideRejected = hide
	return c.viewLocked()
}

// Toggle flips the expanded flag of one game or category description.
func (c *Controller) Toggle(kind string, id int64) dto.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch kind {
	case "game":
		c.expandedGames[id] = !c.expandedGames[id]
	case "category":
		c.expandedCategories[id] = !c.expandedCategories[id]
	}
	return c.viewLocked()
}

// ToggleAll expands or collapses every description at once.
func (c *Controller) ToggleAll() dto.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allExpanded = !c.allExpanded
	for _, game := range c.games {
		c.expandedGames[game.ID] = c.allExpanded
		for _, category := range game.Categories {
			c.expandedCategories[category.ID] = c.allExpanded
		}
	}
	return c.viewLocked()
}

// View returns the current state snapshot.
func (c *Controller) View() dto.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) clearLocked() {
	c.eventID = ""
	c.loading = false
	c.status = statusSelectEvent
	c.detail = nil
	c.games = nil
	c.selection = models.SelectionMap{}
	c.schedule = nil
	c.expandedGames = map[int64]bool{}
	c.expandedCategories = map[int64]bool{}
	c.allExpanded = false
}

func (c *Controller) setStageStatus(gen uint64, stage service.LoadStage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	switch stage {
	case service.StageDetail:
		c.status = statusFetchDetail
	case service.StageGames:
		c.status = statusFetchGames
	case service.StageSelection:
		c.status = statusFetchSelection
	case service.StageSchedule:
		c.status = statusFetchSchedule
	}
}

func (c *Controller) viewLocked() dto.SessionView {
	view := dto.SessionView{
		SessionID:    c.id,
		EventID:      c.eventID,
		Status:       c.status,
		Loading:      c.loading,
		SortMode:     c.sortMode,
		HideRejected: c.hideRejected,
		Games:        service.DeriveSubmissionView(c.games, c.selection, c.sortMode, c.hideRejected),
		AllExpanded:  c.allExpanded,
	}
	if c.detail != nil {
		view.Event = service.EventInfo(c.detail)
	}
	if c.schedule != nil {
		view.Schedule = service.GroupScheduleByDay(c.schedule.Lines)
	}
	view.ExpandedGames = flagList(c.expandedGames)
	view.ExpandedCategories = flagList(c.expandedCategories)
	return view
}

func flagList(flags map[int64]bool) []int64 {
	if len(flags) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(flags))
	for id, on := range flags {
		if on {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) == 0 {
		return nil
	}
	return ids
}
