package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/speedrunjp/oengus-viewer-api/internal/models"
)

// LoadStage identifies the step of a detail load currently in flight,
// for progress reporting.
type LoadStage int

const (
	StageDetail LoadStage = iota
	StageGames
	StageSelection
	StageSchedule
)

// ProgressFunc receives stage notifications during LoadBundle. May be nil.
type ProgressFunc func(stage LoadStage)

type eventClient interface {
	Event(ctx context.Context, eventID string) (*models.EventDetail, error)
	Games(ctx context.Context, eventID string) ([]models.GameSubmission, error)
	Selection(ctx context.Context, eventID string) (models.SelectionMap, error)
	Schedule(ctx context.Context, eventID string) (*models.Schedule, error)
}

// Bundle is everything fetched for one selected marathon.
type Bundle struct {
	Detail    *models.EventDetail
	Games     []models.GameSubmission
	Selection models.SelectionMap
	Schedule  *models.Schedule
}

// EventService loads the per-marathon data bundle.
type EventService struct {
	client eventClient
	logger *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(client eventClient, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{client: client, logger: logger}
}

// LoadBundle performs the sequential fetch chain for a marathon:
// detail, then submissions, then selection results if selection is
// done, then the schedule if it is published. The first failure aborts
// the remaining steps and is returned as-is.
func (s *EventService) LoadBundle(ctx context.Context, eventID string, progress ProgressFunc) (*Bundle, error) {
	report := func(stage LoadStage) {
		if progress != nil {
			progress(stage)
		}
	}

	report(StageDetail)
	detail, err := s.client.Event(ctx, eventID)
	if err != nil {
		return nil, err
	}

	report(StageGames)
	games, err := s.client.Games(ctx, eventID)
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Detail:    detail,
		Games:     games,
		Selection: models.SelectionMap{},
	}

	if detail.SelectionDone {
		report(StageSelection)
		selection, err := s.client.Selection(ctx, eventID)
		if err != nil {
			return nil, err
		}
		bundle.Selection = selection
	}

	if detail.ScheduleDone {
		report(StageSchedule)
		schedule, err := s.client.Schedule(ctx, eventID)
		if err != nil {
			return nil, err
		}
		bundle.Schedule = schedule
	}

	s.logger.Debug("event bundle loaded",
		zap.String("event_id", eventID),
		zap.Int("games", len(games)),
		zap.Bool("selection", detail.SelectionDone),
		zap.Bool("schedule", detail.ScheduleDone))

	return bundle, nil
}
