package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/pkg/config"
)

type catalogClient interface {
	EventList(ctx context.Context) (*models.EventList, error)
	EventsForDates(ctx context.Context, start, end time.Time, zoneID string) ([]models.EventSummary, error)
}

// CatalogService builds the selectable marathon catalog from the
// categorized listing plus the future-window listing.
type CatalogService struct {
	client       catalogClient
	logger       *zap.Logger
	windowMonths int
	zoneID       string
	now          func() time.Time
}

// NewCatalogService constructs the service.
func NewCatalogService(client catalogClient, logger *zap.Logger, cfg config.CatalogConfig) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	months := cfg.WindowMonths
	if months <= 0 {
		months = 6
	}
	zone := cfg.ZoneID
	if zone == "" {
		zone = "Asia/Tokyo"
	}
	return &CatalogService{
		client:       client,
		logger:       logger,
		windowMonths: months,
		zoneID:       zone,
		now:          time.Now,
	}
}

// Load fetches both listings concurrently, concatenates live, open,
// next and future entries in that order, drops duplicate ids keeping
// the first occurrence, and sorts by name. A failure of either fetch
// degrades to an empty catalog; catalog loading is never fatal.
func (s *CatalogService) Load(ctx context.Context) []models.EventSummary {
	var (
		wg        sync.WaitGroup
		list      *models.EventList
		future    []models.EventSummary
		listErr   error
		futureErr error
	)

	start := s.now()
	if loc, err := time.LoadLocation(s.zoneID); err == nil {
		start = start.In(loc)
	}
	end := start.AddDate(0, s.windowMonths, 0)

	wg.Add(2)
	go func() {
		defer wg.Done()
		list, listErr = s.client.EventList(ctx)
	}()
	go func() {
		defer wg.Done()
		future, futureErr = s.client.EventsForDates(ctx, start, end, s.zoneID)
	}()
	wg.Wait()

	if listErr != nil {
		s.logger.Warn("event list fetch failed, serving empty catalog", zap.Error(listErr))
		return []models.EventSummary{}
	}
	if futureErr != nil {
		s.logger.Warn("future events fetch failed, serving empty catalog", zap.Error(futureErr))
		return []models.EventSummary{}
	}

	merged := make([]models.EventSummary, 0, len(list.Live)+len(list.Open)+len(list.Next)+len(future))
	merged = append(merged, list.Live...)
	merged = append(merged, list.Open...)
	merged = append(merged, list.Next...)
	merged = append(merged, future...)

	merged = dedupeBy(merged, func(e models.EventSummary) string { return e.ID })

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })

	return merged
}
