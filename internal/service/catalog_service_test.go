package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/pkg/config"
)

type catalogClientStub struct {
	list      *models.EventList
	future    []models.EventSummary
	listErr   error
	futureErr error

	gotStart  time.Time
	gotEnd    time.Time
	gotZoneID string
}

func (s *catalogClientStub) EventList(ctx context.Context) (*models.EventList, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func (s *catalogClientStub) EventsForDates(ctx context.Context, start, end time.Time, zoneID string) ([]models.EventSummary, error) {
	s.gotStart = start
	s.gotEnd = end
	s.gotZoneID = zoneID
	if s.futureErr != nil {
		return nil, s.futureErr
	}
	return s.future, nil
}

func summary(id, name string) models.EventSummary {
	return models.EventSummary{ID: id, Name: name}
}

func TestCatalogLoadMergesDedupesAndSorts(t *testing.T) {
	stub := &catalogClientStub{
		list: &models.EventList{
			Live: []models.EventSummary{summary("live1", "Zelda Marathon")},
			Open: []models.EventSummary{summary("open1", "Autumn RTA")},
			Next: []models.EventSummary{summary("next1", "Mystery Dungeon FES")},
		},
		// Duplicates an already-listed event; live/open/next win.
		future: []models.EventSummary{
			{ID: "open1", Name: "Autumn RTA (future window)"},
			summary("future1", "Kagawa Online"),
		},
	}
	svc := NewCatalogService(stub, nil, config.CatalogConfig{WindowMonths: 6, ZoneID: "Asia/Tokyo"})

	catalog := svc.Load(context.Background())

	require.Len(t, catalog, 4)
	assert.Equal(t, []string{"Autumn RTA", "Kagawa Online", "Mystery Dungeon FES", "Zelda Marathon"},
		[]string{catalog[0].Name, catalog[1].Name, catalog[2].Name, catalog[3].Name})
	// The first occurrence of open1 kept its original name.
	assert.Equal(t, "open1", catalog[0].ID)
}

func TestCatalogLoadWindow(t *testing.T) {
	stub := &catalogClientStub{list: &models.EventList{}}
	svc := NewCatalogService(stub, nil, config.CatalogConfig{WindowMonths: 6, ZoneID: "Asia/Tokyo"})
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	svc.Load(context.Background())

	assert.Equal(t, "Asia/Tokyo", stub.gotZoneID)
	assert.True(t, stub.gotStart.Equal(base))
	assert.True(t, stub.gotEnd.Equal(base.AddDate(0, 6, 0)))
}

func TestCatalogLoadFailureDegradesToEmpty(t *testing.T) {
	stub := &catalogClientStub{listErr: errors.New("connection refused")}
	svc := NewCatalogService(stub, nil, config.CatalogConfig{})

	catalog := svc.Load(context.Background())

	assert.NotNil(t, catalog)
	assert.Empty(t, catalog)
}

func TestCatalogLoadFutureFailureDegradesToEmpty(t *testing.T) {
	stub := &catalogClientStub{
		list:      &models.EventList{Live: []models.EventSummary{summary("x", "X")}},
		futureErr: errors.New("boom"),
	}
	svc := NewCatalogService(stub, nil, config.CatalogConfig{})

	assert.Empty(t, svc.Load(context.Background()))
}

func TestCatalogSortStable(t *testing.T) {
	stub := &catalogClientStub{
		list: &models.EventList{
			Live: []models.EventSummary{summary("a", "Same Name"), summary("b", "Same Name")},
		},
	}
	svc := NewCatalogService(stub, nil, config.CatalogConfig{})

	catalog := svc.Load(context.Background())

	require.Len(t, catalog, 2)
	assert.Equal(t, "a", catalog[0].ID)
	assert.Equal(t, "b", catalog[1].ID)
}

func TestDedupeKeepsFirstOccurrence(t *testing.T) {
	type item struct{ ID int }
	in := []item{{1}, {2}, {1}}

	out := dedupeBy(in, func(i item) int { return i.ID })

	assert.Equal(t, []item{{1}, {2}}, out)
}
