package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedrunjp/oengus-viewer-api/internal/models"
	"github.com/speedrunjp/oengus-viewer-api/internal/service"
)

type loaderStub struct {
	mu      sync.Mutex
	bundles map[string]*service.Bundle
	err     error
	calls   []string
	block   chan struct{}
}

func (l *loaderStub) LoadBundle(ctx context.Context, eventID string, progress service.ProgressFunc) (*service.Bundle, error) {
	l.mu.Lock()
	l.calls = append(l.calls, eventID)
	block := l.block
	l.mu.Unlock()

	if block != nil {
		<-block
	}
	if l.err != nil {
		return nil, l.err
	}
	if progress != nil {
		progress(service.StageDetail)
		progress(service.StageGames)
	}
	bundle, ok := l.bundles[eventID]
	if !ok {
		return nil, errors.New("unknown event")
	}
	return bundle, nil
}

func (l *loaderStub) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

func bundleFor(name string, gameCount int) *service.Bundle {
	detail := &models.EventDetail{}
	detail.ID = name
	detail.Name = name
	games := make([]models.GameSubmission, gameCount)
	for i := range games {
		games[i] = models.GameSubmission{ID: int64(i + 1), Name: name, User: &models.User{Username: "runner"}}
	}
	return &service.Bundle{Detail: detail, Games: games, Selection: models.SelectionMap{}}
}

func newTestController(l loader) *Controller {
	return newController("test-session", l, nil)
}

func TestSelectEmptyIDClearsWithoutNetwork(t *testing.T) {
	stub := &loaderStub{}
	c := newTestController(stub)

	view := c.Select(context.Background(), "")

	assert.Empty(t, stub.calls)
	assert.Equal(t, statusSelectEvent, view.Status)
	assert.False(t, view.Loading)
	assert.Nil(t, view.Event)
	assert.Empty(t, view.Games)
}

func TestSelectSuccessReportsGameCount(t *testing.T) {
	stub := &loaderStub{bundles: map[string]*service.Bundle{"mysrtafes": bundleFor("mysrtafes", 3)}}
	c := newTestController(stub)

	view := c.Select(context.Background(), "mysrtafes")

	assert.Equal(t, []string{"mysrtafes"}, stub.calls)
	assert.Equal(t, "応募ゲーム数：3", view.Status)
	assert.False(t, view.Loading)
	require.NotNil(t, view.Event)
	assert.Equal(t, "mysrtafes", view.Event.ID)
	assert.Len(t, view.Games, 3)
}

func TestSelectFailureKeepsPreviousData(t *testing.T) {
	stub := &loaderStub{bundles: map[string]*service.Bundle{"good": bundleFor("good", 2)}}
	c := newTestController(stub)
	c.Select(context.Background(), "good")

	stub.err = errors.New("upstream down")
	view := c.Select(context.Background(), "bad")

	assert.Equal(t, statusFetchError, view.Status)
	assert.False(t, view.Loading)
	// Data from the previous successful load survives the failure.
	assert.Len(t, view.Games, 2)
}

func TestSelectStaleResultDiscarded(t *testing.T) {
	block := make(chan struct{})
	stub := &loaderStub{
		bundles: map[string]*service.Bundle{
			"slow": bundleFor("slow", 5),
			"fast": bundleFor("fast", 1),
		},
		block: block,
	}
	c := newTestController(stub)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Select(context.Background(), "slow")
	}()

	require.Eventually(t, func() bool { return stub.callCount() == 1 }, time.Second, time.Millisecond)

	// A newer selection arrives while the slow one is still in flight.
	stub.mu.Lock()
	stub.block = nil
	stub.mu.Unlock()
	c.Select(context.Background(), "fast")

	close(block)
	wg.Wait()

	// The slow result resolved last but must not overwrite the state.
	final := c.View()
	assert.Equal(t, "fast", final.EventID)
	assert.Len(t, final.Games, 1)
	assert.Equal(t, "応募ゲーム数：1", final.Status)
}

func TestSortAndFilterTransitions(t *testing.T) {
	stub := &loaderStub{bundles: map[string]*service.Bundle{"ev": bundleFor("ev", 2)}}
	c := newTestController(stub)
	c.Select(context.Background(), "ev")

	view := c.SetSortMode(2)
	assert.Equal(t, 2, view.SortMode)

	view = c.SetHideRejected(true)
	assert.True(t, view.HideRejected)
	// No categories at all counts as fully rejected, mirroring the
	// original filter arithmetic.
	assert.Empty(t, view.Games)
}

func TestToggleExpansion(t *testing.T) {
	stub := &loaderStub{bundles: map[string]*service.Bundle{"ev": bundleFor("ev", 2)}}
	c := newTestController(stub)
	c.Select(context.Background(), "ev")

	view := c.Toggle("game", 1)
	assert.Equal(t, []int64{1}, view.ExpandedGames)

	view = c.Toggle("game", 1)
	assert.Empty(t, view.ExpandedGames)

	view = c.ToggleAll()
	assert.True(t, view.AllExpanded)
	assert.Equal(t, []int64{1, 2}, view.ExpandedGames)

	view = c.ToggleAll()
	assert.False(t, view.AllExpanded)
	assert.Empty(t, view.ExpandedGames)
}

func TestSelectResetsExpansion(t *testing.T) {
	stub := &loaderStub{bundles: map[string]*service.Bundle{"ev": bundleFor("ev", 1), "other": bundleFor("other", 1)}}
	c := newTestController(stub)
	c.Select(context.Background(), "ev")
	c.Toggle("game", 1)

	view := c.Select(context.Background(), "other")

	assert.Empty(t, view.ExpandedGames)
}
