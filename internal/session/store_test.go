package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speedrunjp/oengus-viewer-api/internal/service"
	"github.com/speedrunjp/oengus-viewer-api/pkg/config"
)

func TestStoreCreateWithoutSeed(t *testing.T) {
	stub := &loaderStub{}
	store := NewStore(stub, nil, config.SessionConfig{}, nil)
	defer store.Close()

	c := store.Create(context.Background(), "")

	assert.NotEmpty(t, c.ID())
	assert.Empty(t, stub.calls)
	assert.Equal(t, 1, store.Count())
}

func TestStoreCreateAppliesSeedOnce(t *testing.T) {
	stub := &loaderStub{bundles: map[string]*service.Bundle{"rta1kagawa": bundleFor("rta1kagawa", 1)}}
	store := NewStore(stub, nil, config.SessionConfig{}, nil)
	defer store.Close()

	c := store.Create(context.Background(), "rta1kagawa")

	assert.Equal(t, []string{"rta1kagawa"}, stub.calls)
	assert.Equal(t, "rta1kagawa", c.View().EventID)

	// Fetching the session again never re-applies the seed.
	again, ok := store.Get(c.ID())
	require.True(t, ok)
	assert.Equal(t, 1, stub.callCount())
	assert.Equal(t, "rta1kagawa", again.View().EventID)
}

func TestStoreGetUnknown(t *testing.T) {
	store := NewStore(&loaderStub{}, nil, config.SessionConfig{}, nil)
	defer store.Close()

	_, ok := store.Get("missing")

	assert.False(t, ok)
}

func TestStoreSweepExpiresIdleSessions(t *testing.T) {
	var counts []int
	store := NewStore(&loaderStub{}, nil, config.SessionConfig{TTL: time.Millisecond}, func(n int) { counts = append(counts, n) })
	defer store.Close()

	store.Create(context.Background(), "")
	time.Sleep(5 * time.Millisecond)
	store.sweep()

	assert.Equal(t, 0, store.Count())
	require.NotEmpty(t, counts)
	assert.Equal(t, 0, counts[len(counts)-1])
}
