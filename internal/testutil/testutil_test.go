package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibexa/solr-search-engine/internal/content"
)

func TestFixedTraceIDGenerator(t *testing.T) {
	gen := NewFixedTraceIDGenerator("trace-1")
	assert.Equal(t, "trace-1", gen.Generate())
	assert.Equal(t, "trace-1", gen.Generate())

	assert.Equal(t, "test-trace-default", NewFixedTraceIDGenerator("").Generate())
}

func TestLocationLoader(t *testing.T) {
	l := NewLocationLoader(content.Location{ID: 2}, content.Location{ID: 54})

	got, err := l.LoadLocationList(context.Background(), []int64{2, 54, 99})
	require.NoError(t, err)
	assert.Equal(t, map[int64]content.Location{2: {ID: 2}, 54: {ID: 54}}, got)
	assert.Equal(t, [][]int64{{2, 54, 99}}, l.Calls())
}

func TestLocationLoader_Err(t *testing.T) {
	boom := errors.New("boom")
	l := NewLocationLoader()
	l.Err = boom

	_, err := l.LoadLocationList(context.Background(), []int64{1})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, l.Calls(), 1)
}

func TestLocationLoader_ConcurrentSafe(t *testing.T) {
	l := NewLocationLoader(content.Location{ID: 1})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.LoadLocationList(context.Background(), []int64{1})
		}()
	}
	wg.Wait()

	assert.Len(t, l.Calls(), 50)
}

func TestFailingPermissionResolver(t *testing.T) {
	boom := errors.New("no session")
	_, err := FailingPermissionResolver{Err: boom}.CurrentUserReference()
	assert.ErrorIs(t, err, boom)
}
