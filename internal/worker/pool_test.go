package worker

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/snapshot"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Path: item.Path, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Path: item.Path, Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Path: "game.json", Index: i})
		}
		pool.Close()
	}()

	assert.Equal(t, numItems, collectResults(pool))
	assert.Equal(t, int32(numItems), atomic.LoadInt32(&processed))
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32
	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithBufferSize(2))

	// Not started: the buffer fills and the third submission is refused.
	assert.True(t, pool.TrySubmit(WorkItem{Index: 0}))
	assert.True(t, pool.TrySubmit(WorkItem{Index: 1}))
	assert.False(t, pool.TrySubmit(WorkItem{Index: 2}), "buffer full")

	pool.Stop()
	assert.True(t, pool.IsStopped())
	assert.False(t, pool.TrySubmit(WorkItem{Index: 3}), "TrySubmit after Stop")

	pool.Start()
	go pool.Close()
	assert.Equal(t, 0, collectResults(pool), "stopped pool processed drained items")
}

// TestNewPool tests the functional options constructor.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			assert.Equal(t, tt.wantWorkers, pool.NumWorkers())
			assert.Equal(t, tt.wantBuffer, pool.bufferSize)
		})
	}
}

// TestPoolRun_Order tests that Run returns results in input order.
func TestPoolRun_Order(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Path: item.Path, Index: item.Index}
	}

	paths := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	results := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(2)).Run(context.Background(), paths)

	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, paths[i], r.Path)
	}
}

// TestPoolRun_Cancelled tests that a cancelled context processes nothing new.
func TestPoolRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	results := NewPool(countingProcessFunc(&processed), WithWorkers(2)).Run(ctx, []string{"a", "b", "c"})

	assert.Empty(t, results)
	assert.Equal(t, int32(0), atomic.LoadInt32(&processed))
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 20)
	for i := range paths {
		paths[i] = writeSnapshot(t, dir, i, "e2e4", "e7e5", "g1f3")
	}

	results := NewPool(VerifySnapshot(), WithWorkers(8)).Run(context.Background(), paths)
	require.Len(t, results, len(paths))
	for _, r := range results {
		require.NoError(t, r.Error)
		assert.Equal(t, 3, r.Game.PlyCount())
	}
}

func writeSnapshot(t *testing.T, dir string, i int, moves ...string) string {
	t.Helper()
	g := engine.NewGame()
	for _, m := range moves {
		ok, err := g.MovePiece(chess.MustParseSquare(m[:2]), chess.MustParseSquare(m[2:4]))
		require.NoError(t, err)
		require.True(t, ok, m)
	}
	path := filepath.Join(dir, "game"+string(rune('a'+i))+".json")
	require.NoError(t, snapshot.Save(path, g))
	return path
}

// TestVerifySnapshot tests loading snapshots through the pool.
func TestVerifySnapshot(t *testing.T) {
	dir := t.TempDir()
	mate := writeSnapshot(t, dir, 0, "f2f3", "e7e5", "g2g4", "d8h4")
	quiet := writeSnapshot(t, dir, 1, "d2d4")
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	missing := filepath.Join(dir, "missing.json")

	results := NewPool(VerifySnapshot(), WithWorkers(2)).Run(context.Background(), []string{mate, quiet, broken, missing})
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Error)
	assert.Equal(t, chess.Checkmate, results[0].Outcome)
	assert.True(t, results[0].Game.IsGameOver())

	assert.NoError(t, results[1].Error)
	assert.Equal(t, chess.None, results[1].Outcome)
	assert.Equal(t, chess.Black, results[1].Game.ToMove())

	for _, r := range results[2:] {
		assert.Nil(t, r.Game)
		assert.True(t, stderrors.Is(r.Error, errors.ErrLoadFailure), "%s: %v", r.Path, r.Error)
	}
}
