package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnsync/internal/adapters/watcher"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sorted := append([]string{}, paths...)
	sort.Strings(sorted)
	r.batches = append(r.batches, sorted)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string{}, r.batches...)
}

func TestDebouncer_CoalescesBurstIntoOneBatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("Assets/A.cs")
		d.Add("Assets/B.cs")
		d.Add("Assets/A.cs")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"Assets/A.cs", "Assets/B.cs"}, batches[0])
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("Assets/A.cs")
		time.Sleep(60 * time.Millisecond)
		// Still inside the window; this restarts it.
		d.Add("Assets/B.cs")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot(), "window restarted, nothing delivered yet")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"Assets/A.cs", "Assets/B.cs"}, batches[0])
	})
}

func TestDebouncer_SeparateBurstsSeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("Assets/A.cs")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("Assets/B.cs")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		batches := rec.snapshot()
		require.Len(t, batches, 2)
		assert.Equal(t, []string{"Assets/A.cs"}, batches[0])
		assert.Equal(t, []string{"Assets/B.cs"}, batches[1])
	})
}

func TestDebouncer_FlushDeliversImmediately(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Add("Assets/A.cs")
	d.Flush()

	batches := rec.snapshot()
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"Assets/A.cs"}, batches[0])
}

func TestDebouncer_FlushWithoutPendingIsQuiet(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}
