package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/folio/internal/adapters/watcher"
	"go.trai.ch/folio/internal/core/ports"
)

func TestDebouncer_CoalescesChanges(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]ports.Change
		d := watcher.NewDebouncer(100*time.Millisecond, func(changes []ports.Change) {
			batches = append(batches, changes)
		})

		d.Add(ports.Change{Path: "/site/content/b.md", Op: ports.ChangeCreate})
		d.Add(ports.Change{Path: "/site/content/a.md", Op: ports.ChangeWrite})
		d.Add(ports.Change{Path: "/site/content/b.md", Op: ports.ChangeWrite})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []ports.Change{
			{Path: "/site/content/a.md", Op: ports.ChangeWrite},
			{Path: "/site/content/b.md", Op: ports.ChangeWrite},
		}, batches[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func([]ports.Change) { calls++ })

		d.Add(ports.Change{Path: "/a", Op: ports.ChangeWrite})
		time.Sleep(60 * time.Millisecond)
		d.Add(ports.Change{Path: "/b", Op: ports.ChangeWrite})
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Zero(t, calls, "window restarts on every change")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var got []ports.Change
		calls := 0
		d := watcher.NewDebouncer(100*time.Millisecond, func(changes []ports.Change) {
			calls++
			got = changes
		})

		d.Flush()
		assert.Zero(t, calls, "empty flush does nothing")

		d.Add(ports.Change{Path: "/a", Op: ports.ChangeRemove})
		d.Flush()
		require.Equal(t, 1, calls)
		assert.Equal(t, []ports.Change{{Path: "/a", Op: ports.ChangeRemove}}, got)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, calls, "flushed changes are not delivered again")
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add(ports.Change{Path: "/a", Op: ports.ChangeWrite})
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
