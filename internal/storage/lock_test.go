package storage

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLock_LockUnlock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "root.lock")
	lock := NewFileLock(path)

	require.NoError(t, lock.Lock())
	assert.FileExists(t, path)
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock(), "second unlock is a no-op")
}

func TestFileLock_UnlockWithoutLock(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewFileLock(filepath.Join(t.TempDir(), "x.lock")).Unlock())
}

func TestFileLock_TryLockHeld(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "root.lock")
	first := NewFileLock(path)
	require.NoError(t, first.Lock())

	second := NewFileLock(path)
	ok, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Unlock())

	ok, err = second.TryLock()
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, second.Unlock())
}

func TestFileLock_Serializes(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "root.lock")

	var (
		mu     sync.Mutex
		inside int
		maxIn  int
		wg     sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := NewFileLock(path)
			if !assert.NoError(t, lock.Lock()) {
				return
			}
			defer lock.Unlock()

			mu.Lock()
			inside++
			maxIn = max(maxIn, inside)
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxIn)
}
