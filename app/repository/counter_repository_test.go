package repository

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIncrementCreatesRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewCounterRepository(db)

	current, err := repo.Current()
	require.NoError(t, err)
	assert.EqualValues(t, 0, current)

	value, err := repo.Increment()
	require.NoError(t, err)
	assert.EqualValues(t, 1, value)
}

func TestCounterIncrementAccumulates(t *testing.T) {
	db := newTestDB(t)
	repo := NewCounterRepository(db)

	for i := int64(1); i <= 25; i++ {
		value, err := repo.Increment()
		require.NoError(t, err)
		assert.Equal(t, i, value)
	}

	current, err := repo.Current()
	require.NoError(t, err)
	assert.EqualValues(t, 25, current)
}

func TestCounterConcurrentIncrementsAreNotLost(t *testing.T) {
	db := newTestDB(t)
	repo := NewCounterRepository(db)

	const workers = 8
	const hitsPerWorker = 5

	// sqlite may refuse some writers with a busy error; every increment that
	// reported success must still be reflected in the final count.
	var successes int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < hitsPerWorker; j++ {
				if _, err := repo.Increment(); err == nil {
					atomic.AddInt64(&successes, 1)
				}
			}
		}()
	}
	wg.Wait()

	current, err := repo.Current()
	require.NoError(t, err)
	require.Positive(t, successes)
	assert.Equal(t, atomic.LoadInt64(&successes), current)
}
