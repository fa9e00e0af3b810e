package slotlock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_MutualExclusionSameKey(t *testing.T) {
	k := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			k.Lock("2025-08-01:10:00")
			defer k.Unlock("2025-08-01:10:00")
			// Без взаимного исключения инкремент был бы гонкой
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	assert.Equal(t, 0, k.Len(), "записи о ключах должны удаляться после освобождения")
}

func TestKeyedMutex_DistinctKeysDoNotBlock(t *testing.T) {
	k := New()

	k.Lock("2025-08-01:10:00")
	defer k.Unlock("2025-08-01:10:00")

	done := make(chan struct{})
	go func() {
		// Другой ключ не должен ждать освобождения первого
		k.Lock("2025-08-01:11:00")
		k.Unlock("2025-08-01:11:00")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a distinct key blocked")
	}
}

func TestKeyedMutex_DoReleasesOnError(t *testing.T) {
	k := New()
	errBoom := errors.New("boom")

	err := k.Do(context.Background(), "key", func(ctx context.Context) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	// Ключ освобожден: повторный захват не блокируется
	err = k.Do(context.Background(), "key", func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, k.Len())
}

func TestKeyedMutex_DoSerializesCriticalSection(t *testing.T) {
	k := New()

	const workers = 20
	inSection := 0
	maxInSection := 0
	var mu sync.Mutex

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = k.Do(context.Background(), "slot", func(ctx context.Context) error {
				mu.Lock()
				inSection++
				if inSection > maxInSection {
					maxInSection = inSection
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inSection--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInSection, "в критической секции по одному ключу может быть только один исполнитель")
}

func TestKeyedMutex_UnlockUnlockedKeyPanics(t *testing.T) {
	k := New()
	assert.Panics(t, func() {
		k.Unlock("never-locked")
	})
}
