package disposable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisposable_CallsCallback(t *testing.T) {
	called := 0
	d := NewDisposable(func() { called++ })
	d.Dispose()
	assert.Equal(t, 1, called)
}

func TestDisposable_IsIdempotent(t *testing.T) {
	called := 0
	d := NewDisposable(func() { called++ })
	d.Dispose()
	d.Dispose()
	assert.Equal(t, 1, called)
}

func TestDisposable_ConcurrentDisposeRunsOnce(t *testing.T) {
	var mu sync.Mutex
	called := 0
	d := NewDisposable(func() {
		mu.Lock()
		called++
		mu.Unlock()
	})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispose()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, called)
}

func TestDisposable_NilCallback(t *testing.T) {
	d := NewDisposable(nil)
	d.Dispose() // should not panic
}

func TestCompositeDisposable_DisposesAllDelegates(t *testing.T) {
	var order []int
	d := NewCompositeDisposable(
		NewDisposable(func() { order = append(order, 1) }),
		NewDisposable(func() { order = append(order, 2) }),
	)
	d.Add(NewDisposable(func() { order = append(order, 3) }))
	d.Dispose()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCompositeDisposable_Empty(t *testing.T) {
	NewCompositeDisposable().Dispose() // should not panic
}
