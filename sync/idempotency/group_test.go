package idempotency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestOnce(t *testing.T) {
	var g Group[string, int]
	v, err, shared := g.Once("key", func() (int, error) { return 1, nil })
	if v != 1 || err != nil || shared {
		t.Errorf("Once = %v, %v, %v; want 1, nil, false", v, err, shared)
	}

	// remembered
	v, _, shared = g.Once("key", func() (int, error) { return 2, nil })
	if v != 1 || !shared {
		t.Errorf("second Once = %v, shared %v; want 1, true", v, shared)
	}

	g.Forget("key")
	v, _, _ = g.Once("key", func() (int, error) { return 3, nil })
	if v != 3 {
		t.Errorf("Once after Forget = %v want 3", v)
	}
	if n := g.Executions(); n != 2 {
		t.Errorf("Executions = %d want 2", n)
	}
}

func TestOnceErrorNotRemembered(t *testing.T) {
	var g Group[int, int]
	someErr := errors.New("some error")
	_, err, _ := g.Once(1, func() (int, error) { return 0, someErr })
	if err != someErr {
		t.Errorf("Once error = %v want %v", err, someErr)
	}
	v, err, shared := g.Once(1, func() (int, error) { return 5, nil })
	if v != 5 || err != nil || shared {
		t.Errorf("Once after failure = %v, %v, %v; want 5, nil, false", v, err, shared)
	}
}

func TestOnceDupSuppress(t *testing.T) {
	var g Group[string, int]
	var calls int32
	release := make(chan struct{})
	fn := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 7, nil
	}

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err, _ := g.Once("key", fn)
			if v != 7 || err != nil {
				t.Errorf("Once = %v, %v", v, err)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("number of calls = %d want 1", got)
	}
}
