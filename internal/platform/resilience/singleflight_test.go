package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("team:id:santos", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if v != "ok" {
				t.Errorf("unexpected value %q", v)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DoReturnsError(t *testing.T) {
	var g SingleFlight[int]
	boom := errors.New("boom")

	_, err, shared := g.Do("k", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if shared {
		t.Fatalf("expected unshared result for a single caller")
	}

	v, err, _ := g.Do("k", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Fatalf("expected fresh run after failure, got v=%d err=%v", v, err)
	}
}

func TestSingleFlight_Forget(t *testing.T) {
	var g SingleFlight[int]
	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _, _ = g.Do("k", func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	g.Forget("k")
	v, err, shared := g.Do("k", func() (int, error) { return 2, nil })
	if err != nil || v != 2 || shared {
		t.Fatalf("expected a new run after Forget, got v=%d err=%v shared=%v", v, err, shared)
	}

	close(release)
	<-done
}
