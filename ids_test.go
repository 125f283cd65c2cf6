package mcplay

import (
	"sync"
	"testing"
)

func TestCountersStartAtOne(t *testing.T) {
	c := NewCounters()

	if id := c.NextConnectionID(); id != 1 {
		t.Errorf("first connection id %d, want 1", id)
	}
	if id := c.NextEntityID(); id != 1 {
		t.Errorf("first entity id %d, want 1", id)
	}
	if id := c.NextTeleportID(); id != 1 {
		t.Errorf("first teleport id %d, want 1", id)
	}
	if id := c.NextTeleportID(); id != 2 {
		t.Errorf("second teleport id %d, want 2", id)
	}
}

func TestCountersConcurrentUnique(t *testing.T) {
	const workers, perWorker = 8, 1000
	c := NewCounters()

	results := make(chan int32, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results <- c.NextEntityID()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int32]bool, workers*perWorker)
	for id := range results {
		if seen[id] {
			t.Fatalf("entity id %d handed out twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers*perWorker {
		t.Errorf("got %d ids, want %d", len(seen), workers*perWorker)
	}
	for id := int32(1); id <= workers*perWorker; id++ {
		if !seen[id] {
			t.Fatalf("id %d missing", id)
		}
	}
}
