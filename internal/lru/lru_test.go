package lru

import (
	"strconv"
	"sync"
	"testing"
)

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("Get(a) missed")
	}
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("Get(%s) missed", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestAddUpdatesExisting(t *testing.T) {
	c := New[int, string](2)
	c.Add(1, "one")
	c.Add(2, "two")
	c.Add(1, "uno")
	c.Add(3, "three")

	if v, ok := c.Get(1); !ok || v != "uno" {
		t.Errorf("Get(1) = %q, %v; want uno", v, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("2 should have been evicted")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestGetOrAdd(t *testing.T) {
	c := New[string, int](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
	calls := 0
	create := func() int { calls++; return 7 }
	for _i := 0; _i < 3; _i++ {
		if v := c.GetOrAdd("k", create); v != 7 {
			t.Errorf("GetOrAdd() = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() = %+v, want 2 hits and 1 miss", s)
	}
	if got := s.HitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("HitRate() = %g, want 2/3", got)
	}
}

func TestSingleEntry(t *testing.T) {
	c := New[int, int](1)
	for i := 0; i < 5; i++ {
		c.Add(i, i)
	}
	if v, ok := c.Get(4); !ok || v != 4 {
		t.Errorf("Get(4) = %d, %v", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := strconv.Itoa((g + i) % 32)
				c.GetOrAdd(k, func() int { return i })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds capacity", c.Len())
	}
}
