package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestFamilyCachesPointer verifies repeated Get returns the same metric
func TestFamilyCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("engine.ticks")
	a.Add(3)
	b := r.Ints.Get("engine.ticks")
	if a != b {
		t.Fatal("Expected cached pointer")
	}
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

// TestFamilyConcurrentGet verifies racing registrations converge on one pointer
func TestFamilyConcurrentGet(t *testing.T) {
	f := NewFamily[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Get("engine.ticks").Add(1)
		}()
	}
	wg.Wait()

	if got := f.Get("engine.ticks").Load(); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if f.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", f.Len())
	}
}

// TestFamilyRangeSorted verifies keys come back ordered regardless of registration order
func TestFamilyRangeSorted(t *testing.T) {
	f := NewFamily[Float]()
	for _, k := range []string{"c", "a", "b", "a"} {
		f.Get(k)
	}

	var keys []string
	f.Range(func(k string, _ *Float) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Unexpected key order %v", keys)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	var f Float
	if f.Load() != 0 {
		t.Error("Zero value should be 0")
	}
	f.Store(-16.25)
	if f.Load() != -16.25 {
		t.Errorf("Expected -16.25, got %f", f.Load())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should be empty")
	}
	s.Store("MOVING_RIGHT_AND_A_VERY_LONG_SUFFIX")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

// TestRegistryLinesOrder verifies grouping by type then key order
func TestRegistryLinesOrder(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("boss.present").Store(true)
	r.Ints.Get("world.enemies").Store(2)
	r.Ints.Get("engine.ticks").Store(7)
	r.Floats.Get("engine.dt_ms").Store(16.5)
	r.Strings.Get("boss.state").Store("WAITING")

	got := r.Lines()
	want := []string{
		"boss.present: true",
		"engine.ticks: 7",
		"world.enemies: 2",
		"engine.dt_ms: 16.50",
		"boss.state: WAITING",
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
