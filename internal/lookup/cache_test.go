package lookup

import (
	"testing"
	"time"
)

func TestResultCache_HitAndExpiry(t *testing.T) {
	cache := newResultCache(5 * time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cards := []Card{{Name: "Pikachu"}}
	cache.set("k", cards)

	got, ok := cache.get("k")
	if !ok || len(got) != 1 {
		t.Fatalf("expected cache hit, got ok=%v cards=%v", ok, got)
	}

	// Just inside the window.
	now = now.Add(5*time.Minute - time.Second)
	if _, ok := cache.get("k"); !ok {
		t.Error("entry expired early")
	}

	// At the window boundary the entry is stale.
	now = now.Add(time.Second)
	if _, ok := cache.get("k"); ok {
		t.Error("entry should have expired")
	}

	// Expired entries are evicted lazily on read.
	if len(cache.entries) != 0 {
		t.Errorf("expired entry not evicted, %d entries remain", len(cache.entries))
	}
}

func TestResultCache_Miss(t *testing.T) {
	cache := newResultCache(time.Minute)
	if _, ok := cache.get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestResultCache_Overwrite(t *testing.T) {
	cache := newResultCache(time.Minute)
	cache.set("k", []Card{{Name: "Pikachu"}})
	cache.set("k", []Card{{Name: "Raichu"}})

	got, ok := cache.get("k")
	if !ok || len(got) != 1 || got[0].Name != "Raichu" {
		t.Errorf("expected overwritten entry, got %v", got)
	}
}

func TestResultCache_Clear(t *testing.T) {
	cache := newResultCache(time.Minute)
	cache.set("a", nil)
	cache.set("b", nil)
	cache.clear()

	if _, ok := cache.get("a"); ok {
		t.Error("clear should drop every entry")
	}
	if len(cache.entries) != 0 {
		t.Errorf("%d entries remain after clear", len(cache.entries))
	}
}
