package settlement

import (
	"context"
	"testing"
)

func TestNoopCacheAlwaysMisses(t *testing.T) {
	cache := NewNoopCache()
	ctx := context.Background()

	result := Compute(nil, nil, nil)
	if err := cache.Set(ctx, "trip-1", &result); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if cached, ok := cache.Get(ctx, "trip-1"); ok {
		t.Errorf("Get returned a hit %v, want a miss", cached)
	}

	if err := cache.Invalidate(ctx, "trip-1"); err != nil {
		t.Errorf("Invalidate returned error: %v", err)
	}
}

func TestCacheKeyIsPerTrip(t *testing.T) {
	if cacheKey("abc") == cacheKey("def") {
		t.Error("different trips must map to different cache keys")
	}
	if got, want := cacheKey("abc"), "settlement:abc"; got != want {
		t.Errorf("cacheKey = %q, want %q", got, want)
	}
}
