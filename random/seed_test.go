package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	seen := map[int64]bool{}
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed: %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected distinct seeds, got %v", seen)
	}
}

func TestResolveKeepsExplicitSeed(t *testing.T) {
	seed, err := Resolve(42)
	if err != nil {
		t.Fatal(err)
	}
	if seed != 42 {
		t.Fatalf("Resolve(42) = %d", seed)
	}
}
