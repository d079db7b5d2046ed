package quote

import "testing"

func TestPickAdvancesState(t *testing.T) {
	_, s1 := Pick(1)
	_, s2 := Pick(s1)
	if s1 == 1 || s2 == s1 {
		t.Fatalf("rng state did not advance: 1 -> %d -> %d", s1, s2)
	}
}

func TestPickZeroSeed(t *testing.T) {
	q, s := Pick(0)
	if q == "" || s == 0 {
		t.Fatalf("zero seed produced %q, state %d", q, s)
	}
}

func TestPickCoversList(t *testing.T) {
	seen := make(map[string]bool)
	rng := uint32(42)
	var q string
	for i := 0; i < 10_000; i++ {
		q, rng = Pick(rng)
		seen[q] = true
	}
	if len(seen) != len(List) {
		t.Fatalf("picker reached %d of %d quotes", len(seen), len(List))
	}
}
