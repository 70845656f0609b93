package matching_test

import (
	"math"
	"testing"

	"campus-lostfound/internal/matching"
)

func TestSimilarity(t *testing.T) {
	almostEqual := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	t.Run("Identical Strings", func(t *testing.T) {
		if got := matching.Similarity("blue nike backpack", "blue nike backpack"); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		if got := matching.Similarity("Blue Backpack", "blue BACKPACK"); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
	})

	t.Run("Partial Overlap", func(t *testing.T) {
		// {blue, backpack} ∪ {backpack} = 2, intersection = 1
		if got := matching.Similarity("blue backpack", "backpack"); !almostEqual(got, 0.5) {
			t.Errorf("expected 0.5, got %v", got)
		}
	})

	t.Run("Disjoint", func(t *testing.T) {
		if got := matching.Similarity("red umbrella", "black wallet"); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		a, b := "silver water bottle", "water bottle dented"
		if matching.Similarity(a, b) != matching.Similarity(b, a) {
			t.Error("expected symmetric similarity")
		}
	})

	t.Run("Duplicate Tokens Collapse", func(t *testing.T) {
		if got := matching.Similarity("keys keys keys", "keys"); got != 1 {
			t.Errorf("expected 1, got %v", got)
		}
	})

	t.Run("Both Empty Is Zero", func(t *testing.T) {
		if got := matching.Similarity("", ""); got != 0 {
			t.Errorf("expected 0 for two empty strings, got %v", got)
		}
		if got := matching.Similarity("   ", "\t\n"); got != 0 {
			t.Errorf("expected 0 for whitespace-only strings, got %v", got)
		}
	})

	t.Run("One Empty Is Zero", func(t *testing.T) {
		if got := matching.Similarity("backpack", ""); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}
