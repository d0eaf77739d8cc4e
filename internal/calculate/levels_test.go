package calculate

import (
	"testing"

	"github.com/coinwatch/predictor/models"
)

// oscillate builds a series that bounces between low and high pivots,
// ending at mid.
func oscillate(cycles int) []float64 {
	leg := []float64{100, 95, 90, 95, 100, 105, 110, 105}
	var prices []float64
	for i := 0; i < cycles; i++ {
		prices = append(prices, leg...)
	}
	return append(prices, 100)
}

func TestLevelsShortSeriesReturnsNothing(t *testing.T) {
	supports, resistances := Levels([]float64{1, 2, 3, 4, 5}, 0.02)
	if supports != nil || resistances != nil {
		t.Errorf("Levels(short) = %v, %v, want empty", supports, resistances)
	}
}

func TestLevelsDetectsRepeatedPivots(t *testing.T) {
	supports, resistances := Levels(oscillate(3), 0.02)

	if len(supports) != 1 {
		t.Fatalf("supports = %v, want exactly one level", supports)
	}
	if len(resistances) != 1 {
		t.Fatalf("resistances = %v, want exactly one level", resistances)
	}

	s, r := supports[0], resistances[0]
	if s.Price != 90 || s.Touches != 3 || s.Strength != models.StrengthStrong || s.Type != models.LevelSupport {
		t.Errorf("support = %+v, want price 90, 3 touches, strong", s)
	}
	if r.Price != 110 || r.Touches != 3 || r.Strength != models.StrengthStrong || r.Type != models.LevelResistance {
		t.Errorf("resistance = %+v, want price 110, 3 touches, strong", r)
	}
}

func TestLevelsTouchStrengthTiers(t *testing.T) {
	tests := []struct {
		touches  int
		expected string
	}{
		{1, models.StrengthWeak},
		{2, models.StrengthModerate},
		{3, models.StrengthStrong},
		{7, models.StrengthStrong},
	}
	for _, tt := range tests {
		if got := levelStrength(tt.touches); got != tt.expected {
			t.Errorf("levelStrength(%d) = %v, want %v", tt.touches, got, tt.expected)
		}
	}
}

func TestLevelsSortedByProximityAndCapped(t *testing.T) {
	// Pivots at several distinct levels on both sides of the final price
	var prices []float64
	for _, pivot := range []float64{90, 82, 95, 78, 88, 92, 112, 118, 105, 108, 115, 119} {
		prices = append(prices, pivot+10, pivot+5, pivot, pivot+5, pivot+10)
	}
	prices = append(prices, 100)

	supports, resistances := Levels(prices, 0.02)

	currentPrice := 100.0
	if len(supports) > 3 || len(resistances) > 3 {
		t.Fatalf("levels not capped: %d supports, %d resistances", len(supports), len(resistances))
	}
	for i, s := range supports {
		if s.Price >= currentPrice {
			t.Errorf("support %v not below current price", s.Price)
		}
		if s.Price < currentPrice*0.8 {
			t.Errorf("support %v outside 20%% window", s.Price)
		}
		if i > 0 && supports[i-1].Price < s.Price {
			t.Errorf("supports not sorted nearest-first: %v before %v", supports[i-1].Price, s.Price)
		}
	}
	for i, r := range resistances {
		if r.Price <= currentPrice {
			t.Errorf("resistance %v not above current price", r.Price)
		}
		if r.Price > currentPrice*1.2 {
			t.Errorf("resistance %v outside 20%% window", r.Price)
		}
		if i > 0 && resistances[i-1].Price > r.Price {
			t.Errorf("resistances not sorted nearest-first: %v before %v", resistances[i-1].Price, r.Price)
		}
	}
}
