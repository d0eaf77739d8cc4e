package calculate

import (
	"math"
	"sort"

	"github.com/coinwatch/predictor/models"
)

const maxLevels = 3

// levelCluster accumulates nearby extrema into one price level while
// scanning the series.
type levelCluster struct {
	price   float64
	touches int
}

// Levels detects support and resistance levels from a price series.
// Swing extrema are clustered by relative proximity (threshold, e.g.
// 0.02 for 2%), then split into supports below and resistances above the
// current (last) price. Both lists are sorted nearest-first and capped
// at three entries. Fewer than 10 samples yields empty lists.
func Levels(prices []float64, threshold float64) (supports, resistances []models.Level) {
	if len(prices) < 10 {
		return nil, nil
	}

	var clusters []levelCluster

	merge := func(p float64) {
		for i := range clusters {
			if math.Abs(p-clusters[i].price)/clusters[i].price < threshold {
				// Running average of all merged touches
				clusters[i].price = (clusters[i].price*float64(clusters[i].touches) + p) / float64(clusters[i].touches+1)
				clusters[i].touches++
				return
			}
		}
		clusters = append(clusters, levelCluster{price: p, touches: 1})
	}

	// Strict local extrema with a 2-sample window on each side
	for i := 2; i < len(prices)-2; i++ {
		p := prices[i]
		if p < prices[i-1] && p < prices[i-2] && p < prices[i+1] && p < prices[i+2] {
			merge(p)
		}
		if p > prices[i-1] && p > prices[i-2] && p > prices[i+1] && p > prices[i+2] {
			merge(p)
		}
	}

	currentPrice := prices[len(prices)-1]
	for _, c := range clusters {
		level := models.Level{
			Price:    c.price,
			Touches:  c.touches,
			Strength: levelStrength(c.touches),
		}
		switch {
		case c.price < currentPrice && c.price > currentPrice*0.8:
			level.Type = models.LevelSupport
			supports = append(supports, level)
		case c.price > currentPrice && c.price < currentPrice*1.2:
			level.Type = models.LevelResistance
			resistances = append(resistances, level)
		}
	}

	// Nearest to the current price first
	sort.Slice(supports, func(i, j int) bool {
		return supports[i].Price > supports[j].Price
	})
	sort.Slice(resistances, func(i, j int) bool {
		return resistances[i].Price < resistances[j].Price
	})

	if len(supports) > maxLevels {
		supports = supports[:maxLevels]
	}
	if len(resistances) > maxLevels {
		resistances = resistances[:maxLevels]
	}
	return supports, resistances
}

func levelStrength(touches int) string {
	switch {
	case touches >= 3:
		return models.StrengthStrong
	case touches == 2:
		return models.StrengthModerate
	default:
		return models.StrengthWeak
	}
}
