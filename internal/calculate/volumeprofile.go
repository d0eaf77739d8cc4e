package calculate

import (
	"sort"

	"github.com/coinwatch/predictor/models"
)

// VolumeProfile builds a traded-volume histogram over equal-width price
// buckets, returning only the non-empty buckets sorted by volume
// descending. Percentages are relative to total volume and sum to ~100.
func VolumeProfile(samples []models.PriceVolume, buckets int) []models.VolumeProfileBucket {
	if len(samples) == 0 || buckets <= 0 {
		return nil
	}

	minPrice, maxPrice := samples[0].Price, samples[0].Price
	var totalVolume float64
	for _, s := range samples {
		if s.Price < minPrice {
			minPrice = s.Price
		}
		if s.Price > maxPrice {
			maxPrice = s.Price
		}
		totalVolume += s.Volume
	}

	width := (maxPrice - minPrice) / float64(buckets)
	volumes := make([]float64, buckets)
	for _, s := range samples {
		idx := 0
		if width > 0 {
			idx = int((s.Price - minPrice) / width)
			if idx >= buckets {
				idx = buckets - 1
			}
		}
		volumes[idx] += s.Volume
	}

	var profile []models.VolumeProfileBucket
	for i, v := range volumes {
		if v == 0 {
			continue
		}
		pct := 0.0
		if totalVolume > 0 {
			pct = v / totalVolume * 100
		}
		profile = append(profile, models.VolumeProfileBucket{
			PriceLevel: minPrice + width*(float64(i)+0.5),
			Volume:     v,
			Percentage: pct,
		})
	}

	sort.Slice(profile, func(i, j int) bool {
		return profile[i].Volume > profile[j].Volume
	})
	return profile
}
