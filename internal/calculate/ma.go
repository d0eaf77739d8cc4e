package calculate

// SMA calculates the simple moving average of the last period prices.
// With fewer than period samples it averages whatever is available.
func SMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	if period > len(prices) {
		period = len(prices)
	}

	var sum float64
	for _, p := range prices[len(prices)-period:] {
		sum += p
	}
	return sum / float64(period)
}

// EMA calculates the exponential moving average, seeded with the SMA of
// the first period prices. With fewer than period samples it falls back
// to the SMA of the whole series.
func EMA(prices []float64, period int) float64 {
	if len(prices) < period {
		return SMA(prices, len(prices))
	}

	var sum float64
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	ema := sum / float64(period)

	multiplier := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		ema = (prices[i]-ema)*multiplier + ema
	}
	return ema
}
