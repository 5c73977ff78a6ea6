package charts

import "math"

// SlicePercent returns value's share of the series total as a whole
// percentage, rounded half away from zero. A zero-sum series yields 0
// rather than a division error, so an all-zero breakdown tooltips as 0%.
func SlicePercent(value float64, series []float64) int {
	var sum float64
	for _, v := range series {
		sum += v
	}
	if sum == 0 {
		return 0
	}
	return int(math.Round(value / sum * 100))
}
