package analytics

import "sort"

// RankAscending assigns rank 1 to the smallest value. Ties break
// alphabetically by label so ranking is deterministic.
func RankAscending(values map[string]float64) map[string]int {
	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if values[labels[i]] != values[labels[j]] {
			return values[labels[i]] < values[labels[j]]
		}
		return labels[i] < labels[j]
	})

	ranks := make(map[string]int, len(labels))
	for i, label := range labels {
		ranks[label] = i + 1
	}
	return ranks
}

// Clamp bounds v to the [lo, hi] interval.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScaleToScore maps v onto a 0-100 scale where min scores 0 and max scores
// 100. A degenerate interval scores every value 50.
func ScaleToScore(v, min, max float64) float64 {
	if max <= min {
		return 50
	}
	return Clamp((v-min)/(max-min)*100, 0, 100)
}
