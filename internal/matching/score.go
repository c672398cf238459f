package matching

import "math"

// ClampScore coerces a raw backend score into the closed interval [0,1].
// Out-of-range values are clipped rather than rejected; NaN becomes 0.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Min(1, math.Max(0, score))
}

// Bucket maps a normalized score onto the fixed display tiers.
func Bucket(score float64) string {
	switch {
	case score >= 0.8:
		return "Excellent"
	case score >= 0.6:
		return "Good"
	case score >= 0.4:
		return "Fair"
	default:
		return "Poor"
	}
}
