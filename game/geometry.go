package game

import "math"

// Squared-distance fast path: every collision and proximity test compares
// against a squared bound; real distances only surface in human-facing
// values (voice volume, connect notifications).

func Dist2(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(Dist2(x1, y1, x2, y2))
}

// Contains reports whether the point is strictly inside a circle. Food
// consumption uses only the eater's radius as the bound, not the sum.
func Contains(cx, cy, r, x, y float64) bool {
	return Dist2(cx, cy, x, y) < r*r
}

// Overlaps reports whether two circles intersect (sum-of-radii bound).
func Overlaps(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return Dist2(x1, y1, x2, y2) < rr*rr
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampToMap keeps a circle of radius r fully inside the map.
func clampToMap(x, y, r float64) (float64, float64) {
	return clamp(x, r, MapSize-r), clamp(y, r, MapSize-r)
}
