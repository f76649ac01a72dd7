package grid

import "math"

// Divider is one chosen cell separator on an axis, in profile-local units.
// Thickness is 0 when the position is a pure geometric cut with no matching
// gutter, so no gap is removed around it.
type Divider struct {
	Pos       float64
	Thickness float64
}

// SelectDividers chooses the two dividers for an axis of length n from the
// gutter candidates found on that axis. Zero candidates fall back to exact
// thirds; one candidate is assigned to whichever ideal mark it is closer to;
// two are used directly; more than two are resolved by pairwise scoring.
func SelectDividers(regions []LineRegion, n int) (Divider, Divider) {
	third := float64(n) / 3

	switch len(regions) {
	case 0:
		return Divider{Pos: third}, Divider{Pos: 2 * third}
	case 1:
		d := toDivider(regions[0])
		if math.Abs(d.Pos-third) <= math.Abs(d.Pos-2*third) {
			return d, Divider{Pos: 2 * third}
		}
		return Divider{Pos: third}, d
	case 2:
		a, b := toDivider(regions[0]), toDivider(regions[1])
		if a.Pos > b.Pos {
			a, b = b, a
		}
		return a, b
	}
	return bestPair(regions, n)
}

// bestPair evaluates every unordered candidate pair and keeps the one that
// scores highest. Candidate counts are small after edge-guard filtering, so
// the O(k^2) sweep is fine.
func bestPair(regions []LineRegion, n int) (Divider, Divider) {
	third := float64(n) / 3
	best := math.Inf(-1)
	var bestA, bestB LineRegion

	for i := 0; i < len(regions)-1; i++ {
		for j := i + 1; j < len(regions); j++ {
			a, b := regions[i], regions[j]
			if a.Center() > b.Center() {
				a, b = b, a
			}
			score := scorePair(a, b, n, third)
			if score > best {
				best = score
				bestA, bestB = a, b
			}
		}
	}
	return toDivider(bestA), toDivider(bestB)
}

// scorePair prefers pairs that cut the axis into near-equal thirds, sit near
// the canonical 1/3 and 2/3 marks, and look gutter-like (thick and bright)
// over thin noisy runs.
func scorePair(a, b LineRegion, n int, third float64) float64 {
	posA, posB := a.Center(), b.Center()

	spans := [3]float64{posA, posB - posA, float64(n) - posB}
	variance := 0.0
	for _, span := range spans {
		variance += math.Abs(span - third)
	}

	return -variance*2 -
		math.Abs(posA-third) - math.Abs(posB-2*third) +
		0.5*(float64(a.Thickness())+float64(b.Thickness())) +
		0.1*(a.Brightness+b.Brightness)
}

func toDivider(r LineRegion) Divider {
	return Divider{Pos: r.Center(), Thickness: float64(r.Thickness())}
}
