package grid

// LineRegion is a contiguous bright run in a projection profile, i.e. a
// gutter candidate. Positions are profile-local.
type LineRegion struct {
	Start      int
	End        int
	Brightness float64
}

// Center returns the midpoint of the run.
func (r LineRegion) Center() float64 { return float64(r.Start+r.End) / 2 }

// Thickness returns the extent of the run.
func (r LineRegion) Thickness() int { return r.End - r.Start }

// FindLineRegions run-length scans a profile for bright runs. Runs thinner
// than the configured minimum are noise; runs touching either end of the
// profile within the edge guard are artifacts of content-region extraction,
// not gutters. Both are dropped.
func FindLineRegions(profile []float64, cfg Config) []LineRegion {
	n := len(profile)
	var regions []LineRegion

	start := -1
	sum := 0.0
	flush := func(end int) {
		if start < 0 {
			return
		}
		run := LineRegion{Start: start, End: end, Brightness: sum / float64(end-start)}
		if run.Thickness() >= cfg.MinGutterThickness &&
			run.Start > cfg.EdgeGuard && run.End < n-cfg.EdgeGuard {
			regions = append(regions, run)
		}
		start, sum = -1, 0
	}

	for i, v := range profile {
		if v >= float64(cfg.GutterBrightness) {
			if start < 0 {
				start = i
			}
			sum += v
			continue
		}
		flush(i)
	}
	flush(n)

	return regions
}
