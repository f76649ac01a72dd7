package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contactsheet/gridcell/pkg/raster"
)

func region(start, end int, brightness float64) LineRegion {
	return LineRegion{Start: start, End: end, Brightness: brightness}
}

func TestSelectDividersGeometricFallback(t *testing.T) {
	d1, d2 := SelectDividers(nil, 300)

	assert.InDelta(t, 100, d1.Pos, 0.001)
	assert.InDelta(t, 200, d2.Pos, 0.001)
	assert.Zero(t, d1.Thickness)
	assert.Zero(t, d2.Thickness)
}

func TestSelectDividersSingleCandidate(t *testing.T) {
	t.Run("near first third", func(t *testing.T) {
		d1, d2 := SelectDividers([]LineRegion{region(88, 92, 255)}, 300)
		assert.InDelta(t, 90, d1.Pos, 0.001)
		assert.InDelta(t, 4, d1.Thickness, 0.001)
		assert.InDelta(t, 200, d2.Pos, 0.001)
		assert.Zero(t, d2.Thickness)
	})

	t.Run("near second third", func(t *testing.T) {
		d1, d2 := SelectDividers([]LineRegion{region(208, 212, 255)}, 300)
		assert.InDelta(t, 100, d1.Pos, 0.001)
		assert.Zero(t, d1.Thickness)
		assert.InDelta(t, 210, d2.Pos, 0.001)
	})
}

func TestSelectDividersTwoCandidatesSorted(t *testing.T) {
	d1, d2 := SelectDividers([]LineRegion{region(198, 202, 255), region(98, 102, 255)}, 300)

	assert.InDelta(t, 100, d1.Pos, 0.001)
	assert.InDelta(t, 200, d2.Pos, 0.001)
	assert.Less(t, d1.Pos, d2.Pos)
}

func TestSelectDividersScoringPrefersThirds(t *testing.T) {
	candidates := []LineRegion{
		region(28, 32, 255),   // far off-center noise
		region(98, 102, 255),  // near n/3
		region(198, 202, 255), // near 2n/3
		region(258, 262, 255), // far off-center noise
	}

	d1, d2 := SelectDividers(candidates, 300)

	assert.InDelta(t, 100, d1.Pos, 0.001)
	assert.InDelta(t, 200, d2.Pos, 0.001)
}

func TestSelectDividersScoringPrefersThickBrightRuns(t *testing.T) {
	// Two pairs equally close to the thirds; the thick bright one wins.
	candidates := []LineRegion{
		region(94, 96, 230),   // thin, faint
		region(98, 104, 255),  // thick, bright
		region(196, 204, 255), // thick, bright
		region(205, 207, 230), // thin, faint
	}

	d1, d2 := SelectDividers(candidates, 300)

	assert.InDelta(t, 101, d1.Pos, 0.001)
	assert.InDelta(t, 200, d2.Pos, 0.001)
	assert.InDelta(t, 6, d1.Thickness, 0.001)
	assert.InDelta(t, 8, d2.Thickness, 0.001)
}

// End-to-end divider accuracy on a clean symmetric sheet: bands centered on
// the exact third marks must be recovered within a pixel on both axes.
func TestDividerSelectionOnExactGrid(t *testing.T) {
	img := buildSheet(sheetSpec{w: 600, h: 600, colCenters: []int{200, 400}, rowCenters: []int{200, 400}, thickness: 4})
	buf := raster.FromImage(img)
	cfg := DefaultConfig()

	regionRect := DetectBorders(buf, cfg)

	for _, axis := range []struct {
		name    string
		profile []float64
		n       int
	}{
		{"columns", ColumnProfile(buf, regionRect), regionRect.Width()},
		{"rows", RowProfile(buf, regionRect), regionRect.Height()},
	} {
		t.Run(axis.name, func(t *testing.T) {
			d1, d2 := SelectDividers(FindLineRegions(axis.profile, cfg), axis.n)
			assert.InDelta(t, float64(axis.n)/3, d1.Pos, 1)
			assert.InDelta(t, 2*float64(axis.n)/3, d2.Pos, 1)
		})
	}
}
