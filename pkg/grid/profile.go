package grid

import "github.com/contactsheet/gridcell/pkg/raster"

// ColumnProfile computes the mean brightness of each interior column.
// Unlike the border scan this is a full average over every content row:
// divider detection depends on its accuracy.
func ColumnProfile(buf *raster.Buffer, region ContentRegion) []float64 {
	width, height := region.Width(), region.Height()
	if width <= 0 || height <= 0 {
		return nil
	}

	profile := make([]float64, width)
	for x := 0; x < width; x++ {
		sum := 0
		for y := region.Top; y < region.Bottom; y++ {
			sum += int(buf.Brightness(region.Left+x, y))
		}
		profile[x] = float64(sum) / float64(height)
	}
	return profile
}

// RowProfile computes the mean brightness of each interior row.
func RowProfile(buf *raster.Buffer, region ContentRegion) []float64 {
	width, height := region.Width(), region.Height()
	if width <= 0 || height <= 0 {
		return nil
	}

	profile := make([]float64, height)
	for y := 0; y < height; y++ {
		sum := 0
		for x := region.Left; x < region.Right; x++ {
			sum += int(buf.Brightness(x, region.Top+y))
		}
		profile[y] = float64(sum) / float64(width)
	}
	return profile
}
