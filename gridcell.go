// Package gridcell extracts a single cell from a contact-sheet composite.
//
// A composite is one image expected to contain a 3x3 arrangement of
// sub-images separated by thin near-white gutters of unknown, possibly
// irregular, thickness and position. Given the composite and a normalized
// click coordinate inside it, the extractor locates the interior content
// region, detects the divider bands on each axis, maps the click to the
// nearest cell, and returns a tightly trimmed, re-encoded crop of that cell.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"log"
//		"os"
//
//		"github.com/contactsheet/gridcell"
//	)
//
//	func main() {
//		data, err := os.ReadFile("sheet.png")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		extractor := gridcell.New()
//		result, err := extractor.ExtractCell(context.Background(), gridcell.Payload{Bytes: data}, 0.5, 0.15)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if err := os.WriteFile("cell.png", result.Data, 0o644); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Detection never fails on a degraded grid: missing, faint, shifted, or
// surplus gutters all resolve through geometric fallbacks and pairwise
// scoring. The only terminal failures are an undecodable payload (ErrDecode)
// and a render failure on output (ErrRender).
//
// An Extractor holds no per-request state, so a single instance is safe for
// concurrent use; each invocation owns its own decoded buffer.
package gridcell

import (
	"context"
	"fmt"
	"image"

	"github.com/contactsheet/gridcell/pkg/cropper"
	"github.com/contactsheet/gridcell/pkg/grid"
	"github.com/contactsheet/gridcell/pkg/raster"
)

// Version of the gridcell library.
const Version = "1.0.0"

// Sentinel errors surfaced to callers. Everything else detection encounters
// is recovered internally.
var (
	ErrDecode = raster.ErrDecode
	ErrRender = cropper.ErrRender
)

// Payload is an encoded raster handed across the extraction boundary:
// either embedded bytes or a fetchable HTTP(S) reference.
type Payload struct {
	Bytes []byte
	URL   string
}

// Result is the cropped cell plus its position in the source composite.
type Result struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Format string `json:"format"`
	Data   []byte `json:"-"`
}

// Analysis captures the intermediate detection state for one composite.
// It exists for debug tooling; ExtractCell does not expose it.
type Analysis struct {
	Region      grid.ContentRegion
	ColDividers [2]grid.Divider
	RowDividers [2]grid.Divider
	ColBounds   [3]grid.CellBoundary
	RowBounds   [3]grid.CellBoundary
}

// Extractor runs the full extraction pipeline.
type Extractor struct {
	grid grid.Config
	crop cropper.Config
}

// New creates an Extractor with default thresholds.
func New() *Extractor {
	return NewWithConfig(grid.DefaultConfig(), cropper.DefaultConfig())
}

// NewWithConfig creates an Extractor with custom detection and output settings.
func NewWithConfig(gridCfg grid.Config, cropCfg cropper.Config) *Extractor {
	return &Extractor{grid: gridCfg, crop: cropCfg}
}

// ExtractCell maps a normalized click point onto the composite's 3x3 grid and
// returns the trimmed, re-encoded crop of the selected cell. Click coordinates
// outside [0,1] are a caller contract violation: the cell selection is
// unspecified but the call still returns a valid, clamped crop.
func (e *Extractor) ExtractCell(ctx context.Context, payload Payload, clickX, clickY float64) (Result, error) {
	img, format, err := e.decode(ctx, payload)
	if err != nil {
		return Result{}, err
	}

	buf := raster.FromImage(img)
	analysis := e.Analyze(buf)

	col := grid.ResolveClick(clickX*float64(buf.Width)-float64(analysis.Region.Left), analysis.ColBounds)
	row := grid.ResolveClick(clickY*float64(buf.Height)-float64(analysis.Region.Top), analysis.RowBounds)

	rect := e.CellRect(analysis, row, col)
	rect = grid.TrimCell(buf, rect, e.grid)
	rect = e.crop.Clamp(rect, buf.Width, buf.Height)

	data, err := e.crop.Render(img, rect, format)
	if err != nil {
		return Result{}, err
	}

	return Result{
		X:      rect.Min.X,
		Y:      rect.Min.Y,
		W:      rect.Dx(),
		H:      rect.Dy(),
		Row:    row,
		Col:    col,
		Format: format,
		Data:   data,
	}, nil
}

// Analyze runs border detection and divider selection on a decoded buffer.
func (e *Extractor) Analyze(buf *raster.Buffer) Analysis {
	region := grid.DetectBorders(buf, e.grid)

	cols := grid.ColumnProfile(buf, region)
	rows := grid.RowProfile(buf, region)

	cd1, cd2 := grid.SelectDividers(grid.FindLineRegions(cols, e.grid), region.Width())
	rd1, rd2 := grid.SelectDividers(grid.FindLineRegions(rows, e.grid), region.Height())

	return Analysis{
		Region:      region,
		ColDividers: [2]grid.Divider{cd1, cd2},
		RowDividers: [2]grid.Divider{rd1, rd2},
		ColBounds:   grid.CellBoundaries(cd1, cd2, region.Width()),
		RowBounds:   grid.CellBoundaries(rd1, rd2, region.Height()),
	}
}

// CellRect maps a (row, col) cell back to an image-space rectangle.
func (e *Extractor) CellRect(a Analysis, row, col int) image.Rectangle {
	return image.Rect(
		a.Region.Left+int(a.ColBounds[col].Start),
		a.Region.Top+int(a.RowBounds[row].Start),
		a.Region.Left+int(a.ColBounds[col].End),
		a.Region.Top+int(a.RowBounds[row].End),
	)
}

func (e *Extractor) decode(ctx context.Context, payload Payload) (image.Image, string, error) {
	data := payload.Bytes
	if len(data) == 0 {
		if payload.URL == "" {
			return nil, "", fmt.Errorf("%w: empty payload", ErrDecode)
		}
		fetched, err := raster.Fetch(ctx, payload.URL)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
		data = fetched
	}
	return raster.Decode(data)
}
