package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/contactsheet/gridcell"
	"github.com/contactsheet/gridcell/internal/fileutil"
	"github.com/contactsheet/gridcell/pkg/cropper"
	"github.com/contactsheet/gridcell/pkg/grid"
	"github.com/contactsheet/gridcell/pkg/overlay"
	"github.com/contactsheet/gridcell/pkg/raster"
)

func main() {
	var in, outDir, ext string
	var x, y float64
	var quality int
	var lossless bool
	var debug bool

	flag.StringVar(&in, "in", "", "input composite path or URL (jpg/png/webp)")
	flag.StringVar(&outDir, "out", "out", "output directory")
	flag.Float64Var(&x, "x", 0.5, "normalized click X in [0,1]")
	flag.Float64Var(&y, "y", 0.5, "normalized click Y in [0,1]")
	flag.StringVar(&ext, "ext", "", "output format: jpg|png|webp (default: input format)")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP output lossless mode")
	flag.BoolVar(&debug, "debug", false, "also write a detection overlay image")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in sheet.png|URL [-x 0.5 -y 0.5] [-out outdir] [-ext jpg|png|webp] [-debug]", filepath.Base(os.Args[0]))
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		log.Fatal("-x and -y must be in [0,1]")
	}
	if err := fileutil.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}

	data, err := loadBytes(in)
	if err != nil {
		log.Fatal(err)
	}

	cropCfg := cropper.DefaultConfig()
	cropCfg.Quality = quality
	cropCfg.Lossless = lossless
	extractor := gridcell.NewWithConfig(grid.DefaultConfig(), cropCfg)

	payload := gridcell.Payload{Bytes: data}
	result, err := extractor.ExtractCell(context.Background(), payload, x, y)
	if err != nil {
		log.Fatal(err)
	}

	format := result.Format
	if ext != "" {
		format = normalizeExt(ext)
		// Re-encode in the requested format instead of the input's.
		img, _, derr := raster.Decode(data)
		if derr != nil {
			log.Fatal(derr)
		}
		result.Data, err = cropCfg.Render(img, cellRect(result), format)
		if err != nil {
			log.Fatal(err)
		}
	}

	outPath := fileutil.OutputName(in, outDir, fmt.Sprintf("_cell_%d_%d", result.Row, result.Col), extFor(format))
	if err := os.WriteFile(outPath, result.Data, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("cell=(%d,%d) rect=%d,%d %dx%d -> %s", result.Row, result.Col, result.X, result.Y, result.W, result.H, outPath)

	if debug {
		writeOverlay(extractor, data, result, x, y, in, outDir, quality, lossless)
	}
}

func writeOverlay(extractor *gridcell.Extractor, data []byte, result gridcell.Result, x, y float64, in, outDir string, quality int, lossless bool) {
	img, _, err := raster.Decode(data)
	if err != nil {
		log.Printf("debug overlay skipped: %v", err)
		return
	}

	analysis := extractor.Analyze(raster.FromImage(img))
	dbg := overlay.Draw(img, analysis, cellRect(result), x, y)

	cfg := cropper.DefaultConfig()
	cfg.Quality = quality
	cfg.Lossless = lossless
	payload, err := cfg.Render(dbg, dbg.Bounds(), "png")
	if err != nil {
		log.Printf("debug overlay render failed: %v", err)
		return
	}

	dbgPath := fileutil.OutputName(in, outDir, "_debug", "png")
	if err := os.WriteFile(dbgPath, payload, 0o644); err != nil {
		log.Printf("debug overlay save failed: %v", err)
		return
	}
	log.Printf("wrote %s", dbgPath)
}

func loadBytes(source string) ([]byte, error) {
	if fileutil.IsURL(source) {
		return raster.Fetch(context.Background(), source)
	}
	return os.ReadFile(source)
}

func cellRect(r gridcell.Result) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func normalizeExt(ext string) string {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg":
		return "jpeg"
	case "webp":
		return "webp"
	default:
		return "png"
	}
}

func extFor(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "jpg"
	case "webp":
		return "webp"
	default:
		return "png"
	}
}
