package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/beetlebugorg/isogrid/pkg/contour"
)

// gridFile is the on-disk layout: grid shape plus row-major samples,
// gzip-compressed JSON. Elevation exports and model outputs compress well
// in this form.
type gridFile struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Values []float64 `json:"values"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <grid.json.gz>\n", os.Args[0])
		os.Exit(1)
	}

	grid, err := loadGrid(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	thresholds, err := contour.EqualIntervals(grid.Values, 8)
	if err != nil {
		log.Fatal(err)
	}

	builder, err := contour.NewBuilder(contour.DefaultOptions(grid.Width, grid.Height))
	if err != nil {
		log.Fatal(err)
	}
	contours, err := builder.Contours(grid.Values, thresholds)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %dx%d grid\n", os.Args[1], grid.Width, grid.Height)
	for _, c := range contours {
		fmt.Printf("threshold %.2f: %d polygons\n", c.Threshold(), len(c.Geometry()))
	}
}

func loadGrid(path string) (*gridFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer zr.Close()

	var grid gridFile
	if err := json.NewDecoder(zr).Decode(&grid); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &grid, nil
}
