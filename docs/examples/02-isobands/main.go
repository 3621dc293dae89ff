package main

import (
	"fmt"
	"log"
	"math"

	"github.com/beetlebugorg/isogrid/pkg/contour"
)

func main() {
	// Sample two overlapping peaks onto a 48x48 grid
	const width, height = 48, 48
	values := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			values[y*width+x] = peak(float64(x), float64(y), 16, 20) +
				peak(float64(x), float64(y), 32, 28)
		}
	}

	// Quantile edges put a similar number of samples into each band
	edges, err := contour.Quantiles(values, 5)
	if err != nil {
		log.Fatal(err)
	}

	builder, err := contour.NewBuilder(contour.DefaultOptions(width, height))
	if err != nil {
		log.Fatal(err)
	}
	bands, err := builder.Isobands(values, edges)
	if err != nil {
		log.Fatal(err)
	}

	for _, band := range bands {
		holes := 0
		for _, polygon := range band.Geometry() {
			holes += len(polygon.Holes)
		}
		fmt.Printf("band [%.4f, %.4f): %d polygons, %d holes\n",
			band.Min(), band.Max(), len(band.Geometry()), holes)
	}
}

func peak(x, y, cx, cy float64) float64 {
	dx := x - cx
	dy := y - cy
	return math.Exp(-(dx*dx + dy*dy) / 120)
}
