package main

import (
	"fmt"
	"log"
	"math"

	"github.com/beetlebugorg/isogrid/pkg/contour"
)

func main() {
	// Sample a radial bump onto a 64x64 grid
	const width, height = 64, 64
	values := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - 31.5
			dy := float64(y) - 31.5
			values[y*width+x] = math.Exp(-(dx*dx + dy*dy) / 300)
		}
	}

	// Derive thresholds from the data
	thresholds, err := contour.EqualIntervals(values, 4)
	if err != nil {
		log.Fatal(err)
	}

	// Build contours
	builder, err := contour.NewBuilder(contour.DefaultOptions(width, height))
	if err != nil {
		log.Fatal(err)
	}
	contours, err := builder.Contours(values, thresholds)
	if err != nil {
		log.Fatal(err)
	}

	// Print contour info
	for _, c := range contours {
		geometry := c.Geometry()
		rings := 0
		for _, polygon := range geometry {
			rings += 1 + len(polygon.Holes)
		}
		fmt.Printf("threshold %.3f: %d polygons, %d rings\n",
			c.Threshold(), len(geometry), rings)
	}
}
