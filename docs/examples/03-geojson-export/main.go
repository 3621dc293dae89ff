package main

import (
	"encoding/json"
	"log"
	"math"
	"os"

	"github.com/beetlebugorg/isogrid/pkg/contour"
)

func main() {
	// Sample a ridge onto a 32x32 grid placed at geographic coordinates:
	// one sample per 0.01 degree starting at (-122.5, 37.5)
	const width, height = 32, 32
	values := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			values[y*width+x] = math.Sin(float64(x)/6) * math.Cos(float64(y)/6)
		}
	}

	opts := contour.DefaultOptions(width, height)
	opts.XOrigin, opts.YOrigin = -122.5, 37.5
	opts.XStep, opts.YStep = 0.01, 0.01

	builder, err := contour.NewBuilder(opts)
	if err != nil {
		log.Fatal(err)
	}

	bands, err := builder.Isobands(values, []float64{-0.5, 0, 0.5})
	if err != nil {
		log.Fatal(err)
	}
	lines, err := builder.Lines(values, []float64{0})
	if err != nil {
		log.Fatal(err)
	}

	features := make([]contour.Feature, 0, len(bands)+len(lines))
	for i := range bands {
		features = append(features, bands[i].ToGeoJSON())
	}
	for i := range lines {
		features = append(features, lines[i].ToGeoJSON())
	}
	collection := contour.NewFeatureCollection(features...)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		log.Fatal(err)
	}
}
