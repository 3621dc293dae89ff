package main

import (
	"fmt"
	"log"
	"math"

	"github.com/beetlebugorg/isogrid/pkg/contour"
)

// Contours a tiled field, indexes every tile's contours in one R-tree, and
// queries the index for a viewport the way a map renderer would on pan.
func main() {
	const tileSize = 32

	var all []contour.Contour
	for ty := 0; ty < 4; ty++ {
		for tx := 0; tx < 4; tx++ {
			values := tileValues(tx, ty, tileSize)

			opts := contour.DefaultOptions(tileSize, tileSize)
			opts.XOrigin = float64(tx * tileSize)
			opts.YOrigin = float64(ty * tileSize)
			tileBuilder, err := contour.NewBuilder(opts)
			if err != nil {
				log.Fatal(err)
			}
			contours, err := tileBuilder.Contours(values, []float64{0.2, 0.5, 0.8})
			if err != nil {
				log.Fatal(err)
			}
			all = append(all, contours...)
		}
	}

	idx := contour.NewIndex(all)
	fmt.Printf("indexed %d contours covering %+v\n", idx.Count(), idx.Bounds())

	viewport := contour.Bounds{MinX: 40, MinY: 40, MaxX: 90, MaxY: 90}
	visible := idx.InBounds(viewport)
	fmt.Printf("viewport %+v intersects %d contours\n", viewport, len(visible))
	for _, c := range visible {
		fmt.Printf("  threshold %.1f with %d polygons\n", c.Threshold(), len(c.Geometry()))
	}
}

func tileValues(tx, ty, size int) []float64 {
	values := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			gx := float64(tx*size + x)
			gy := float64(ty*size + y)
			values[y*size+x] = 0.5 + 0.5*math.Sin(gx/9)*math.Cos(gy/9)
		}
	}
	return values
}
