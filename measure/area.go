package measure

import (
	"fmt"
	"image"
	"math"
)

// Shape selects which area formula applies to the clicked points
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCircle
	ShapeRectangle
	ShapeSquare
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	case ShapeSquare:
		return "square"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// MinPoints is the number of points a shape needs before an area is shown
func (s Shape) MinPoints() int {
	switch s {
	case ShapeCircle:
		return 2
	case ShapeRectangle, ShapeSquare:
		return 4
	default:
		return 0
	}
}

// Area returns the area label for shape using only the first two to four
// points. ok is false when the shape is none or there are too few points.
//
//	rectangle: |P0-P1| × |P1-P2|
//	circle:    π × |P0-P1|²
//	square:    mean(|P0-P1|, |P1-P2|, |P2-P3|)²
func (c Calibration) Area(shape Shape, points []image.Point) (string, bool) {
	if shape == ShapeNone || len(points) < shape.MinPoints() {
		return "", false
	}

	switch shape {
	case ShapeRectangle:
		w := c.lengthFeet(points[0], points[1])
		h := c.lengthFeet(points[1], points[2])
		return fmt.Sprintf("Rectangle Area: %.2f ft²", w*h), true

	case ShapeCircle:
		r := c.lengthFeet(points[0], points[1])
		return fmt.Sprintf("Circle Area: %.2f ft²", math.Pi*r*r), true

	case ShapeSquare:
		var total float64
		for i := 0; i < 3; i++ {
			total += c.lengthFeet(points[i], points[i+1])
		}
		side := total / 3
		return fmt.Sprintf("Square Area: %.2f ft²", side*side), true
	}

	return "", false
}
