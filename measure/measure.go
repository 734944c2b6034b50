package measure

import (
	"fmt"
	"image"
	"math"
)

// DefaultFeetPerPixel maps one pixel to feet for the expected camera distance
// and resolution. No dynamic calibration is done.
const DefaultFeetPerPixel = 0.000866

// Unit conversion factors from feet
const (
	inchesPerFoot = 12.0
	cmPerFoot     = 30.48
	metersPerFoot = 0.3048
)

// Formula selects how the distance panel computes pixel length
type Formula int

const (
	// Euclidean is sqrt(dx*dx + dy*dy)
	Euclidean Formula = iota
	// Legacy is sqrt(dx*2 + dy*2), kept to reproduce readings taken with the
	// old tool. Negative radicands give NaN.
	Legacy
)

func (f Formula) String() string {
	switch f {
	case Euclidean:
		return "euclidean"
	case Legacy:
		return "legacy"
	default:
		return fmt.Sprintf("Formula(%d)", int(f))
	}
}

// ParseFormula accepts "euclidean" or "legacy"
func ParseFormula(s string) (Formula, error) {
	switch s {
	case "", "euclidean":
		return Euclidean, nil
	case "legacy":
		return Legacy, nil
	default:
		return 0, fmt.Errorf("unknown distance formula %q", s)
	}
}

// PixelLength returns the euclidean distance between two points in pixels
func PixelLength(p1, p2 image.Point) float64 {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// pixelLength applies the chosen formula
func pixelLength(p1, p2 image.Point, formula Formula) float64 {
	if formula == Legacy {
		dx := float64(p2.X - p1.X)
		dy := float64(p2.Y - p1.Y)
		return math.Sqrt(dx*2 + dy*2)
	}
	return PixelLength(p1, p2)
}

// Calibration converts pixel lengths to feet
type Calibration struct {
	FeetPerPixel float64
	Formula      Formula
}

// DefaultCalibration uses the fixed constant and the euclidean formula
func DefaultCalibration() Calibration {
	return Calibration{FeetPerPixel: DefaultFeetPerPixel, Formula: Euclidean}
}

// Feet converts a pixel length to feet
func (c Calibration) Feet(pixels float64) float64 {
	return pixels * c.FeetPerPixel
}

// Distance is one measured length in all display units
type Distance struct {
	Feet  float64
	Inch  float64
	CM    float64
	Meter float64
}

// Distance measures p1→p2 with the calibration's formula
func (c Calibration) Distance(p1, p2 image.Point) Distance {
	feet := c.Feet(pixelLength(p1, p2, c.Formula))
	return Distance{
		Feet:  feet,
		Inch:  feet * inchesPerFoot,
		CM:    feet * cmPerFoot,
		Meter: feet * metersPerFoot,
	}
}

// Lines formats the distance panel: feet, inches, centimeters, meters
func (d Distance) Lines() []string {
	return []string{
		formatReading(d.Feet) + " ft",
		formatReading(d.Inch) + " in",
		formatReading(d.CM) + " cm",
		formatReading(d.Meter) + " m",
	}
}

// formatReading prints two decimals, spelling non-finite values in lower
// case so legacy readings match the old tool's output
func formatReading(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.2f", v)
}

// lengthFeet is the euclidean length of a side in feet. Areas never use the
// legacy formula.
func (c Calibration) lengthFeet(p1, p2 image.Point) float64 {
	return c.Feet(PixelLength(p1, p2))
}
