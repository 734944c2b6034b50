package measure

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelLength(t *testing.T) {
	assert.Equal(t, 500.0, PixelLength(image.Pt(0, 0), image.Pt(300, 400)))
	assert.Equal(t, 0.0, PixelLength(image.Pt(7, 7), image.Pt(7, 7)))
	assert.Equal(t, 100.0, PixelLength(image.Pt(100, 0), image.Pt(0, 0)))
}

func TestDistance_Euclidean(t *testing.T) {
	c := DefaultCalibration()

	tests := []struct {
		name   string
		p1, p2 image.Point
		want   []string
	}{
		{
			name: "horizontal 100px",
			p1:   image.Pt(0, 0), p2: image.Pt(100, 0),
			want: []string{"0.09 ft", "1.04 in", "2.64 cm", "0.03 m"},
		},
		{
			name: "3-4-5 triangle",
			p1:   image.Pt(0, 0), p2: image.Pt(300, 400),
			want: []string{"0.43 ft", "5.20 in", "13.20 cm", "0.13 m"},
		},
		{
			name: "reversed direction",
			p1:   image.Pt(100, 0), p2: image.Pt(0, 0),
			want: []string{"0.09 ft", "1.04 in", "2.64 cm", "0.03 m"},
		},
		{
			name: "same point",
			p1:   image.Pt(5, 5), p2: image.Pt(5, 5),
			want: []string{"0.00 ft", "0.00 in", "0.00 cm", "0.00 m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Distance(tt.p1, tt.p2).Lines())
		})
	}
}

func TestDistance_EuclideanRaw(t *testing.T) {
	d := DefaultCalibration().Distance(image.Pt(0, 0), image.Pt(100, 0))
	assert.InDelta(t, 0.0866, d.Feet, 1e-12)
	assert.InDelta(t, 0.0866*12, d.Inch, 1e-12)
	assert.InDelta(t, 0.0866*30.48, d.CM, 1e-12)
	assert.InDelta(t, 0.0866*0.3048, d.Meter, 1e-12)
}

func TestDistance_Legacy(t *testing.T) {
	c := Calibration{FeetPerPixel: DefaultFeetPerPixel, Formula: Legacy}

	// sqrt(100*2 + 0*2) = sqrt(200)
	d := c.Distance(image.Pt(0, 0), image.Pt(100, 0))
	assert.InDelta(t, math.Sqrt(200)*DefaultFeetPerPixel, d.Feet, 1e-12)
	assert.Equal(t, []string{"0.01 ft", "0.15 in", "0.37 cm", "0.00 m"}, d.Lines())

	d = c.Distance(image.Pt(0, 0), image.Pt(300, 400))
	assert.Equal(t, []string{"0.03 ft", "0.39 in", "0.99 cm", "0.01 m"}, d.Lines())
}

func TestDistance_LegacyNegativeIsNaN(t *testing.T) {
	c := Calibration{FeetPerPixel: DefaultFeetPerPixel, Formula: Legacy}

	d := c.Distance(image.Pt(100, 0), image.Pt(0, 0))
	assert.True(t, math.IsNaN(d.Feet))
	assert.Equal(t, []string{"nan ft", "nan in", "nan cm", "nan m"}, d.Lines())
}

func TestParseFormula(t *testing.T) {
	f, err := ParseFormula("legacy")
	require.NoError(t, err)
	assert.Equal(t, Legacy, f)

	f, err = ParseFormula("")
	require.NoError(t, err)
	assert.Equal(t, Euclidean, f)
	assert.Equal(t, "euclidean", f.String())

	_, err = ParseFormula("manhattan")
	require.Error(t, err)
}

func TestArea(t *testing.T) {
	c := DefaultCalibration()

	rect := []image.Point{{0, 0}, {1000, 0}, {1000, 500}, {0, 500}}
	square := []image.Point{{0, 0}, {1000, 0}, {1000, 1000}, {1000, 3000}}

	tests := []struct {
		name   string
		shape  Shape
		points []image.Point
		want   string
		wantOK bool
	}{
		{"none", ShapeNone, rect, "", false},
		{"circle tiny rounds to zero", ShapeCircle, []image.Point{{0, 0}, {10, 0}}, "Circle Area: 0.00 ft²", true},
		{"circle", ShapeCircle, []image.Point{{0, 0}, {2000, 0}}, "Circle Area: 9.42 ft²", true},
		{"circle one point", ShapeCircle, []image.Point{{0, 0}}, "", false},
		{"rectangle", ShapeRectangle, rect, "Rectangle Area: 0.37 ft²", true},
		{"rectangle three points", ShapeRectangle, rect[:3], "", false},
		{"square mean of three sides", ShapeSquare, square, "Square Area: 1.33 ft²", true},
		{"square three points", ShapeSquare, square[:3], "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Area(tt.shape, tt.points)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArea_ExtraPointsIgnored(t *testing.T) {
	c := DefaultCalibration()

	base := []image.Point{{0, 0}, {2000, 0}}
	extra := append(append([]image.Point{}, base...), image.Pt(9999, 9999), image.Pt(1, 1))

	a, _ := c.Area(ShapeCircle, base)
	b, _ := c.Area(ShapeCircle, extra)
	assert.Equal(t, a, b)
}

func TestArea_IgnoresLegacyFormula(t *testing.T) {
	euclid := DefaultCalibration()
	legacy := Calibration{FeetPerPixel: DefaultFeetPerPixel, Formula: Legacy}
	points := []image.Point{{0, 0}, {2000, 0}}

	a, _ := euclid.Area(ShapeCircle, points)
	b, _ := legacy.Area(ShapeCircle, points)
	assert.Equal(t, a, b)
}

func TestShape_MinPoints(t *testing.T) {
	assert.Equal(t, 0, ShapeNone.MinPoints())
	assert.Equal(t, 2, ShapeCircle.MinPoints())
	assert.Equal(t, 4, ShapeRectangle.MinPoints())
	assert.Equal(t, 4, ShapeSquare.MinPoints())
	assert.Equal(t, "square", ShapeSquare.String())
}
