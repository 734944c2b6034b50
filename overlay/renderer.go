package overlay

import (
	"image"
	"image/color"

	"measurecam/annotation"
	"measurecam/controls"

	"gocv.io/x/gocv"
)

// Renderer draws the button bar and the measurement overlay onto frames
type Renderer struct {
	buttonFill   color.RGBA
	buttonText   color.RGBA
	pointColor   color.RGBA
	segmentColor color.RGBA
	panelColor   color.RGBA
	areaColor    color.RGBA

	pointRadius   int
	lineThickness int

	// Distance panel layout
	panelOrigin  image.Point
	panelSpacing int
	areaOrigin   image.Point
}

// NewRenderer creates a renderer with the standard overlay colors
func NewRenderer() *Renderer {
	return &Renderer{
		buttonFill:    color.RGBA{50, 50, 50, 255},    // Dark gray button body
		buttonText:    color.RGBA{255, 255, 255, 255}, // White labels
		pointColor:    color.RGBA{255, 0, 0, 255},     // Red markers
		segmentColor:  color.RGBA{0, 255, 0, 255},     // Green strokes
		panelColor:    color.RGBA{0, 255, 255, 255},   // Cyan distance readout
		areaColor:     color.RGBA{255, 255, 0, 255},   // Yellow area label
		pointRadius:   5,
		lineThickness: 2,
		panelOrigin:   image.Point{20, 80},
		panelSpacing:  30,
		areaOrigin:    image.Point{20, 250},
	}
}

// Draw composes the full overlay. Buttons go first so annotations sit on top.
func (r *Renderer) Draw(img *gocv.Mat, m *annotation.Machine) {
	r.DrawButtons(img, m.Bar())
	r.DrawAnnotations(img, m)
	r.DrawMeasurements(img, m)
}

// DrawButtons draws each button's filled box and label
func (r *Renderer) DrawButtons(img *gocv.Mat, bar *controls.Bar) {
	for _, btn := range bar.Buttons() {
		gocv.Rectangle(img, btn.Box.Rect(), r.buttonFill, -1)

		labelPos := image.Point{btn.Box.X1 + 10, btn.Box.Y2 - 15}
		gocv.PutText(img, btn.Label, labelPos, gocv.FontHersheySimplex, 0.6, r.buttonText, 2)
	}
}

// DrawAnnotations draws stored points as filled markers and segments as lines
func (r *Renderer) DrawAnnotations(img *gocv.Mat, m *annotation.Machine) {
	for _, p := range m.Points() {
		gocv.Circle(img, p, r.pointRadius, r.pointColor, -1)
	}

	for _, seg := range m.Segments() {
		gocv.Line(img, seg.Start, seg.End, r.segmentColor, r.lineThickness)
	}
}

// DrawMeasurements draws the distance panel when exactly two points exist and
// the area label when a shape is selected and has enough points
func (r *Renderer) DrawMeasurements(img *gocv.Mat, m *annotation.Machine) {
	if d, ok := m.MeasureDistance(); ok {
		pos := r.panelOrigin
		for _, line := range d.Lines() {
			gocv.PutText(img, line, pos, gocv.FontHersheySimplex, 0.7, r.panelColor, 2)
			pos.Y += r.panelSpacing
		}
	}

	// Hershey fonts have no glyph for "²"; OpenCV draws a placeholder there
	if area := m.MeasureArea(); area != "" {
		gocv.PutText(img, area, r.areaOrigin, gocv.FontHersheySimplex, 0.8, r.areaColor, 2)
	}
}
