package annotation

import (
	"image"
	"strings"

	"measurecam/controls"
	"measurecam/measure"
)

// Segment joins two consecutively clicked points
type Segment struct {
	Start image.Point
	End   image.Point
}

// EntryKind tags what an undo entry added
type EntryKind int

const (
	PointAdded EntryKind = iota
	SegmentAdded
)

func (k EntryKind) String() string {
	if k == SegmentAdded {
		return "segment added"
	}
	return "point added"
}

// Entry records one addition so Undo can remove exactly that value
type Entry struct {
	Kind    EntryKind
	Point   image.Point
	Segment Segment
}

// OutcomeKind describes what a click did
type OutcomeKind int

const (
	OutcomeAnnotated OutcomeKind = iota
	OutcomeReset
	OutcomeUndo
	OutcomeShapeSelected
	OutcomeQuit
)

// Outcome is the result of dispatching one click
type Outcome struct {
	Kind       OutcomeKind
	Button     string        // label of the clicked button, empty for canvas clicks
	Point      image.Point   // point appended by a canvas click
	NewSegment bool          // canvas click also created a segment
	Shape      measure.Shape // shape chosen by a shape button
}

// Machine owns the clicked points, the segments between them, the undo
// history and the current shape mode. It is the only mutator of that state
// and is meant to be driven from a single goroutine.
type Machine struct {
	bar   *controls.Bar
	calib measure.Calibration

	points   []image.Point
	segments []Segment
	history  []Entry
	shape    measure.Shape
	quit     bool
}

// NewMachine creates an empty machine dispatching clicks against bar
func NewMachine(bar *controls.Bar, calib measure.Calibration) *Machine {
	return &Machine{
		bar:   bar,
		calib: calib,
	}
}

// Bar returns the button layout the machine dispatches against
func (m *Machine) Bar() *controls.Bar {
	return m.bar
}

// HandleClick routes a left click. Clicks inside a button run its action and
// never add a point. Any other click appends a point, plus a segment to the
// previous point when there is one, recording one undo entry for each.
func (m *Machine) HandleClick(x, y int) Outcome {
	if btn, ok := m.bar.Locate(x, y); ok {
		return m.dispatch(btn)
	}

	p := image.Pt(x, y)
	m.points = append(m.points, p)
	m.history = append(m.history, Entry{Kind: PointAdded, Point: p})

	out := Outcome{Kind: OutcomeAnnotated, Point: p}
	if n := len(m.points); n >= 2 {
		seg := Segment{Start: m.points[n-2], End: m.points[n-1]}
		m.segments = append(m.segments, seg)
		m.history = append(m.history, Entry{Kind: SegmentAdded, Segment: seg})
		out.NewSegment = true
	}
	return out
}

func (m *Machine) dispatch(btn controls.Button) Outcome {
	out := Outcome{Button: btn.Label}

	switch btn.Action {
	case controls.ActionReset:
		m.Reset()
		out.Kind = OutcomeReset
	case controls.ActionUndo:
		m.Undo()
		out.Kind = OutcomeUndo
	case controls.ActionCircle:
		m.SelectShape(measure.ShapeCircle)
		out.Kind, out.Shape = OutcomeShapeSelected, measure.ShapeCircle
	case controls.ActionRectangle:
		m.SelectShape(measure.ShapeRectangle)
		out.Kind, out.Shape = OutcomeShapeSelected, measure.ShapeRectangle
	case controls.ActionSquare:
		m.SelectShape(measure.ShapeSquare)
		out.Kind, out.Shape = OutcomeShapeSelected, measure.ShapeSquare
	case controls.ActionQuit:
		m.Quit()
		out.Kind = OutcomeQuit
	}
	return out
}

// Reset clears points, segments and undo history together
func (m *Machine) Reset() {
	m.points = nil
	m.segments = nil
	m.history = nil
}

// Undo reverses the most recent entry. It removes the first occurrence of the
// recorded value, not simply the last element, and does nothing if the value
// is already gone or the history is empty.
func (m *Machine) Undo() {
	if len(m.history) == 0 {
		return
	}

	last := len(m.history) - 1
	entry := m.history[last]
	m.history = m.history[:last]

	switch entry.Kind {
	case PointAdded:
		m.points = removeFirst(m.points, entry.Point)
	case SegmentAdded:
		m.segments = removeFirst(m.segments, entry.Segment)
	}
}

// SelectShape sets the area formula. Existing points are kept.
func (m *Machine) SelectShape(shape measure.Shape) {
	m.shape = shape
}

// Quit asks the render loop to stop and release its resources
func (m *Machine) Quit() {
	m.quit = true
}

// QuitRequested reports whether Quit has been called
func (m *Machine) QuitRequested() bool {
	return m.quit
}

// Points returns a copy of the clicked points in order
func (m *Machine) Points() []image.Point {
	return append([]image.Point(nil), m.points...)
}

// Segments returns a copy of the drawn segments
func (m *Machine) Segments() []Segment {
	return append([]Segment(nil), m.segments...)
}

// History returns a copy of the undo history, oldest first
func (m *Machine) History() []Entry {
	return append([]Entry(nil), m.history...)
}

// Shape is the selected area formula
func (m *Machine) Shape() measure.Shape {
	return m.shape
}

// MeasureDistance is defined only when exactly two points exist
func (m *Machine) MeasureDistance() (measure.Distance, bool) {
	if len(m.points) != 2 {
		return measure.Distance{}, false
	}
	return m.calib.Distance(m.points[0], m.points[1]), true
}

// MeasureArea returns the area label for the current shape, or "" when no
// shape is selected or there are not enough points yet
func (m *Machine) MeasureArea() string {
	label, _ := m.calib.Area(m.shape, m.points)
	return label
}

// Summary is the text currently shown in the distance panel and area label,
// one item per line
func (m *Machine) Summary() string {
	var lines []string
	if d, ok := m.MeasureDistance(); ok {
		lines = append(lines, d.Lines()...)
	}
	if area := m.MeasureArea(); area != "" {
		lines = append(lines, area)
	}
	return strings.Join(lines, "\n")
}

func removeFirst[T comparable](items []T, v T) []T {
	for i, item := range items {
		if item == v {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
