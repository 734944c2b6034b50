package controls

import (
	"fmt"
	"image"
	"strings"
)

// Action identifies what a button does when clicked
type Action int

const (
	ActionReset Action = iota
	ActionUndo
	ActionCircle
	ActionRectangle
	ActionSquare
	ActionQuit
)

var actionNames = map[Action]string{
	ActionReset:     "Reset",
	ActionUndo:      "Undo",
	ActionCircle:    "Circle",
	ActionRectangle: "Rectangle",
	ActionSquare:    "Square",
	ActionQuit:      "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction maps a button label to its action, ignoring case
func ParseAction(label string) (Action, error) {
	for action, name := range actionNames {
		if strings.EqualFold(name, strings.TrimSpace(label)) {
			return action, nil
		}
	}
	return 0, fmt.Errorf("unknown button label %q", label)
}

// Box is a screen rectangle whose edges all count as inside
type Box struct {
	X1, Y1, X2, Y2 int
}

// Contains reports whether (x, y) lies inside the box, edges inclusive
func (b Box) Contains(x, y int) bool {
	return b.X1 <= x && x <= b.X2 && b.Y1 <= y && y <= b.Y2
}

// Rect converts the box to an image.Rectangle for drawing
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Button is a named screen region bound to a fixed action
type Button struct {
	Label  string
	Action Action
	Box    Box
}

// Bar is the ordered set of on-screen buttons. Order decides which button
// wins if two boxes overlap.
type Bar struct {
	buttons []Button
}

// DefaultButtons returns the standard six-button row drawn at the top-left
func DefaultButtons() []Button {
	return []Button{
		{Label: "Reset", Action: ActionReset, Box: Box{10, 10, 110, 50}},
		{Label: "Undo", Action: ActionUndo, Box: Box{120, 10, 220, 50}},
		{Label: "Circle", Action: ActionCircle, Box: Box{230, 10, 330, 50}},
		{Label: "Rectangle", Action: ActionRectangle, Box: Box{340, 10, 470, 50}},
		{Label: "Square", Action: ActionSquare, Box: Box{480, 10, 580, 50}},
		{Label: "Quit", Action: ActionQuit, Box: Box{590, 10, 690, 50}},
	}
}

// NewBar builds a bar from the given buttons, keeping their order
func NewBar(buttons []Button) (*Bar, error) {
	if len(buttons) == 0 {
		return nil, fmt.Errorf("button bar needs at least one button")
	}
	for _, b := range buttons {
		if b.Box.X2 <= b.Box.X1 || b.Box.Y2 <= b.Box.Y1 {
			return nil, fmt.Errorf("button %q has an empty box %+v", b.Label, b.Box)
		}
	}

	bar := &Bar{buttons: make([]Button, len(buttons))}
	copy(bar.buttons, buttons)
	return bar, nil
}

// DefaultBar returns a bar with the standard layout
func DefaultBar() *Bar {
	bar, _ := NewBar(DefaultButtons())
	return bar
}

// Locate returns the first button whose box contains (x, y)
func (b *Bar) Locate(x, y int) (Button, bool) {
	for _, btn := range b.buttons {
		if btn.Box.Contains(x, y) {
			return btn, true
		}
	}
	return Button{}, false
}

// Buttons returns a copy of the buttons in declaration order
func (b *Bar) Buttons() []Button {
	out := make([]Button, len(b.buttons))
	copy(out, b.buttons)
	return out
}
