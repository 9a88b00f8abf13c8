// Package lights animates the decorative traffic light on the Signals pane.
package lights

import "time"

// Interval is the time between animation steps while the light is visible.
const Interval = 2 * time.Second

// Color is one lamp of the light.
type Color int

const (
	Red Color = iota
	Yellow
	Green
)

// Colors lists the lamps top to bottom.
func Colors() []Color {
	return []Color{Red, Yellow, Green}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Light cycles red, yellow, green. The zero value has no lamp lit; the first
// Step lights red.
type Light struct {
	lit  Color
	next Color
	on   bool
}

// Step lights the next lamp and turns the others off.
func (l *Light) Step() {
	l.lit = l.next
	l.on = true
	l.next = (l.next + 1) % Color(len(Colors()))
}

// Lit returns the lit lamp and whether any lamp is lit.
func (l Light) Lit() (Color, bool) {
	return l.lit, l.on
}

// IsLit reports whether c is the lit lamp.
func (l Light) IsLit(c Color) bool {
	return l.on && l.lit == c
}
