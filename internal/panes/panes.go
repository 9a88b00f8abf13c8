// Package panes tracks which tab pane is active.
package panes

import (
	"fmt"
	"strings"
)

// ID identifies a pane.
type ID string

const (
	Overview ID = "overview"
	Signals  ID = "signals"
	Hiring   ID = "hiring"
)

// Pane is one tab with its button label.
type Pane struct {
	ID    ID
	Label string
}

// Default returns the application's panes in tab order.
func Default() []Pane {
	return []Pane{
		{ID: Overview, Label: "Overview"},
		{ID: Signals, Label: "Simple Signals"},
		{ID: Hiring, Label: "Hiring Map"},
	}
}

// Transition describes an activation. From is empty when nothing was active.
type Transition struct {
	From ID
	To   ID
}

// Changed reports whether the active pane changed.
func (t Transition) Changed() bool { return t.From != t.To }

// Entered reports whether the transition made id active.
func (t Transition) Entered(id ID) bool { return t.To == id && t.From != id }

// Controller keeps exactly one pane active.
type Controller struct {
	panes  []Pane
	active int
}

// New builds a controller over panes with initial active. An empty initial
// activates the first pane.
func New(panes []Pane, initial ID) (*Controller, error) {
	if len(panes) == 0 {
		return nil, fmt.Errorf("no panes")
	}
	c := &Controller{panes: panes}
	if initial == "" {
		return c, nil
	}
	idx := c.index(initial)
	if idx < 0 {
		return nil, fmt.Errorf("unknown pane %q", initial)
	}
	c.active = idx
	return c, nil
}

// ParseID resolves a pane name, accepting ids and labels case-insensitively.
func ParseID(panes []Pane, name string) (ID, error) {
	trimmed := strings.TrimSpace(name)
	for _, p := range panes {
		if strings.EqualFold(string(p.ID), trimmed) || strings.EqualFold(p.Label, trimmed) {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("unknown pane %q", name)
}

// Panes returns the panes in tab order.
func (c *Controller) Panes() []Pane {
	out := make([]Pane, len(c.panes))
	copy(out, c.panes)
	return out
}

// Active returns the active pane.
func (c *Controller) Active() Pane { return c.panes[c.active] }

// IsActive reports whether id is the active pane.
func (c *Controller) IsActive(id ID) bool { return c.panes[c.active].ID == id }

// Activate deactivates every pane and activates id.
func (c *Controller) Activate(id ID) (Transition, error) {
	idx := c.index(id)
	if idx < 0 {
		return Transition{}, fmt.Errorf("unknown pane %q", id)
	}
	from := c.panes[c.active].ID
	c.active = idx
	return Transition{From: from, To: id}, nil
}

// ActivateIndex activates the pane at position i (0-based).
func (c *Controller) ActivateIndex(i int) (Transition, error) {
	if i < 0 || i >= len(c.panes) {
		return Transition{}, fmt.Errorf("pane index %d out of range", i)
	}
	return c.Activate(c.panes[i].ID)
}

// Next activates the following pane, wrapping around.
func (c *Controller) Next() Transition {
	t, _ := c.ActivateIndex((c.active + 1) % len(c.panes))
	return t
}

// Prev activates the preceding pane, wrapping around.
func (c *Controller) Prev() Transition {
	t, _ := c.ActivateIndex((c.active - 1 + len(c.panes)) % len(c.panes))
	return t
}

func (c *Controller) index(id ID) int {
	for i, p := range c.panes {
		if p.ID == id {
			return i
		}
	}
	return -1
}
