package ui

import (
	"image"
	"time"
)

const (
	// AutoHideAfter is the idle time before the panel hides itself.
	AutoHideAfter = 3000 * time.Millisecond
	// HideGrace is how long hovering the panel is ignored after a hide, so the
	// panel does not pop back up under a still cursor.
	HideGrace = 1 * time.Second
)

// InviteArea is the top-left hitbox that brings a hidden panel back.
var InviteArea = image.Rect(0, 0, 100, 100)

// AutoHide tracks whether the settings panel is visible.
type AutoHide struct {
	Pinned bool

	now             func() time.Time
	lastInteraction time.Time
	hiddenAt        time.Time
	hidden          bool
}

func NewAutoHide(now func() time.Time) *AutoHide {
	if now == nil {
		now = time.Now
	}
	return &AutoHide{now: now, lastInteraction: now()}
}

func (a *AutoHide) Hidden() bool {
	return a.hidden
}

// Pointer reports a cursor move or click at p. panel is the panel's bounds
// when shown.
func (a *AutoHide) Pointer(p image.Point, panel image.Rectangle) {
	now := a.now()
	inGrace := a.hidden && now.Sub(a.hiddenAt) < HideGrace
	overPanel := p.In(panel) && !inGrace
	if !overPanel && !p.In(InviteArea) {
		return
	}
	a.lastInteraction = now
	a.hidden = false
}

// Touch counts as an interaction regardless of the cursor, e.g. a key press.
func (a *AutoHide) Touch() {
	a.lastInteraction = a.now()
	a.hidden = false
}

// Hide hides the panel now, even when pinned.
func (a *AutoHide) Hide() {
	if a.hidden {
		return
	}
	a.hidden = true
	a.hiddenAt = a.now()
}

// Tick hides the panel once it has been idle for AutoHideAfter.
func (a *AutoHide) Tick() {
	if a.Pinned || a.hidden {
		return
	}
	if a.now().Sub(a.lastInteraction) >= AutoHideAfter {
		a.Hide()
	}
}
