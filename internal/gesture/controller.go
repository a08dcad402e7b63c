// Package gesture turns pointer events into drawing on a surface.
package gesture

import (
	"image/color"

	"github.com/sirupsen/logrus"

	"Sketchpad/internal/history"
	"Sketchpad/internal/state"
	"Sketchpad/internal/surface"
)

// pointer is the per-gesture state, alive from pointer-down to pointer-up.
// pre is the canvas before the gesture; shape previews redraw from it.
type pointer struct {
	seq    uint64
	tool   state.Tool
	anchor surface.Point
	pre    *surface.Snapshot
}

// Controller is the Idle/Dragging state machine. A nil active pointer means Idle.
type Controller struct {
	surface    *surface.Surface
	history    *history.Stack
	tools      *state.Tools
	session    *state.Session
	background color.Color

	active *pointer
	log    *logrus.Entry
}

func New(s *surface.Surface, h *history.Stack, tools *state.Tools, session *state.Session) *Controller {
	return &Controller{
		surface:    s,
		history:    h,
		tools:      tools,
		session:    session,
		background: s.Background(),
		log:        logrus.WithField("session", session.ID),
	}
}

// Dragging reports whether a gesture is in progress.
func (c *Controller) Dragging() bool { return c.active != nil }

// PointerDown starts a gesture at p. A second down while dragging is ignored.
func (c *Controller) PointerDown(p surface.Point) {
	if c.active != nil {
		return
	}
	pre := c.surface.Snapshot()
	c.active = &pointer{
		seq:    c.session.NextGesture(),
		tool:   c.tools.Tool(),
		anchor: p,
		pre:    pre,
	}
	if !c.active.tool.IsShape() {
		c.surface.BeginPath(p)
	}
	c.history.Checkpoint(pre)

	c.entry().WithFields(logrus.Fields{
		"tool":  c.active.tool,
		"x":     p.X,
		"y":     p.Y,
		"undos": c.history.UndoDepth(),
	}).Debug("gesture started")
}

// PointerMove extends a stroke or re-renders the shape preview. Idle moves are ignored.
func (c *Controller) PointerMove(p surface.Point) {
	g := c.active
	if g == nil {
		return
	}
	st := c.style()
	if !g.tool.IsShape() {
		c.report(c.surface.StrokeLineTo(p, st))
		return
	}
	if err := c.surface.Restore(g.pre); err != nil {
		c.report(err)
		return
	}
	c.report(drawShape(c.surface, g.tool, g.anchor, p, st, false, false))
}

// PointerUp finishes the gesture at p.
func (c *Controller) PointerUp(p surface.Point) {
	c.finish(p, "pointer up")
}

// PointerLeave finishes the gesture at p when the pointer exits the surface.
func (c *Controller) PointerLeave(p surface.Point) {
	c.finish(p, "pointer left")
}

func (c *Controller) finish(p surface.Point, reason string) {
	g := c.active
	if g == nil {
		return
	}
	if g.tool.IsShape() {
		if err := c.surface.Restore(g.pre); err != nil {
			c.report(err)
		}
		c.report(drawShape(c.surface, g.tool, g.anchor, p, c.style(), c.tools.Fill(), true))
	}
	c.surface.EndPath()
	c.entry().WithField("reason", reason).Debug("gesture finished")
	c.active = nil
}

// Cancel drops any gesture in progress. A shape preview is wiped back to the
// canvas from before the drag; freehand segments already drawn stay.
func (c *Controller) Cancel() {
	g := c.active
	if g == nil {
		return
	}
	if g.tool.IsShape() {
		c.report(c.surface.Restore(g.pre))
	}
	c.surface.EndPath()
	c.active = nil
}

func (c *Controller) style() surface.Style {
	return surface.Style{
		Color: c.tools.StrokeColor(c.background),
		Width: c.tools.Width(),
	}
}

func (c *Controller) entry() *logrus.Entry {
	if c.active == nil {
		return c.log
	}
	return c.log.WithField("gesture", c.active.seq)
}

// report logs draw failures. They never interrupt the gesture.
func (c *Controller) report(err error) {
	if err != nil {
		c.entry().WithError(err).Warn("draw failed")
	}
}
