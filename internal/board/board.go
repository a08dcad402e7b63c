// Package board is the single owner of one sketchpad session: the surface,
// the tool selection, the undo history and the gesture controller.
package board

import (
	"fmt"
	"image"
	"io"

	"github.com/sirupsen/logrus"

	"Sketchpad/internal/config"
	"Sketchpad/internal/export"
	"Sketchpad/internal/gesture"
	"Sketchpad/internal/history"
	"Sketchpad/internal/state"
	"Sketchpad/internal/surface"
)

// Board is created once at startup and lives as long as the window.
// It is not safe for concurrent use; UI callbacks must be serialised.
type Board struct {
	session *state.Session
	surface *surface.Surface
	tools   *state.Tools
	history *history.Stack
	ctl     *gesture.Controller

	exportDir string
	listeners []func()
	log       *logrus.Entry
}

// New builds a board from configuration.
func New(cfg *config.Config) (*Board, error) {
	bg, err := state.ParseHexColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	fg, err := state.ParseHexColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	tool, err := state.ParseTool(cfg.Tool)
	if err != nil {
		return nil, fmt.Errorf("tool: %w", err)
	}

	w, h := cfg.SurfaceSize()
	session := state.NewSession()
	b := &Board{
		session:   session,
		surface:   surface.New(w, h, bg),
		tools:     state.NewTools(fg, cfg.StrokeWidth, cfg.Fill),
		history:   history.New(cfg.HistoryLimit),
		exportDir: cfg.ExportDir,
		log:       logrus.WithField("session", session.ID),
	}
	b.tools.SetTool(tool)
	b.ctl = gesture.New(b.surface, b.history, b.tools, session)

	b.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("board created")
	return b, nil
}

func (b *Board) Tools() *state.Tools         { return b.tools }
func (b *Board) Session() *state.Session     { return b.session }
func (b *Board) Size() (int, int)            { return b.surface.Size() }
func (b *Board) ExportDir() string           { return b.exportDir }
func (b *Board) Dragging() bool              { return b.ctl.Dragging() }
func (b *Board) CanUndo() bool               { return b.history.CanUndo() }
func (b *Board) CanRedo() bool               { return b.history.CanRedo() }
func (b *Board) Snapshot() *surface.Snapshot { return b.surface.Snapshot() }

// OnChange registers fn to run after every visible change to the surface.
func (b *Board) OnChange(fn func()) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) PointerDown(x, y float64) {
	b.ctl.PointerDown(surface.Pt(x, y))
	b.changed()
}

func (b *Board) PointerMove(x, y float64) {
	if !b.ctl.Dragging() {
		return
	}
	b.ctl.PointerMove(surface.Pt(x, y))
	b.changed()
}

func (b *Board) PointerUp(x, y float64) {
	if !b.ctl.Dragging() {
		return
	}
	b.ctl.PointerUp(surface.Pt(x, y))
	b.changed()
}

func (b *Board) PointerLeave(x, y float64) {
	if !b.ctl.Dragging() {
		return
	}
	b.ctl.PointerLeave(surface.Pt(x, y))
	b.changed()
}

// Undo restores the canvas from before the latest gesture. Empty history is a no-op.
// The restore completes before Undo returns.
func (b *Board) Undo() {
	b.step("undo", b.history.Undo)
}

// Redo reapplies the state that the latest Undo replaced.
func (b *Board) Redo() {
	b.step("redo", b.history.Redo)
}

func (b *Board) step(op string, move func(*surface.Snapshot) (*surface.Snapshot, bool)) {
	b.ctl.Cancel()
	snap, ok := move(b.surface.Snapshot())
	if !ok {
		return
	}
	if err := b.surface.Restore(snap); err != nil {
		b.log.WithError(err).Warnf("%s: restore failed", op)
		return
	}
	b.log.WithFields(logrus.Fields{
		"undos": b.history.UndoDepth(),
		"redos": b.history.RedoDepth(),
	}).Debug(op)
	b.changed()
}

// Clear wipes the surface and forgets all history.
func (b *Board) Clear() {
	b.ctl.Cancel()
	b.surface.Clear()
	b.history.Reset()
	b.log.Info("board cleared")
	b.changed()
}

// Image is a copy of the current pixels.
func (b *Board) Image() image.Image {
	return b.surface.Image()
}

// ExportPNG writes the whole surface as PNG.
func (b *Board) ExportPNG(w io.Writer) error {
	return b.surface.EncodePNG(w)
}

// SavePNG writes canvas-image.png into dir (the configured export dir when empty).
func (b *Board) SavePNG(dir string) (string, error) {
	path, err := export.SavePNG(b.dirOr(dir), b.surface.Image())
	if err != nil {
		return "", err
	}
	b.log.WithField("path", path).Info("exported png")
	return path, nil
}

// SavePDF writes the surface as a single-page PDF into dir.
func (b *Board) SavePDF(dir string) (string, error) {
	path, err := export.SavePDF(b.dirOr(dir), b.surface.Image())
	if err != nil {
		return "", err
	}
	b.log.WithField("path", path).Info("exported pdf")
	return path, nil
}

func (b *Board) dirOr(dir string) string {
	if dir == "" {
		return b.exportDir
	}
	return dir
}

func (b *Board) changed() {
	for _, fn := range b.listeners {
		fn()
	}
}
