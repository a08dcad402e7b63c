package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"Sketchpad/internal/board"
	"Sketchpad/internal/config"
)

// NewWindow lays out the toolbar above the board in a new window of a.
func NewWindow(a fyne.App, cfg *config.Config, b *board.Board) fyne.Window {
	w := a.NewWindow("Sketchpad")
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	surface := NewBoardWidget(b)
	toolbar := NewToolbar(b, w)
	bindShortcuts(w, toolbar)

	w.SetContent(container.NewBorder(toolbar.Object(), nil, nil, nil, container.NewCenter(surface)))
	return w
}

// RunApp opens the sketchpad window and blocks until it closes.
func RunApp(cfg *config.Config, b *board.Board) {
	NewWindow(app.NewWithID("io.sketchpad"), cfg, b).ShowAndRun()
}

func bindShortcuts(w fyne.Window, t *Toolbar) {
	c := w.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { t.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) { t.Redo() })
}
