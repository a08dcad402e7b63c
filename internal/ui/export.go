package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/sirupsen/logrus"

	"Sketchpad/internal/board"
	"Sketchpad/internal/export"
)

// savePNG asks where to write the PNG, starting in the configured export directory.
func savePNG(b *board.Board, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				logrus.WithError(err).Warn("closing export")
			}
		}()
		if err := b.ExportPNG(writer); err != nil {
			logrus.WithError(err).Error("png export failed")
			dialog.ShowError(err, win)
			return
		}
		logrus.WithField("uri", writer.URI().String()).Info("exported png")
	}, win)
	d.SetFileName(export.ImageFileName)
	startIn(d, b.ExportDir())
	d.Show()
}

// savePDF prints straight into the export directory.
func savePDF(b *board.Board, win fyne.Window) {
	path, err := b.SavePDF("")
	if err != nil {
		dialog.ShowError(err, win)
		return
	}
	dialog.ShowInformation("Printed", fmt.Sprintf("Saved %s", path), win)
}

func startIn(d *dialog.FileDialog, dir string) {
	uri, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		logrus.WithError(err).WithField("dir", dir).Debug("export dir not listable")
		return
	}
	d.SetLocation(uri)
}
