package export

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// PDFFileName is the fixed name of the printed canvas.
const PDFFileName = "canvas-image.pdf"

// pxToPt converts screen pixels (96 dpi) to PDF points.
const pxToPt = 72.0 / 96.0

// SavePDF prints img on a single page sized to fit it exactly.
func SavePDF(dir string, img image.Image) (string, error) {
	if err := checkDir(dir); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return "", err
	}

	w := float64(img.Bounds().Dx()) * pxToPt
	h := float64(img.Bounds().Dy()) * pxToPt

	// "L" would swap the custom size, so the page is always declared portrait.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)
	p.ImageOptions("canvas", 0, 0, w, h, false, opts, 0, "")

	path := filepath.Join(dir, PDFFileName)
	if err := p.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
