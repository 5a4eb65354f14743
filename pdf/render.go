package pdf

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/qrpdf"
)

// RenderRequest contains inputs for PDF rendering. Exactly one of Content
// and Matrix is drawn; Matrix wins when both are set.
type RenderRequest struct {
	Writer  io.Writer
	Content string
	Matrix  qrpdf.Matrix
	Config  Config
	Options []qrpdf.Option
}

// Render writes a one-page PDF with a single QR Code.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	if req.Matrix == nil && req.Content == "" {
		return fmt.Errorf("pdf render: content is empty")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if !validRGB(cfg.FillRGB) || !validRGB(cfg.StrokeRGB) {
		return fmt.Errorf("pdf render: colour components must be within 0-255")
	}
	if math.IsInf(cfg.Margin, 0) {
		return fmt.Errorf("pdf render: invalid margin %v", cfg.Margin)
	}
	if cfg.OpenLayerPane && cfg.Layer == "" {
		return fmt.Errorf("pdf render: layer pane requested without a layer")
	}

	pdf := newDocument(cfg)
	pdf.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	pdf.SetAutoPageBreak(false, cfg.Margin)
	pdf.SetCompression(!cfg.NoCompression)
	layer := -1
	if cfg.Layer != "" {
		layer = pdf.AddLayer(cfg.Layer, true)
		if cfg.OpenLayerPane {
			pdf.OpenLayerPane()
		}
	}
	pdf.AddPage()
	pdf.SetFillColor(cfg.FillRGB[0], cfg.FillRGB[1], cfg.FillRGB[2])
	pdf.SetDrawColor(cfg.StrokeRGB[0], cfg.StrokeRGB[1], cfg.StrokeRGB[2])
	pdf.SetLineWidth(cfg.LineWidth)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf render: page setup failed: %w", err)
	}

	if layer >= 0 {
		pdf.BeginLayer(layer)
	}
	canvas := NewCanvas(pdf)
	var err error
	if req.Matrix != nil {
		err = qrpdf.Render(canvas, req.Matrix, req.Options...)
	} else {
		err = qrpdf.Print(canvas, req.Content, req.Options...)
	}
	if layer >= 0 {
		pdf.EndLayer()
	}
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := pdf.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

func newDocument(cfg Config) *gofpdf.Fpdf {
	if cfg.PageWidth > 0 && cfg.PageHeight > 0 {
		return gofpdf.NewCustom(&gofpdf.InitType{
			OrientationStr: "P",
			UnitStr:        "pt",
			Size:           gofpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
		})
	}
	return gofpdf.New("P", "pt", cfg.PageSize, "")
}
