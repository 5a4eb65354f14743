// Package pdf draws QR Codes into PDF documents built with gofpdf.
//
// Canvas adapts a *gofpdf.Fpdf page to qrpdf.Canvas so Print and Render can
// draw into a document the caller owns. Render is a convenience that builds
// a complete one-page document around a single symbol.
//
// Example:
//
//	cfg := pdf.DefaultConfig()
//	cfg.PageSize = "A5"
//	cfg.FillRGB = [3]int{20, 20, 80}
//
//	err := pdf.Render(pdf.RenderRequest{
//		Writer:  outFile,
//		Content: "https://pkt.systems",
//		Config:  cfg,
//		Options: []qrpdf.Option{
//			qrpdf.WithFit(200, 200),
//			qrpdf.WithPosition(qrpdf.Center),
//			qrpdf.WithVPosition(qrpdf.Center),
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Fill and draw colours are document state: Canvas never changes them.
package pdf

//go:generate go run ./cmd/gen-pdf-golden
