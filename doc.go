// Package qrpdf draws QR Codes as vector rectangles on a page.
//
// Symbol encoding is delegated to an Encoder (github.com/skip2/go-qrcode by
// default) and drawing to a Canvas supplied by the host document library.
// qrpdf itself picks the symbol version, computes the module size and the
// position of the symbol on the page, and fills one rectangle per dark
// module.
//
// Core properties:
//   - Encoding retries at the next version until the content fits (max 40)
//   - Sizing by explicit dot, width, height, scale or fit-in-box
//   - Placement by alignment (left/center/right, top/center/bottom), offset
//     or explicit top-left corner
//   - One fill call per dark module, top row first
//
// Example:
//
//	f := gofpdf.New("P", "pt", "A4", "")
//	f.AddPage()
//	f.SetFillColor(0, 0, 0)
//	err := qrpdf.Print(pdf.NewCanvas(f), "https://pkt.systems",
//		qrpdf.WithLevel(qrpdf.LevelH),
//		qrpdf.WithFit(144, 144),
//		qrpdf.WithPosition(qrpdf.Center),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Pre-encoded symbols are drawn with Render.
package qrpdf
