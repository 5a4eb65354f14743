package pdfgolden

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"pkt.systems/qrpdf"
	"pkt.systems/qrpdf/pdf"
)

const (
	pdfGoldenDPI      = 96
	pdfGoldenTol      = 2
	pdfGoldenMaxRatio = 0.0005
)

// Sample is a QR Code document used for PDF golden testing.
type Sample struct {
	Name       string
	Content    string
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Options    []qrpdf.Option
}

// Samples returns the golden samples in a stable order.
func Samples() []Sample {
	return []Sample{
		{
			Name:       "fit_center",
			Content:    "https://pkt.systems",
			PageWidth:  200,
			PageHeight: 200,
			Margin:     10,
			Options: []qrpdf.Option{
				qrpdf.WithFit(180, 180),
				qrpdf.WithPosition(qrpdf.Center),
				qrpdf.WithVPosition(qrpdf.Center),
			},
		},
		{
			Name:       "scale_bottom_right",
			Content:    "qrpdf",
			PageWidth:  240,
			PageHeight: 160,
			Margin:     12,
			Options: []qrpdf.Option{
				qrpdf.WithLevel(qrpdf.LevelH),
				qrpdf.WithScale(4),
				qrpdf.WithPosition(qrpdf.Right),
				qrpdf.WithVPosition(qrpdf.Bottom),
			},
		},
		{
			Name:       "width_offsets",
			Content:    strings.Repeat("vector modules, one rectangle each. ", 3),
			PageWidth:  220,
			PageHeight: 240,
			Margin:     8,
			Options: []qrpdf.Option{
				qrpdf.WithLevel(qrpdf.LevelQ),
				qrpdf.WithWidth(150),
				qrpdf.WithPosition(qrpdf.At(20)),
				qrpdf.WithVPosition(qrpdf.At(30)),
			},
		},
	}
}

// Layout is where a sample's symbol lands on its page, in y-up points.
type Layout struct {
	Matrix qrpdf.Matrix
	X      float64
	Y      float64
	DotW   float64
	DotH   float64
}

// Layout encodes the sample and computes its geometry the way Render does.
func (s Sample) Layout() (Layout, error) {
	o := qrpdf.NewOptions(s.Options...)
	m, err := qrpdf.Encode(o.Encoder, s.Content, o.Version, o.Level)
	if err != nil {
		return Layout{}, err
	}
	dotW, dotH, err := qrpdf.DotSize(m.Size(), m.Size(), o)
	if err != nil {
		return Layout{}, err
	}
	bounds := qrpdf.NewBounds(s.Margin, s.Margin, s.PageWidth-2*s.Margin, s.PageHeight-2*s.Margin)
	x, y, err := qrpdf.Anchor(float64(m.Size())*dotW, float64(m.Size())*dotH, o, bounds)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Matrix: m, X: x, Y: y, DotW: dotW, DotH: dotH}, nil
}

// TestdataRoot returns the absolute path of pdf/testdata.
func TestdataRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("pdfgolden: unable to resolve package path")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata"), nil
}

// PDFToPPMCommand returns the pdftoppm command used to rasterize PDFs.
func PDFToPPMCommand(nicePath, pdfPath, prefix string) *exec.Cmd {
	dpi := strconv.Itoa(pdfGoldenDPI)
	if nicePath != "" {
		return exec.Command(nicePath, "-n", "10", "pdftoppm", "-png", "-r", dpi, pdfPath, prefix)
	}
	return exec.Command("pdftoppm", "-png", "-r", dpi, pdfPath, prefix)
}

// RenderSamplePDF renders a sample into a PDF for golden comparison.
func RenderSamplePDF(w io.Writer, s Sample) error {
	cfg := pdf.DefaultConfig()
	cfg.PageWidth = s.PageWidth
	cfg.PageHeight = s.PageHeight
	cfg.Margin = s.Margin
	return pdf.Render(pdf.RenderRequest{
		Writer:  w,
		Content: s.Content,
		Config:  cfg,
		Options: s.Options,
	})
}

// GoldenName formats a golden PNG filename.
func GoldenName(name string, page int) string {
	return fmt.Sprintf("%s_p%d.png", name, page)
}

// CopyFile copies src to dst, creating parent directories as needed.
func CopyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// ComparePNG compares two PNGs and returns an error if they differ beyond tolerance.
func ComparePNG(gotPath, wantPath string) error {
	got, err := LoadPNG(gotPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", gotPath, err)
	}
	want, err := LoadPNG(wantPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", wantPath, err)
	}
	if got.Bounds() != want.Bounds() {
		return fmt.Errorf("bounds mismatch got=%v want=%v", got.Bounds(), want.Bounds())
	}
	diff := 0
	total := got.Bounds().Dx() * got.Bounds().Dy()
	for y := got.Bounds().Min.Y; y < got.Bounds().Max.Y; y++ {
		for x := got.Bounds().Min.X; x < got.Bounds().Max.X; x++ {
			r1, g1, b1, a1 := got.At(x, y).RGBA()
			r2, g2, b2, a2 := want.At(x, y).RGBA()
			if !rgbaClose(r1, r2) || !rgbaClose(g1, g2) || !rgbaClose(b1, b2) || !rgbaClose(a1, a2) {
				diff++
			}
		}
	}
	if diff == 0 {
		return nil
	}
	ratio := float64(diff) / float64(total)
	if ratio > pdfGoldenMaxRatio {
		return fmt.Errorf("pixel diff ratio %.4f exceeds %.4f", ratio, pdfGoldenMaxRatio)
	}
	return nil
}

// CheckModules samples img at the centre of every module of l and reports
// the first module whose darkness differs from the matrix. pageHeight is in
// points and scale is pixels per point.
func CheckModules(img image.Image, l Layout, pageHeight, scale float64) error {
	b := img.Bounds()
	top := pageHeight - l.Y
	for r, row := range l.Matrix {
		for c, on := range row {
			px := b.Min.X + int((l.X+(float64(c)+0.5)*l.DotW)*scale)
			py := b.Min.Y + int((top+(float64(r)+0.5)*l.DotH)*scale)
			if !(image.Point{X: px, Y: py}).In(b) {
				return fmt.Errorf("module %d,%d at pixel %d,%d is outside %v", r, c, px, py, b)
			}
			if dark := isDark(img, px, py); dark != on {
				return fmt.Errorf("module %d,%d at pixel %d,%d: dark=%v, want %v", r, c, px, py, dark, on)
			}
		}
	}
	return nil
}

// GoldenScale is the pixels-per-point factor of the rasterized goldens.
func GoldenScale() float64 {
	return float64(pdfGoldenDPI) / 72
}

func isDark(img image.Image, x, y int) bool {
	r, g, b, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return false
	}
	return r+g+b < 3*0x8000
}

func rgbaClose(a, b uint32) bool {
	av := int(a >> 8)
	bv := int(b >> 8)
	if av < bv {
		return bv-av <= pdfGoldenTol
	}
	return av-bv <= pdfGoldenTol
}

// LoadPNG decodes the PNG file at path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
