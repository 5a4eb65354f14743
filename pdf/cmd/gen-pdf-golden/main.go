package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/qrpdf"
	"pkt.systems/qrpdf/pdf/internal/pdfgolden"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/qrpdf")
}

func main() {
	var (
		outDir  string
		only    string
		preview bool
		verbose bool
	)
	flags := pflag.NewFlagSet("gen-pdf-golden", pflag.ExitOnError)
	flags.StringVarP(&outDir, "out", "o", "", "Golden directory (default pdf/testdata/golden)")
	flags.StringVarP(&only, "sample", "s", "", "Only regenerate samples whose name contains this string")
	flags.BoolVarP(&preview, "preview", "p", false, "Print each symbol to the terminal")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log layout decisions")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: gen-pdf-golden [flags]\n")
		fmt.Fprintln(os.Stderr, "\nRenders every golden sample to PDF and rasterizes it with pdftoppm.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	qrpdf.SetLogger(slog.New(logger))

	if _, err := exec.LookPath("pdftoppm"); err != nil {
		logger.Error("pdftoppm not found in PATH")
		os.Exit(2)
	}
	nicePath, _ := exec.LookPath("nice")
	if outDir == "" {
		root, err := pdfgolden.TestdataRoot()
		if err != nil {
			logger.Error("find testdata root", "err", err)
			os.Exit(1)
		}
		outDir = filepath.Join(root, "golden")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Error("mkdir goldens", "err", err)
		os.Exit(1)
	}

	written := 0
	for _, sample := range pdfgolden.Samples() {
		if only != "" && !strings.Contains(sample.Name, only) {
			continue
		}
		if preview {
			layout, err := sample.Layout()
			if err != nil {
				logger.Error("layout", "sample", sample.Name, "err", err)
				os.Exit(1)
			}
			printPreview(sample.Name, layout.Matrix)
		}
		dst, err := generate(nicePath, outDir, sample)
		if err != nil {
			logger.Error("generate", "sample", sample.Name, "err", err)
			os.Exit(1)
		}
		logger.Info("wrote golden", "path", dst)
		written++
	}
	if written == 0 {
		logger.Warn("no samples matched", "sample", only)
	}
}

func generate(nicePath, outDir string, sample pdfgolden.Sample) (string, error) {
	tmpDir, err := os.MkdirTemp("", "qrpdf-pdf-golden-")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	pdfPath := filepath.Join(tmpDir, "out.pdf")
	f, err := os.Create(pdfPath)
	if err != nil {
		return "", fmt.Errorf("create pdf: %w", err)
	}
	if err := pdfgolden.RenderSamplePDF(f, sample); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("render pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close pdf: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	cmd := pdfgolden.PDFToPPMCommand(nicePath, pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %v\n%s", err, string(out))
	}
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return "", fmt.Errorf("glob pages: %w", err)
	}
	sort.Strings(pages)
	if len(pages) != 1 {
		return "", fmt.Errorf("pdftoppm produced %d pages, want 1", len(pages))
	}
	dst := filepath.Join(outDir, pdfgolden.GoldenName(sample.Name, 1))
	if err := pdfgolden.CopyFile(dst, pages[0]); err != nil {
		return "", fmt.Errorf("write golden: %w", err)
	}
	return dst, nil
}

// printPreview draws m on stdout, cut to the terminal width.
func printPreview(name string, m qrpdf.Matrix) {
	width := terminalWidth(defaultWidth)
	body := indent.String(m.String(), 2)
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d modules)\n", name, m.Size())
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		if ansi.PrintableRuneWidth(line) > width {
			line = truncate.String(line, uint(width))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprint(os.Stdout, b.String())
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
