package pdf

// Config holds PDF document settings for Render.
type Config struct {
	PageSize string
	// PageWidth and PageHeight, in points, override PageSize when both are set.
	PageWidth     float64
	PageHeight    float64
	Margin        float64
	FillRGB       [3]int
	StrokeRGB     [3]int
	LineWidth     float64
	Layer         string
	OpenLayerPane bool
	NoCompression bool
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:  "A4",
		Margin:    36,
		FillRGB:   [3]int{0, 0, 0},
		StrokeRGB: [3]int{0, 0, 0},
		LineWidth: 0.5,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.PageWidth > 0 && src.PageHeight > 0 {
		dst.PageWidth = src.PageWidth
		dst.PageHeight = src.PageHeight
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.FillRGB != [3]int{} {
		dst.FillRGB = src.FillRGB
	}
	if src.StrokeRGB != [3]int{} {
		dst.StrokeRGB = src.StrokeRGB
	}
	if src.LineWidth > 0 {
		dst.LineWidth = src.LineWidth
	}
	if src.Layer != "" {
		dst.Layer = src.Layer
	}
	if src.OpenLayerPane {
		dst.OpenLayerPane = src.OpenLayerPane
	}
	if src.NoCompression {
		dst.NoCompression = src.NoCompression
	}
}

func validRGB(rgb [3]int) bool {
	for _, c := range rgb {
		if c < 0 || c > 255 {
			return false
		}
	}
	return true
}
