package config

import "time"

// PreviewConfig holds the chart pane settings.
type PreviewConfig struct {
	// DefaultWidth and DefaultHeight are the initial chart size in pixels.
	DefaultWidth  int
	DefaultHeight int
	// MinDimension is the smallest accepted width or height.
	MinDimension int
	// CellWidthPx and CellHeightPx are the pixel size of one terminal cell.
	CellWidthPx  int
	CellHeightPx int
}

// LayoutConfig holds the split pane settings, as percentages of the width.
type LayoutConfig struct {
	InitialSplit int
	MinSplit     int
	MaxSplit     int
}

// EditorConfig holds the document editor settings.
type EditorConfig struct {
	// CopiedDuration is how long the Copy button reads "Copied".
	CopiedDuration time.Duration
	// TabWidth is the number of spaces inserted for Tab.
	TabWidth int
}

// ExportConfig holds the defaults for Ctrl+E and the export command.
type ExportConfig struct {
	Dir    string
	Format string // "png" or "svg"
}

// ThemeConfig holds the interface colours as "#rrggbb" strings.
type ThemeConfig struct {
	TopBar            string
	EditorBackground  string
	PreviewBackground string
	StatusBar         string
	Accent            string
	Error             string
}

// Built-in defaults.
const (
	DefaultWidth          = 700
	DefaultHeight         = 500
	DefaultMinDimension   = 100
	DefaultCellWidthPx    = 8
	DefaultCellHeightPx   = 16
	DefaultInitialSplit   = 50
	DefaultMinSplit       = 5
	DefaultMaxSplit       = 95
	DefaultCopiedDuration = 3 * time.Second
	DefaultTabWidth       = 2
	DefaultExportDir      = "."
	DefaultExportFormat   = "png"
	DefaultProjectURL     = "https://github.com/tnpaul/PlotlyChartPreviewer"
)

// DefaultTheme returns the built-in colours.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		TopBar:            "#005a94",
		EditorBackground:  "#0f172a",
		PreviewBackground: "#f8fafc",
		StatusBar:         "#1e293b",
		Accent:            "#60a5fa",
		Error:             "#f87171",
	}
}

// DefaultMap returns the built-in defaults in the same shape a config file
// uses.
func DefaultMap() map[string]any {
	theme := DefaultTheme()
	return map[string]any{
		"project_url": DefaultProjectURL,
		"preview": map[string]any{
			"default_width":  DefaultWidth,
			"default_height": DefaultHeight,
			"min_dimension":  DefaultMinDimension,
			"cell_width_px":  DefaultCellWidthPx,
			"cell_height_px": DefaultCellHeightPx,
		},
		"layout": map[string]any{
			"initial_split": DefaultInitialSplit,
			"min_split":     DefaultMinSplit,
			"max_split":     DefaultMaxSplit,
		},
		"editor": map[string]any{
			"copied_duration": DefaultCopiedDuration.String(),
			"tab_width":       DefaultTabWidth,
		},
		"export": map[string]any{
			"dir":    DefaultExportDir,
			"format": DefaultExportFormat,
		},
		"theme": map[string]any{
			"topbar":             theme.TopBar,
			"editor_background":  theme.EditorBackground,
			"preview_background": theme.PreviewBackground,
			"status_bar":         theme.StatusBar,
			"accent":             theme.Accent,
			"error":              theme.Error,
		},
	}
}
