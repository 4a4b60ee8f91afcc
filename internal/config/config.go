package config

import (
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/plotview/internal/config/layer"
	"github.com/dshills/plotview/internal/config/loader"
)

// Config is the effective configuration after merging every layer.
//
// A Config is immutable once returned by Load; a reload produces a new one.
type Config struct {
	Preview    PreviewConfig
	Layout     LayoutConfig
	Editor     EditorConfig
	Export     ExportConfig
	Theme      ThemeConfig
	ProjectURL string

	// Path is the config file that was read, or "" when none was found.
	Path string

	// Problems lists settings that were rejected and replaced by defaults.
	Problems []error

	layers *layer.Manager
	values map[string]any
}

// Options controls where Load looks for settings.
type Options struct {
	// Path names the config file explicitly. It must exist.
	Path string
	// Dir is searched for config.toml, config.yaml or config.yml when Path
	// is empty. Defaults to DefaultDir().
	Dir string
	// FS is the file system to read from. Defaults to the OS.
	FS loader.FileSystem
	// EnvPrefix overrides loader.DefaultEnvPrefix.
	EnvPrefix string
	// NoEnv skips the environment layer.
	NoEnv bool
	// Overrides are dotted paths set from command line flags.
	Overrides map[string]any
}

// DefaultDir returns the per-user config directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "plotview")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "plotview")
}

// Default returns the built-in configuration.
func Default() *Config {
	m := layer.NewManager()
	m.AddLayer(layer.New(layer.SourceBuiltin, DefaultMap()))
	return build(m, "")
}

// Load reads every layer and returns the merged configuration. Parse
// failures are returned as *ParseError; out-of-range values are not errors
// and end up in Config.Problems.
func Load(opts Options) (*Config, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	m := layer.NewManager()
	m.AddLayer(layer.New(layer.SourceBuiltin, DefaultMap()))

	path, err := resolvePath(fsys, opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		fl, err := loader.ForPath(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		data, err := fl.Load()
		if err != nil {
			return nil, err
		}
		l := layer.New(layer.SourceFile, data)
		l.Path = path
		m.AddLayer(l)
	}

	if !opts.NoEnv {
		prefix := opts.EnvPrefix
		if prefix == "" {
			prefix = loader.DefaultEnvPrefix
		}
		data, err := loader.NewEnvLoader(prefix).Load()
		if err != nil {
			return nil, fmt.Errorf("environment: %w", err)
		}
		if len(data) > 0 {
			m.AddLayer(layer.New(layer.SourceEnv, data))
		}
	}

	if len(opts.Overrides) > 0 {
		data := make(map[string]any)
		for p, v := range opts.Overrides {
			layer.SetByPath(data, p, v)
		}
		m.AddLayer(layer.New(layer.SourceFlags, data))
	}

	return build(m, path), nil
}

func resolvePath(fsys loader.FileSystem, opts Options) (string, error) {
	if opts.Path != "" {
		if _, err := fsys.Stat(opts.Path); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, opts.Path)
			}
			return "", fmt.Errorf("config %s: %w", opts.Path, err)
		}
		return opts.Path, nil
	}
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir()
	}
	return loader.Find(fsys, dir), nil
}

func build(m *layer.Manager, path string) *Config {
	values := m.Merge()
	d := &decoder{values: values}
	cfg := &Config{
		Preview: PreviewConfig{
			DefaultWidth:  d.int("preview.default_width", DefaultWidth),
			DefaultHeight: d.int("preview.default_height", DefaultHeight),
			MinDimension:  d.int("preview.min_dimension", DefaultMinDimension),
			CellWidthPx:   d.int("preview.cell_width_px", DefaultCellWidthPx),
			CellHeightPx:  d.int("preview.cell_height_px", DefaultCellHeightPx),
		},
		Layout: LayoutConfig{
			InitialSplit: d.int("layout.initial_split", DefaultInitialSplit),
			MinSplit:     d.int("layout.min_split", DefaultMinSplit),
			MaxSplit:     d.int("layout.max_split", DefaultMaxSplit),
		},
		Editor: EditorConfig{
			CopiedDuration: d.duration("editor.copied_duration", DefaultCopiedDuration),
			TabWidth:       d.int("editor.tab_width", DefaultTabWidth),
		},
		Export: ExportConfig{
			Dir:    d.string("export.dir", DefaultExportDir),
			Format: d.string("export.format", DefaultExportFormat),
		},
		ProjectURL: d.string("project_url", DefaultProjectURL),
		Path:       path,
		layers:     m,
		values:     values,
	}
	def := DefaultTheme()
	cfg.Theme = ThemeConfig{
		TopBar:            d.string("theme.topbar", def.TopBar),
		EditorBackground:  d.string("theme.editor_background", def.EditorBackground),
		PreviewBackground: d.string("theme.preview_background", def.PreviewBackground),
		StatusBar:         d.string("theme.status_bar", def.StatusBar),
		Accent:            d.string("theme.accent", def.Accent),
		Error:             d.string("theme.error", def.Error),
	}
	cfg.Problems = append(d.problems, cfg.validate()...)
	return cfg
}

// Origin returns the name of the layer that supplied path, e.g. "file" or
// "environment".
func (c *Config) Origin(path string) string {
	if c.layers == nil {
		return ""
	}
	return c.layers.WhichLayer(path)
}

// Values returns a copy of the merged settings map.
func (c *Config) Values() map[string]any {
	out := make(map[string]any)
	return layer.DeepMerge(out, c.values)
}

// Changed returns the dotted paths whose merged value differs from prev.
func (c *Config) Changed(prev *Config) []string {
	if prev == nil {
		return layer.DiffMaps(nil, c.values)
	}
	return layer.DiffMaps(prev.values, c.values)
}

// MarshalTOML renders the merged settings as a TOML document.
func (c *Config) MarshalTOML() ([]byte, error) {
	return toml.Marshal(c.values)
}

// validate replaces out-of-range values with defaults.
func (c *Config) validate() []error {
	var errs []error
	reject := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	p := &c.Preview
	if p.MinDimension < 1 {
		reject("preview.min_dimension", "must be at least 1", p.MinDimension)
		p.MinDimension = DefaultMinDimension
	}
	if p.DefaultWidth < p.MinDimension {
		reject("preview.default_width", "below min_dimension", p.DefaultWidth)
		p.DefaultWidth = max(DefaultWidth, p.MinDimension)
	}
	if p.DefaultHeight < p.MinDimension {
		reject("preview.default_height", "below min_dimension", p.DefaultHeight)
		p.DefaultHeight = max(DefaultHeight, p.MinDimension)
	}
	if p.CellWidthPx < 1 {
		reject("preview.cell_width_px", "must be at least 1", p.CellWidthPx)
		p.CellWidthPx = DefaultCellWidthPx
	}
	if p.CellHeightPx < 1 {
		reject("preview.cell_height_px", "must be at least 1", p.CellHeightPx)
		p.CellHeightPx = DefaultCellHeightPx
	}

	l := &c.Layout
	if l.MinSplit < DefaultMinSplit || l.MaxSplit > DefaultMaxSplit || l.MinSplit >= l.MaxSplit {
		reject("layout", fmt.Sprintf("split bounds must satisfy %d <= min_split < max_split <= %d", DefaultMinSplit, DefaultMaxSplit),
			fmt.Sprintf("%d..%d", l.MinSplit, l.MaxSplit))
		l.MinSplit = max(l.MinSplit, DefaultMinSplit)
		l.MaxSplit = min(l.MaxSplit, DefaultMaxSplit)
		if l.MinSplit >= l.MaxSplit {
			l.MinSplit, l.MaxSplit = DefaultMinSplit, DefaultMaxSplit
		}
	}
	if l.InitialSplit < l.MinSplit || l.InitialSplit > l.MaxSplit {
		reject("layout.initial_split", "outside split bounds", l.InitialSplit)
		l.InitialSplit = min(max(DefaultInitialSplit, l.MinSplit), l.MaxSplit)
	}

	e := &c.Editor
	if e.CopiedDuration <= 0 {
		reject("editor.copied_duration", "must be positive", e.CopiedDuration)
		e.CopiedDuration = DefaultCopiedDuration
	}
	if e.TabWidth < 1 || e.TabWidth > 8 {
		reject("editor.tab_width", "must be between 1 and 8", e.TabWidth)
		e.TabWidth = DefaultTabWidth
	}

	x := &c.Export
	x.Format = strings.ToLower(strings.TrimSpace(x.Format))
	if x.Format != "png" && x.Format != "svg" {
		reject("export.format", `must be "png" or "svg"`, x.Format)
		x.Format = DefaultExportFormat
	}
	if strings.TrimSpace(x.Dir) == "" {
		x.Dir = DefaultExportDir
	}

	if u, err := url.Parse(c.ProjectURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		reject("project_url", "must be an http or https URL", c.ProjectURL)
		c.ProjectURL = DefaultProjectURL
	}

	def := DefaultTheme()
	colours := []struct {
		path string
		val  *string
		def  string
	}{
		{"theme.topbar", &c.Theme.TopBar, def.TopBar},
		{"theme.editor_background", &c.Theme.EditorBackground, def.EditorBackground},
		{"theme.preview_background", &c.Theme.PreviewBackground, def.PreviewBackground},
		{"theme.status_bar", &c.Theme.StatusBar, def.StatusBar},
		{"theme.accent", &c.Theme.Accent, def.Accent},
		{"theme.error", &c.Theme.Error, def.Error},
	}
	for _, col := range colours {
		if _, err := colorful.Hex(*col.val); err != nil {
			reject(col.path, "not a #rrggbb colour", *col.val)
			*col.val = col.def
		}
	}
	return errs
}

// decoder reads typed values out of a merged map, recording type errors.
type decoder struct {
	values   map[string]any
	problems []error
}

func (d *decoder) fail(path string, v any, want string) {
	d.problems = append(d.problems, &ValidationError{Path: path, Message: "expected " + want, Value: v})
}

func (d *decoder) int(path string, def int) int {
	v, ok := layer.GetByPath(d.values, path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		if n <= math.MaxInt32 {
			return int(n)
		}
	case float64:
		if n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32 {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	d.fail(path, v, "an integer")
	return def
}

func (d *decoder) string(path, def string) string {
	v, ok := layer.GetByPath(d.values, path)
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case int, int64, float64, bool:
		return fmt.Sprint(s)
	}
	d.fail(path, v, "a string")
	return def
}

// duration accepts Go duration strings; bare numbers are seconds.
func (d *decoder) duration(path string, def time.Duration) time.Duration {
	v, ok := layer.GetByPath(d.values, path)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case time.Duration:
		return t
	case string:
		if dur, err := time.ParseDuration(strings.TrimSpace(t)); err == nil {
			return dur
		}
	case int:
		return time.Duration(t) * time.Second
	case int64:
		return time.Duration(t) * time.Second
	case float64:
		return time.Duration(t * float64(time.Second))
	}
	d.fail(path, v, "a duration")
	return def
}
