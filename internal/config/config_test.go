package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

type memFS struct {
	files map[string]string
}

func newMemFS(files map[string]string) *memFS {
	return &memFS{files: files}
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m *memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return fileInfo(path), nil
	}
	return nil, fs.ErrNotExist
}

type fileInfo string

func (f fileInfo) Name() string       { return string(f) }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Problems) != 0 {
		t.Fatalf("Problems = %v, want none", cfg.Problems)
	}
	if cfg.Preview.DefaultWidth != 700 || cfg.Preview.DefaultHeight != 500 {
		t.Errorf("default size = %dx%d, want 700x500", cfg.Preview.DefaultWidth, cfg.Preview.DefaultHeight)
	}
	if cfg.Preview.MinDimension != 100 {
		t.Errorf("MinDimension = %d, want 100", cfg.Preview.MinDimension)
	}
	if cfg.Layout.InitialSplit != 50 || cfg.Layout.MinSplit != 5 || cfg.Layout.MaxSplit != 95 {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if cfg.Editor.CopiedDuration != 3*time.Second {
		t.Errorf("CopiedDuration = %v, want 3s", cfg.Editor.CopiedDuration)
	}
	if cfg.Export.Format != "png" || cfg.Export.Dir != "." {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if cfg.ProjectURL != DefaultProjectURL {
		t.Errorf("ProjectURL = %q", cfg.ProjectURL)
	}
	if cfg.Theme != DefaultTheme() {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if got := cfg.Origin("preview.default_width"); got != "defaults" {
		t.Errorf("Origin = %q, want defaults", got)
	}
}

func TestLoadTOMLFromDir(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/cfg/config.toml": `
project_url = "https://example.com/plotview"

[preview]
default_width = 900

[layout]
initial_split = 40

[editor]
copied_duration = "1500ms"
`,
	})

	cfg, err := Load(Options{Dir: "/cfg", FS: fsys, NoEnv: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "/cfg/config.toml" {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Preview.DefaultWidth != 900 {
		t.Errorf("DefaultWidth = %d, want 900", cfg.Preview.DefaultWidth)
	}
	if cfg.Preview.DefaultHeight != 500 {
		t.Errorf("DefaultHeight = %d, want 500", cfg.Preview.DefaultHeight)
	}
	if cfg.Layout.InitialSplit != 40 {
		t.Errorf("InitialSplit = %d, want 40", cfg.Layout.InitialSplit)
	}
	if cfg.Editor.CopiedDuration != 1500*time.Millisecond {
		t.Errorf("CopiedDuration = %v", cfg.Editor.CopiedDuration)
	}
	if cfg.ProjectURL != "https://example.com/plotview" {
		t.Errorf("ProjectURL = %q", cfg.ProjectURL)
	}
	if got := cfg.Origin("preview.default_width"); got != "file" {
		t.Errorf("Origin(default_width) = %q, want file", got)
	}
	if got := cfg.Origin("preview.default_height"); got != "defaults" {
		t.Errorf("Origin(default_height) = %q, want defaults", got)
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/cfg/plot.yaml": "preview:\n  default_height: 640\nexport:\n  format: SVG\n",
	})

	cfg, err := Load(Options{Path: "/cfg/plot.yaml", FS: fsys, NoEnv: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.DefaultHeight != 640 {
		t.Errorf("DefaultHeight = %d, want 640", cfg.Preview.DefaultHeight)
	}
	if cfg.Export.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Export.Format)
	}
	if len(cfg.Problems) != 0 {
		t.Errorf("Problems = %v", cfg.Problems)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load(Options{Dir: "/nowhere", FS: newMemFS(nil), NoEnv: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if cfg.Preview.DefaultWidth != DefaultWidth {
		t.Errorf("DefaultWidth = %d", cfg.Preview.DefaultWidth)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(Options{Path: "/missing.toml", FS: newMemFS(nil), NoEnv: true})
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/cfg/config.toml": "[preview\ndefault_width = 1\n",
	})

	_, err := Load(Options{Dir: "/cfg", FS: fsys, NoEnv: true})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsParseError(err) {
		t.Errorf("err = %T %v, want a ParseError", err, err)
	}
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/cfg/config.toml": "[preview]\ndefault_width = 900\n",
	})
	t.Setenv("PLOTVIEW_WIDTH", "1000")
	t.Setenv("PLOTVIEW_LAYOUT_MIN_SPLIT", "10")

	cfg, err := Load(Options{Dir: "/cfg", FS: fsys})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.DefaultWidth != 1000 {
		t.Errorf("DefaultWidth = %d, want 1000", cfg.Preview.DefaultWidth)
	}
	if cfg.Layout.MinSplit != 10 {
		t.Errorf("MinSplit = %d, want 10", cfg.Layout.MinSplit)
	}
	if got := cfg.Origin("preview.default_width"); got != "environment" {
		t.Errorf("Origin = %q, want environment", got)
	}
}

func TestLoadOverridesWin(t *testing.T) {
	t.Setenv("PLOTVIEW_WIDTH", "1000")

	cfg, err := Load(Options{
		Dir:       "/cfg",
		FS:        newMemFS(nil),
		Overrides: map[string]any{"preview.default_width": 1200},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Preview.DefaultWidth != 1200 {
		t.Errorf("DefaultWidth = %d, want 1200", cfg.Preview.DefaultWidth)
	}
	if got := cfg.Origin("preview.default_width"); got != "flags" {
		t.Errorf("Origin = %q, want flags", got)
	}
}

func TestValidationReplacesBadValues(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/cfg/config.toml": `
project_url = "ftp://example.com"

[preview]
default_width = 50
cell_width_px = 0

[layout]
min_split = 60
max_split = 40

[editor]
tab_width = 20
copied_duration = "soon"

[export]
format = "gif"

[theme]
accent = "blue"
`,
	})

	cfg, err := Load(Options{Dir: "/cfg", FS: fsys, NoEnv: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Preview.DefaultWidth != DefaultWidth {
		t.Errorf("DefaultWidth = %d", cfg.Preview.DefaultWidth)
	}
	if cfg.Preview.CellWidthPx != DefaultCellWidthPx {
		t.Errorf("CellWidthPx = %d", cfg.Preview.CellWidthPx)
	}
	if cfg.Layout.MinSplit != 5 || cfg.Layout.MaxSplit != 95 {
		t.Errorf("split bounds = %d..%d, want 5..95", cfg.Layout.MinSplit, cfg.Layout.MaxSplit)
	}
	if cfg.Editor.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d", cfg.Editor.TabWidth)
	}
	if cfg.Editor.CopiedDuration != DefaultCopiedDuration {
		t.Errorf("CopiedDuration = %v", cfg.Editor.CopiedDuration)
	}
	if cfg.Export.Format != "png" {
		t.Errorf("Format = %q", cfg.Export.Format)
	}
	if cfg.ProjectURL != DefaultProjectURL {
		t.Errorf("ProjectURL = %q", cfg.ProjectURL)
	}
	if cfg.Theme.Accent != DefaultTheme().Accent {
		t.Errorf("Accent = %q", cfg.Theme.Accent)
	}

	paths := make(map[string]bool)
	for _, p := range cfg.Problems {
		var ve *ValidationError
		if !errors.As(p, &ve) {
			t.Fatalf("problem %v is %T, want *ValidationError", p, p)
		}
		paths[ve.Path] = true
	}
	for _, want := range []string{
		"project_url", "preview.default_width", "preview.cell_width_px", "layout",
		"editor.tab_width", "editor.copied_duration", "export.format", "theme.accent",
	} {
		if !paths[want] {
			t.Errorf("missing problem for %s; got %v", want, cfg.Problems)
		}
	}
}

func TestCopiedDurationKeepsThreeSecondWindow(t *testing.T) {
	for _, v := range []any{"0s", "-2s"} {
		cfg, err := Load(Options{
			FS:        newMemFS(nil),
			Dir:       "/cfg",
			NoEnv:     true,
			Overrides: map[string]any{"editor.copied_duration": v},
		})
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Editor.CopiedDuration != 3*time.Second {
			t.Errorf("copied_duration %v: got %v, want 3s", v, cfg.Editor.CopiedDuration)
		}
		found := false
		for _, p := range cfg.Problems {
			var ve *ValidationError
			found = found || (errors.As(p, &ve) && ve.Path == "editor.copied_duration")
		}
		if !found {
			t.Errorf("copied_duration %v: problems = %v, want a rejection", v, cfg.Problems)
		}
	}
}

func TestInitialSplitClampedToBounds(t *testing.T) {
	cfg, err := Load(Options{
		FS:    newMemFS(nil),
		Dir:   "/cfg",
		NoEnv: true,
		Overrides: map[string]any{
			"layout.min_split":     60,
			"layout.max_split":     90,
			"layout.initial_split": 50,
		},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.InitialSplit != 60 {
		t.Errorf("InitialSplit = %d, want 60", cfg.Layout.InitialSplit)
	}
}

func TestChanged(t *testing.T) {
	prev := Default()
	next, err := Load(Options{
		FS:        newMemFS(nil),
		Dir:       "/cfg",
		NoEnv:     true,
		Overrides: map[string]any{"preview.default_width": 800, "theme.accent": "#ffffff"},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := strings.Join(next.Changed(prev), ",")
	if got != "preview.default_width,theme.accent" {
		t.Errorf("Changed = %q", got)
	}
	if len(prev.Changed(prev)) != 0 {
		t.Error("a config should not differ from itself")
	}
}

func TestMarshalTOML(t *testing.T) {
	out, err := Default().MarshalTOML()
	if err != nil {
		t.Fatalf("MarshalTOML: %v", err)
	}
	text := string(out)
	for _, want := range []string{"[preview]", "default_width = 700", "project_url = "} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Path: "editor.tab_width", Message: "must be between 1 and 8", Value: 20}
	if got := err.Error(); got != "editor.tab_width: must be between 1 and 8 (got 20)" {
		t.Errorf("Error() = %q", got)
	}
}
