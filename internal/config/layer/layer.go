// Package layer merges configuration sources by priority.
//
// Each source (built-in defaults, the config file, the environment, command
// line flags) becomes a Layer holding a nested map. Higher priority layers
// override lower ones key by key; nested maps merge recursively.
package layer

// Source indicates where a configuration layer came from.
type Source uint8

const (
	SourceBuiltin Source = iota
	SourceFile
	SourceEnv
	SourceFlags
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "defaults"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Priority returns the merge priority of the source. Higher wins.
func (s Source) Priority() int {
	switch s {
	case SourceFile:
		return 100
	case SourceEnv:
		return 500
	case SourceFlags:
		return 600
	default:
		return 0
	}
}

// Layer is a single configuration source.
type Layer struct {
	Name     string
	Source   Source
	Priority int
	Path     string // set for file layers
	Data     map[string]any
}

// New creates a layer with the source's default name and priority. A nil
// data map is replaced by an empty one.
func New(source Source, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Name:     source.String(),
		Source:   source,
		Priority: source.Priority(),
		Data:     data,
	}
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	c := *l
	c.Data = cloneMap(l.Data)
	return &c
}
