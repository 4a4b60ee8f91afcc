package layer

import (
	"cmp"
	"slices"
)

// Manager holds the layers of one configuration load. It is built and
// read by a single goroutine.
type Manager struct {
	layers []*Layer // ascending priority
	merged map[string]any
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddLayer adds a layer, replacing any layer with the same name.
func (m *Manager) AddLayer(l *Layer) {
	m.layers = slices.DeleteFunc(m.layers, func(o *Layer) bool { return o.Name == l.Name })
	m.layers = append(m.layers, l)
	slices.SortStableFunc(m.layers, func(a, b *Layer) int { return cmp.Compare(a.Priority, b.Priority) })
	m.merged = nil
}

// Layers returns the layers in ascending priority.
func (m *Manager) Layers() []*Layer {
	return slices.Clone(m.layers)
}

// Merge combines all layers, lowest priority first. The result is a copy.
func (m *Manager) Merge() map[string]any {
	if m.merged == nil {
		result := make(map[string]any)
		for _, l := range m.layers {
			result = DeepMerge(result, l.Data)
		}
		m.merged = result
	}
	return cloneMap(m.merged)
}

// Get returns the effective value at path and the layer that supplied it.
func (m *Manager) Get(path string) (any, *Layer, bool) {
	for i := len(m.layers) - 1; i >= 0; i-- {
		if val, ok := GetByPath(m.layers[i].Data, path); ok {
			return val, m.layers[i], true
		}
	}
	return nil, nil, false
}

// WhichLayer returns the name of the layer that provides path, or "".
func (m *Manager) WhichLayer(path string) string {
	if _, l, ok := m.Get(path); ok {
		return l.Name
	}
	return ""
}
