package layout

import (
	"hash/fnv"
	"sync"

	"github.com/dshills/plotview/internal/renderer/core"
)

// LineCache caches computed line layouts keyed by line number, validated by
// a hash of the line content.
type LineCache struct {
	mu      sync.Mutex
	engine  *Engine
	style   core.Style
	entries map[int]cacheEntry
	maxSize int

	hits   uint64
	misses uint64
}

type cacheEntry struct {
	layout   *LineLayout
	lineHash uint64
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

// NewLineCache creates a cache. maxSize bounds the number of lines kept.
func NewLineCache(engine *Engine, style core.Style, maxSize int) *LineCache {
	return &LineCache{
		engine:  engine,
		style:   style,
		entries: make(map[int]cacheEntry),
		maxSize: max(maxSize, 1),
	}
}

// Get retrieves or computes the layout for a line.
func (c *LineCache) Get(line int, text string) *LineLayout {
	hash := hashLine(text)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[line]; ok && e.lineHash == hash {
		c.hits++
		return e.layout
	}
	c.misses++

	if len(c.entries) >= c.maxSize {
		// Whole-document edits replace most lines anyway; start over.
		clear(c.entries)
	}
	l := c.engine.Layout(text, c.style)
	c.entries[line] = cacheEntry{layout: l, lineHash: hash}
	return l
}

// SetStyle changes the cell style and drops all cached layouts.
func (c *LineCache) SetStyle(style core.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.style.Equals(style) {
		c.style = style
		clear(c.entries)
	}
}

// InvalidateAll removes every cached layout.
func (c *LineCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Stats returns cache statistics.
func (c *LineCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Size: len(c.entries), Hits: c.hits, Misses: c.misses}
}

func hashLine(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
