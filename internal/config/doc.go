// Package config loads the plotview configuration.
//
// Settings come from layers merged by priority, higher layers overriding
// lower ones:
//
//	┌─────────────────────────────┐
//	│  4. Command line flags      │  ← highest priority
//	├─────────────────────────────┤
//	│  3. Environment variables   │  ← PLOTVIEW_*
//	├─────────────────────────────┤
//	│  2. Config file             │  ← ~/.config/plotview/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │
//	└─────────────────────────────┘
//
// The file may be TOML or YAML. A missing file is not an error; a file that
// fails to parse is. Values that parse but are out of range are replaced by
// their defaults and reported through Config.Problems so the caller can warn
// without refusing to start.
//
// # Sub-packages
//
//   - loader: file and environment loaders
//   - layer: layer ordering and map merging
//   - watcher: file watching for live reload
//
// # Example
//
//	# ~/.config/plotview/config.toml
//	project_url = "https://example.com/plotview"
//
//	[preview]
//	default_width = 800
//	default_height = 600
//
//	[layout]
//	initial_split = 40
package config
