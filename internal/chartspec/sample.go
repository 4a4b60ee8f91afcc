package chartspec

import _ "embed"

//go:embed sample.json
var sample string

// Sample returns the bundled example document shown at startup.
func Sample() string {
	return sample
}
