package chartspec

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var prettyOptions = &pretty.Options{
	Indent: "  ",
	// Never pack arrays onto one line; every element gets its own line.
	Width: -1,
}

// Prettify returns text re-serialised with 2-space indentation and key order
// preserved. A duplicated key keeps its last value. Number literals are kept
// as written. Text that is not JSON
// returns a ParseError and no output; blank text counts as not JSON.
func Prettify(text string) (string, error) {
	if err := checkSyntax(text); err != nil {
		return "", err
	}
	out := pretty.PrettyOptions(resolve(gjson.Parse(text)), prettyOptions)
	return string(bytes.TrimRight(out, "\n")), nil
}
