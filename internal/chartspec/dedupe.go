package chartspec

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// resolve re-encodes a well-formed JSON value compactly with duplicate
// object keys collapsed. The last value for a key wins and the key keeps
// the position of its first occurrence. Scalars are copied as written.
func resolve(value gjson.Result) []byte {
	var buf bytes.Buffer
	writeResolved(&buf, value)
	return buf.Bytes()
}

func writeResolved(buf *bytes.Buffer, value gjson.Result) {
	switch {
	case value.IsObject():
		var keys []string
		raws := make(map[string]string)
		vals := make(map[string]gjson.Result)
		value.ForEach(func(k, v gjson.Result) bool {
			name := k.String()
			if _, seen := vals[name]; !seen {
				keys = append(keys, name)
				raws[name] = k.Raw
			}
			vals[name] = v
			return true
		})

		buf.WriteByte('{')
		for i, name := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(raws[name])
			buf.WriteByte(':')
			writeResolved(buf, vals[name])
		}
		buf.WriteByte('}')

	case value.IsArray():
		buf.WriteByte('[')
		i := 0
		value.ForEach(func(_, v gjson.Result) bool {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeResolved(buf, v)
			i++
			return true
		})
		buf.WriteByte(']')

	default:
		buf.WriteString(value.Raw)
	}
}
