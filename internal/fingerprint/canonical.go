package fingerprint

import (
	"encoding/json"
	"sort"
	"strings"
)

// canonicalJSON serializes a metadata value with all object keys recursively
// sorted, including keys of objects nested inside arrays. Returns "" for nil
// or empty input so absent metadata hashes as the empty string.
func canonicalJSON(meta map[string]interface{}) string {
	if len(meta) == 0 {
		return ""
	}
	var b strings.Builder
	writeCanonical(&b, meta)
	return b.String()
}

func writeCanonical(b *strings.Builder, value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONScalar(b, k)
			b.WriteByte(':')
			writeCanonical(b, v[k])
		}
		b.WriteByte('}')
	case []interface{}:
		b.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, elem)
		}
		b.WriteByte(']')
	default:
		writeJSONScalar(b, v)
	}
}

// writeJSONScalar encodes a scalar (string, number, bool, nil) as JSON.
// Metadata is assumed to hold only plain values per the package contract.
func writeJSONScalar(b *strings.Builder, value interface{}) {
	encoded, err := json.Marshal(value)
	if err != nil {
		// Unserializable values violate the documented precondition;
		// fall back to a fixed token to keep the function total.
		b.WriteString(`"?"`)
		return
	}
	b.Write(encoded)
}
