// Package cypher translates labeled graphs into Cypher creation statements.
//
// The package has two layers: literal encoding (labels and property maps to
// statement fragments) and statement generation (a graph to a lazy sequence
// of CREATE/MATCH statements). Encoding is deterministic: property keys are
// rendered in sorted order and label order is preserved as given.
package cypher

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vvka-141/memload/pkg/memload"
)

// EncodeLabels renders a label fragment from a single label string or an
// ordered list of label strings: "Person" -> ":Person", ["A","B"] -> ":A:B".
// An empty string, empty list, or nil renders the empty fragment.
//
// Label characters are passed through unescaped. Labels containing characters
// that are not valid Cypher identifiers produce statements the server will
// reject; sanitizing them is the caller's responsibility.
func EncodeLabels(v any) (string, error) {
	switch labels := v.(type) {
	case nil:
		return "", nil
	case string:
		if labels == "" {
			return "", nil
		}
		return ":" + labels, nil
	case []string:
		var b strings.Builder
		for _, l := range labels {
			if l == "" {
				continue
			}
			b.WriteByte(':')
			b.WriteString(l)
		}
		return b.String(), nil
	case []any:
		var b strings.Builder
		for _, e := range labels {
			l, ok := e.(string)
			if !ok {
				return "", fmt.Errorf("label %v (%T): %w", e, e, memload.ErrUnsupportedValue)
			}
			if l == "" {
				continue
			}
			b.WriteByte(':')
			b.WriteString(l)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("labels value %v (%T): %w", v, v, memload.ErrUnsupportedValue)
	}
}

// EncodeProperties renders a Cypher map literal from a property mapping:
// {"name": "Alice", "age": 30} -> `{age: 30, name: "Alice"}`. Keys are
// rendered in sorted order so output is deterministic. An empty or nil
// mapping renders the empty fragment, not "{}".
func EncodeProperties(props map[string]any) (string, error) {
	if len(props) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		v, err := EncodeValue(props[k])
		if err != nil {
			return "", fmt.Errorf("property %q: %w", k, err)
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}
	b.WriteByte('}')
	return b.String(), nil
}

// EncodeValue renders a single Cypher value literal. Supported types are
// strings, booleans, all integer and float widths, and flat slices or arrays
// of those primitives. Anything else wraps ErrUnsupportedValue.
func EncodeValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return quoteString(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.FormatInt(int64(val), 10), nil
	case int8:
		return strconv.FormatInt(int64(val), 10), nil
	case int16:
		return strconv.FormatInt(int64(val), 10), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		var b strings.Builder
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			elem, err := EncodeValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			b.WriteString(elem)
		}
		b.WriteByte(']')
		return b.String(), nil
	}

	return "", fmt.Errorf("value %v (%T): %w", v, v, memload.ErrUnsupportedValue)
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}
