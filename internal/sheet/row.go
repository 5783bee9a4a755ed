// Package sheet gives typed, lenient access to the loosely-typed rows of
// exported game data sheets. Values may be strings, numbers, booleans,
// lists or absent; accessors never fail and fall back to caller defaults.
package sheet

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Row is a single sheet row backed by its raw JSON object.
type Row struct {
	raw gjson.Result
}

// NewRow wraps a raw JSON object.
func NewRow(raw gjson.Result) Row {
	return Row{raw: raw}
}

// ParseRow parses a JSON object literal into a Row.
func ParseRow(js string) Row {
	return Row{raw: gjson.Parse(js)}
}

func (r Row) field(key string) gjson.Result {
	return r.raw.Get(gjson.Escape(key))
}

// Has reports whether key is present, including explicit nulls.
func (r Row) Has(key string) bool {
	return r.field(key).Exists()
}

// Verbatim returns the value of key as written: strings untrimmed, numbers
// in their source form. Empty when absent or null.
func (r Row) Verbatim(key string) string {
	v := r.field(key)
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return ""
	case v.Type == gjson.Number:
		return v.Raw
	default:
		return v.String()
	}
}

// JSON returns the raw JSON of key, or nil when absent.
func (r Row) JSON(key string) json.RawMessage {
	v := r.field(key)
	if !v.Exists() {
		return nil
	}
	return json.RawMessage(v.Raw)
}

// Str returns the value of key as a trimmed string; empty when absent or null.
func (r Row) Str(key string) string {
	v := r.field(key)
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return strings.TrimSpace(v.String())
}

// FirstStr returns the first non-empty string among keys.
func (r Row) FirstStr(keys ...string) string {
	for _, k := range keys {
		if s := r.Str(k); s != "" {
			return s
		}
	}
	return ""
}

// OptStr returns a pointer to the raw string value of key, or nil when absent or null.
func (r Row) OptStr(key string) *string {
	v := r.field(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}

// Int returns the value of key as an integer, see SafeInt.
func (r Row) Int(key string, def int) int {
	v := r.field(key)
	if !v.Exists() || v.Type == gjson.Null {
		return def
	}
	return SafeInt(v.String(), def)
}

// OptInt returns the integer value of key or nil when absent, null or unparsable.
func (r Row) OptInt(key string) *int {
	v := r.field(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	n, ok := parseInt(v.String())
	if !ok {
		return nil
	}
	return &n
}

// Float returns the value of key as a float64.
func (r Row) Float(key string) (float64, bool) {
	v := r.field(key)
	switch v.Type {
	case gjson.Number:
		return v.Float(), true
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool returns the truthiness of key. Strings "true"/"1"/"yes" and non-zero numbers are true.
func (r Row) Bool(key string) bool {
	v := r.field(key)
	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Float() != 0
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(v.Str)) {
		case "true", "1", "yes", "y":
			return true
		}
	}
	return false
}

// Strings normalizes key to a list: a bare string becomes a singleton,
// an absent or empty value an empty list.
func (r Row) Strings(key string) []string {
	v := r.field(key)
	out := []string{}
	switch {
	case v.IsArray():
		v.ForEach(func(_, e gjson.Result) bool {
			if e.Type != gjson.Null {
				out = append(out, e.String())
			}
			return true
		})
	case v.Type == gjson.String:
		if v.Str != "" {
			out = append(out, v.Str)
		}
	case v.Exists() && v.Type != gjson.Null:
		out = append(out, v.String())
	}
	return out
}

// Keys returns the row's column names in document order.
func (r Row) Keys() []string {
	var keys []string
	r.raw.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	return keys
}

// Raw returns the underlying JSON of the row.
func (r Row) Raw() string {
	return r.raw.Raw
}

// Indexed builds the column name of an indexed slot, e.g. Indexed("Item", 3) == "Item3".
func Indexed(prefix string, idx int) string {
	return fmt.Sprintf("%s%d", prefix, idx)
}

// SafeInt parses integer and float-string representations, truncating floats
// toward zero, and returns def on total failure.
func SafeInt(s string, def int) int {
	if n, ok := parseInt(s); ok {
		return n
	}
	return def
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
