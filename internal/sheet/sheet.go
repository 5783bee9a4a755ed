package sheet

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/osse101/PvPTrack_Go/internal/domain"
)

// Sheet is an ordered list of rows from one exported table.
type Sheet struct {
	Name string
	Rows []Row
}

// Parse reads a JSON array of objects. Non-object elements are skipped.
func Parse(name string, data []byte) (*Sheet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidSheet, name, ErrMsgInvalidJSON)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidSheet, name, ErrMsgNotAnArray)
	}

	s := &Sheet{Name: name}
	root.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			s.Rows = append(s.Rows, NewRow(v))
		}
		return true
	})
	return s, nil
}

// Load reads and parses a sheet file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadSheetFailed, path, err)
	}
	return Parse(path, data)
}

// Index keys rows by the value of keyField. Rows with an empty key are
// skipped and a repeated key keeps its first row; the repeated keys are
// returned in sheet order.
func (s *Sheet) Index(keyField string) (map[string]Row, []string) {
	out := make(map[string]Row, len(s.Rows))
	var dups []string
	for _, r := range s.Rows {
		k := r.Str(keyField)
		if k == "" {
			continue
		}
		if _, seen := out[k]; seen {
			dups = append(dups, k)
			continue
		}
		out[k] = r
	}
	return out, dups
}
