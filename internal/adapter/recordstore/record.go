package recordstore

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// Record is one stored record keyed by wire field name. Values arrive as
// whatever the transport produced (JSON numbers, strings, driver types), so
// reads go through the typed accessors below.
type Record map[string]any

func unmarshalRecords(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// ID returns the record's Id, or 0 when absent.
func (r Record) ID() int64 { return r.Int64(IDField) }

// Int64 reads a numeric field. Lookup objects ({"Id": n, ...}) yield their Id.
func (r Record) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	case map[string]any:
		return Record(v).ID()
	}
	return 0
}

// Int reads a numeric field as int.
func (r Record) Int(key string) int { return int(r.Int64(key)) }

// String reads a text field. Numbers are formatted and lookup objects yield
// their Id, so opaque references survive either representation.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any:
		if id := Record(v).ID(); id != 0 {
			return strconv.FormatInt(id, 10)
		}
		return Record(v).String("Name")
	}
	return ""
}

// Bool reads a flag; "true" strings count.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// Time reads a timestamp normalized to UTC seconds. Unparseable values are zero.
func (r Record) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return domain.NormalizeTime(v)
	case string:
		t, err := domain.ParseTimestamp(v)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return time.Time{}
}

// Has reports whether key is present, even with a null value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// SetTime stores t in wire form.
func (r Record) SetTime(key string, t time.Time) {
	r[key] = domain.FormatTimestamp(t)
}

// SetRef stores an opaque reference, writing null for the empty string.
func (r Record) SetRef(key, ref string) {
	if ref == "" {
		r[key] = nil
		return
	}
	r[key] = ref
}
