package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

// patchDoc is a decoded PATCH body. A key that is present sets the field,
// a key that is absent leaves it unchanged.
type patchDoc struct {
	raw  map[string]json.RawMessage
	errs []domain.FieldError
}

func decodePatch(w http.ResponseWriter, r *http.Request, allowed ...string) (*patchDoc, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&raw); err != nil {
		return nil, domain.NewValidationError("body", "must be a JSON object")
	}

	doc := &patchDoc{raw: raw}
	for key := range raw {
		if !slices.Contains(allowed, key) {
			doc.fail(key, "unknown field")
		}
	}
	return doc, nil
}

func (d *patchDoc) fail(key, msg string) {
	d.errs = append(d.errs, domain.FieldError{Field: key, Message: msg})
}

// err returns every decoding problem collected so far.
func (d *patchDoc) err() error {
	if len(d.errs) == 0 {
		return nil
	}
	slices.SortFunc(d.errs, func(a, b domain.FieldError) int {
		return strings.Compare(a.Field, b.Field)
	})
	return domain.NewValidationErrors(d.errs)
}

func patchField[T any](d *patchDoc, key string, dst *domain.Field[T]) {
	raw, ok := d.raw[key]
	if !ok {
		return
	}
	if string(raw) == "null" {
		d.fail(key, "must not be null")
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		d.fail(key, fmt.Sprintf("expected %T", v))
		return
	}
	*dst = domain.SetTo(v)
}

// patchTime accepts any timestamp shape ParseTimestamp understands.
func patchTime(d *patchDoc, key string, dst *domain.Field[time.Time]) {
	var s domain.Field[string]
	patchField(d, key, &s)
	v, ok := s.Get()
	if !ok {
		return
	}
	t, err := domain.ParseTimestamp(v)
	if err != nil {
		d.fail(key, "invalid timestamp")
		return
	}
	*dst = domain.SetTo(t)
}
