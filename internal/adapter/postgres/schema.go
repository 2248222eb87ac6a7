package postgres

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/apper-apps/feedbackhub-driver-pixel/internal/adapter/recordstore"
	"github.com/apper-apps/feedbackhub-driver-pixel/internal/domain"
)

type kind int

const (
	kindText kind = iota
	kindInt
	kindBool
	kindTime
)

// column maps a wire field name to a table column.
type column struct {
	field string
	name  string
	kind  kind
}

type table struct {
	name    string
	columns []column
	byField map[string]column
}

var idColumn = column{field: recordstore.IDField, name: "id", kind: kindInt}

func newTable(name string, cols ...column) *table {
	t := &table{
		name:    name,
		columns: append([]column{idColumn}, cols...),
		byField: make(map[string]column, len(cols)+1),
	}
	for _, c := range t.columns {
		t.byField[c.field] = c
	}
	return t
}

func text(field, name string) column { return column{field: field, name: name, kind: kindText} }
func integer(field, name string) column { return column{field: field, name: name, kind: kindInt} }
func boolean(field, name string) column { return column{field: field, name: name, kind: kindBool} }
func timestamp(field, name string) column { return column{field: field, name: name, kind: kindTime} }

// tables is the schema of every collection the store serves.
var tables = map[string]*table{
	recordstore.CollectionIdea: newTable("ideas",
		text("Name", "name"),
		text("title", "title"),
		text("description", "description"),
		text("category", "category"),
		text("status", "status"),
		integer("votes", "votes"),
		boolean("hasVoted", "has_voted"),
		integer("commentCount", "comment_count"),
		timestamp("createdAt", "created_at"),
		text("user_id", "user_id"),
		text("project_id", "project_id"),
	),
	recordstore.CollectionReview: newTable("reviews",
		text("Name", "name"),
		text("customerName", "customer_name"),
		integer("rating", "rating"),
		text("comment", "comment"),
		timestamp("createdAt", "created_at"),
		text("project_id", "project_id"),
	),
	recordstore.CollectionChangelog: newTable("changelog_entries",
		text("Name", "name"),
		text("version", "version"),
		text("title", "title"),
		text("content", "content"),
		timestamp("publishedAt", "published_at"),
		text("project_id", "project_id"),
	),
	recordstore.CollectionActivity: newTable("activities",
		text("Name", "name"),
		text("type", "type"),
		text("description", "description"),
		text("ideaTitle", "idea_title"),
		text("ideaStatus", "idea_status"),
		text("newStatus", "new_status"),
		integer("voteCount", "vote_count"),
		text("version", "version"),
		timestamp("createdAt", "created_at"),
	),
	recordstore.CollectionProject: newTable("projects",
		text("Name", "name"),
		text("logo", "logo"),
		text("primaryColor", "primary_color"),
		text("userId", "user_id"),
		timestamp("createdAt", "created_at"),
	),
}

// selectColumns resolves requested fields; none means all. The id column is always included.
func (t *table) selectColumns(fields []string) ([]column, error) {
	if len(fields) == 0 {
		return t.columns, nil
	}
	cols := []column{idColumn}
	for _, f := range fields {
		if f == recordstore.IDField {
			continue
		}
		c, ok := t.byField[f]
		if !ok {
			return nil, fmt.Errorf("unknown field %q in %s", f, t.name)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func (t *table) orderClauses(orderBy []recordstore.OrderBy) ([]string, error) {
	clauses := make([]string, 0, len(orderBy)+1)
	for _, o := range orderBy {
		c, ok := t.byField[o.FieldName]
		if !ok {
			return nil, fmt.Errorf("unknown order field %q in %s", o.FieldName, t.name)
		}
		dir := strings.ToUpper(o.SortType)
		if dir != recordstore.SortDesc {
			dir = recordstore.SortAsc
		}
		clauses = append(clauses, c.name+" "+dir)
	}
	return append(clauses, "id ASC"), nil
}

func columnNames(cols []column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

// values converts the writable fields of rec to column values. Id is skipped.
func (t *table) values(rec recordstore.Record) (map[string]any, []recordstore.FieldIssue) {
	out := make(map[string]any, len(rec))
	var issues []recordstore.FieldIssue
	for field, v := range rec {
		if field == recordstore.IDField {
			continue
		}
		c, ok := t.byField[field]
		if !ok {
			issues = append(issues, recordstore.FieldIssue{FieldLabel: field, Message: "unknown field"})
			continue
		}
		val, err := c.encode(v)
		if err != nil {
			issues = append(issues, recordstore.FieldIssue{FieldLabel: field, Message: err.Error()})
			continue
		}
		out[c.name] = val
	}
	return out, issues
}

func (c column) encode(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch c.kind {
	case kindText:
		switch x := v.(type) {
		case string:
			return x, nil
		case json.Number:
			return x.String(), nil
		case int, int32, int64, float64:
			return recordstore.Record{c.field: x}.String(c.field), nil
		}
	case kindInt:
		switch x := v.(type) {
		case int:
			return int64(x), nil
		case int32:
			return int64(x), nil
		case int64:
			return x, nil
		case float64:
			if x == math.Trunc(x) {
				return int64(x), nil
			}
		case json.Number:
			if n, err := x.Int64(); err == nil {
				return n, nil
			}
		case string:
			if n, err := strconv.ParseInt(x, 10, 64); err == nil {
				return n, nil
			}
		}
	case kindBool:
		switch x := v.(type) {
		case bool:
			return x, nil
		case string:
			if b, err := strconv.ParseBool(x); err == nil {
				return b, nil
			}
		}
	case kindTime:
		switch x := v.(type) {
		case time.Time:
			return domain.NormalizeTime(x), nil
		case string:
			t, err := domain.ParseTimestamp(x)
			if err != nil {
				return nil, err
			}
			return t, nil
		}
	}
	return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
}

// decode converts a scanned column value to its wire form.
func (c column) decode(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return domain.FormatTimestamp(x)
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	default:
		return x
	}
}

// rowRecord converts a scanned row keyed by column name to a wire record.
func rowRecord(cols []column, row map[string]any) recordstore.Record {
	rec := make(recordstore.Record, len(cols))
	for _, c := range cols {
		rec[c.field] = c.decode(row[c.name])
	}
	return rec
}
