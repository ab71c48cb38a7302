package columnize

import (
	"errors"
	"fmt"
)

// ErrRowArity is returned when a positional row does not match the header count.
var ErrRowArity = errors.New("row does not match header count")

type rowKind int

const (
	positional rowKind = iota
	keyed
)

// Row is one logical table row: either values aligned to the columns by
// position, or values addressed by column key. Rows are not modified after
// construction.
type Row struct {
	kind   rowKind
	values []any
	fields map[string]any
}

// Positional builds a row whose values line up with the columns in order.
func Positional(values ...any) Row {
	return Row{kind: positional, values: values}
}

// Strings is Positional for a slice of strings.
func Strings(values []string) Row {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Positional(vs...)
}

// Keyed builds a row whose values are looked up by column key. Keys that are
// not present render as the placeholder.
func Keyed(fields map[string]any) Row {
	return Row{kind: keyed, fields: fields}
}

// IsKeyed reports whether r was built with Keyed.
func (r Row) IsKeyed() bool {
	return r.kind == keyed
}

// Values returns the values of a positional row, or nil for a keyed row.
func (r Row) Values() []any {
	return r.values
}

// Field returns the value stored under key in a keyed row.
func (r Row) Field(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// check validates r against n columns.
func (r Row) check(n int) error {
	if r.kind == positional && len(r.values) != n {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowArity, len(r.values), n)
	}
	return nil
}

// value returns the raw value for column i (key k). A missing keyed value
// or a nil value yields placeholder.
func (r Row) value(i int, k string, placeholder string) any {
	var v any
	switch r.kind {
	case keyed:
		v = r.fields[k]
	default:
		v = r.values[i]
	}
	if v == nil {
		return placeholder
	}
	return v
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
