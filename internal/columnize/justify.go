package columnize

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Justification selects how a value is padded to its column width.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyRight
)

func (j Justification) String() string {
	if j == JustifyRight {
		return "right"
	}
	return "left"
}

// ParseJustification accepts "left"/"str" and "right"/"num".
func ParseJustification(s string) (Justification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "str":
		return JustifyLeft, nil
	case "right", "num":
		return JustifyRight, nil
	}
	return JustifyLeft, fmt.Errorf("invalid justification %q (want left, right, str or num)", s)
}

// ParseJustifications parses each entry of list with ParseJustification.
func ParseJustifications(list []string) ([]Justification, error) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]Justification, len(list))
	for i, s := range list {
		j, err := ParseJustification(s)
		if err != nil {
			return nil, err
		}
		out[i] = j
	}
	return out, nil
}

// inferJustification right-justifies anything that reads as an integer.
// Floats and bools count as numeric because they convert to one.
func inferJustification(raw any) Justification {
	if raw == nil {
		return JustifyLeft
	}
	switch v := raw.(type) {
	case string:
		if _, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return JustifyRight
		}
		return JustifyLeft
	case fmt.Stringer:
		if _, err := strconv.Atoi(strings.TrimSpace(v.String())); err == nil {
			return JustifyRight
		}
		return JustifyLeft
	}
	switch reflect.ValueOf(raw).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return JustifyRight
	}
	return JustifyLeft
}

func textLen(s string) int {
	return utf8.RuneCountInString(s)
}

// justify pads text to width. Text already at or past width is returned as is.
func justify(text string, width int, j Justification) string {
	n := width - textLen(text)
	if n <= 0 {
		return text
	}
	if j == JustifyRight {
		return strings.Repeat(" ", n) + text
	}
	return text + strings.Repeat(" ", n)
}
