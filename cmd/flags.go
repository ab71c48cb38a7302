package cmd

import (
	"strings"

	"github.com/lugassawan/colz/internal/columnize"
	"github.com/spf13/pflag"
)

// justifyValue is a comma-separated list of column justifications.
type justifyValue struct {
	list []columnize.Justification
}

var _ pflag.Value = (*justifyValue)(nil)

func (v *justifyValue) String() string {
	parts := make([]string, len(v.list))
	for i, j := range v.list {
		parts[i] = j.String()
	}
	return strings.Join(parts, ",")
}

func (v *justifyValue) Set(s string) error {
	list, err := columnize.ParseJustifications(strings.Split(s, ","))
	if err != nil {
		return err
	}
	v.list = list
	return nil
}

func (v *justifyValue) Type() string {
	return "left|right,..."
}

// names returns the justifications in config form.
func (v *justifyValue) names() []string {
	if len(v.list) == 0 {
		return nil
	}
	return strings.Split(v.String(), ",")
}
