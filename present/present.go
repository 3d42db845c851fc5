// Package present renders a derivation result as text.
package present

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("label")
	sentinel.Tag("show")
}

// labelWidth is the column where values start.
const labelWidth = 15

// Report is what the user sees after a successful derivation.
//
// The label tag names the line. The show tag restricts when a line appears:
// "nonempty" hides zero values and "multiple" hides values below 2.
type Report struct {
	Domain     string `label:"Domain"`
	Username   string `label:"Username" show:"nonempty"`
	Iterations int    `label:"Iterations" show:"multiple"`
	Password   string `label:"Your password"`
}

// line is one renderable Report field.
type line struct {
	index []int
	label string
	show  string
}

var (
	linesOnce sync.Once
	lines     []line
)

// reportLines scans Report's tags once.
func reportLines() []line {
	linesOnce.Do(func() {
		meta := sentinel.Scan[Report]()
		for _, f := range meta.Fields {
			label, ok := f.Tags["label"]
			if !ok {
				continue
			}
			lines = append(lines, line{index: f.Index, label: label, show: f.Tags["show"]})
		}
	})
	return lines
}

// visible applies a show rule to a field value.
func visible(rule string, v reflect.Value) bool {
	switch rule {
	case "nonempty":
		return !v.IsZero()
	case "multiple":
		return v.Int() > 1
	}
	return true
}

// Write renders r. With bare set, only the password is written, without a
// trailing newline, for use in pipelines.
func Write(w io.Writer, r Report, bare bool) error {
	if bare {
		_, err := io.WriteString(w, r.Password)
		return err
	}

	rv := reflect.ValueOf(r)
	var b strings.Builder
	for _, l := range reportLines() {
		v := rv.FieldByIndex(l.index)
		if !visible(l.show, v) {
			continue
		}
		fmt.Fprintf(&b, "%-*s%v\n", labelWidth, l.label, v.Interface())
	}
	_, err := io.WriteString(w, b.String())
	return err
}
