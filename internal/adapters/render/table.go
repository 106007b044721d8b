// Package render writes report tables to terminals and files.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/okian/workforce-analyzer/internal/domain/types"
)

const (
	columnGap     = "  "
	headerPadding = 2 // minimum extra width a column gets over its header
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

type column struct {
	header string
	align  alignment
	width  int
	cells  []string
}

// Table writes t as a line-numbered plain text table:
//
//	    position      performance
//	--  ----------  -------------
//	 1  Backend              4.75
//
// The first column is the 1-based row number. Numeric columns are right
// aligned, everything else left aligned, and floats carry precision decimals.
// An empty table writes nothing.
func Table(w io.Writer, t types.Table, precision int) error {
	if t.Empty() {
		return nil
	}
	cols := layout(t, precision)

	var b strings.Builder
	writeLine(&b, cols, func(c column) string { return c.header })
	writeLine(&b, cols, func(c column) string { return strings.Repeat("-", c.width) })
	for i := range t.Rows {
		writeLine(&b, cols, func(c column) string { return c.cells[i] })
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func layout(t types.Table, precision int) []column {
	index := column{align: alignRight, cells: make([]string, t.Len())}
	for i := range t.Rows {
		index.cells[i] = strconv.Itoa(i + 1)
	}

	cols := []column{index}
	for _, name := range t.Columns {
		cols = append(cols, column{header: name, align: alignRight, cells: make([]string, t.Len())})
	}
	for i, row := range t.Rows {
		for j, v := range t.Values(row) {
			c := &cols[j+1]
			if !isNumber(v) {
				c.align = alignLeft
			}
			c.cells[i] = formatValue(v, precision)
		}
	}

	for i := range cols {
		width := utf8.RuneCountInString(cols[i].header) + headerPadding
		for _, cell := range cols[i].cells {
			width = max(width, utf8.RuneCountInString(cell))
		}
		cols[i].width = width
	}
	return cols
}

func writeLine(b *strings.Builder, cols []column, text func(column) string) {
	var line strings.Builder
	for i, c := range cols {
		if i > 0 {
			line.WriteString(columnGap)
		}
		line.WriteString(pad(text(c), c.width, c.align))
	}
	b.WriteString(strings.TrimRight(line.String(), " "))
	b.WriteByte('\n')
}

func pad(s string, width int, align alignment) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if align == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}
