package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/rpn16/rpn"
)

var columnWidth = [...]int{14, 18, 14, 18, 14, 18}

var columnTitle = [...]string{"pass/fail", "command", "value", "value bits", "result", "result bits"}

const rule = "-------------------------------------------"

// writeColumns left-justifies each column to its width.
func writeColumns(w io.Writer, columns ...string) (err error) {
	var line strings.Builder
	for n, text := range columns {
		fmt.Fprintf(&line, "%-*s", columnWidth[n], text)
	}
	line.WriteString("\n")

	_, err = io.WriteString(w, line.String())
	return
}

// bitsOf returns the value, and its bits, as two columns.
func bitsOf(value uint16, ok bool) (text string, bits string) {
	if !ok {
		return " ", " "
	}
	return fmt.Sprintf("%d", value), fmt.Sprintf("%0*b", rpn.WIDTH, value)
}

// WriteHeader writes the table header.
func WriteHeader(w io.Writer) (err error) {
	err = writeColumns(w, columnTitle[:]...)
	if err != nil {
		return
	}

	var dashes [len(columnTitle)]string
	for n := range dashes {
		dashes[n] = "--------"
	}
	err = writeColumns(w, dashes[:]...)
	return
}

// WriteRow writes a table row for an outcome.
func WriteRow(w io.Writer, out Outcome) (err error) {
	pass_fail := "FAIL"
	if out.Pass {
		pass_fail = "PASS"
	}

	value, value_bits := bitsOf(out.Value, out.HasValue)
	result, result_bits := bitsOf(out.Top, out.Ok)

	err = writeColumns(w, pass_fail, out.Command.String(), value, value_bits, result, result_bits)
	return
}

// WriteSummary writes the closing summary of a report.
func WriteSummary(w io.Writer, summary string) (err error) {
	_, err = fmt.Fprintf(w, "%v\n%v\n%v\n", rule, summary, rule)
	return
}
