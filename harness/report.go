package harness

import (
	"github.com/ezrec/rpn16/vector"
)

// Outcome is the result of dispatching a single record.
type Outcome struct {
	vector.Record
	Top  uint16 // Top of stack, if Ok.
	Ok   bool   // Set if the machine produced a result.
	Pass bool   // Set if the result matched the record.
}

// Report collects the outcomes of a vector source.
type Report struct {
	Name     string
	Outcomes []Outcome
	Pass     int
	Total    int
}

// Add an outcome to the report.
func (r *Report) Add(out Outcome) {
	r.Outcomes = append(r.Outcomes, out)
	r.Total++
	if out.Pass {
		r.Pass++
	}
}

// Success returns true if every outcome passed.
func (r *Report) Success() bool {
	return r.Pass == r.Total
}

// Summary returns the pass/fail summary line.
func (r *Report) Summary() string {
	return summary(r.Pass, r.Total)
}

// Failures returns the outcomes that did not pass.
func (r *Report) Failures() (failed []Outcome) {
	for _, out := range r.Outcomes {
		if !out.Pass {
			failed = append(failed, out)
		}
	}
	return
}

// Totals sums the pass and total counts of reports.
func Totals(reports ...*Report) (pass, total int) {
	for _, r := range reports {
		if r == nil {
			continue
		}
		pass += r.Pass
		total += r.Total
	}
	return
}

// TotalSummary returns the summary line over all reports.
func TotalSummary(reports ...*Report) string {
	return summary(Totals(reports...))
}

func summary(pass, total int) string {
	if pass == total {
		return f("SUCCESS %d/%d passed", pass, total)
	}
	return f("FAILURE %d/%d passed", pass, total)
}
