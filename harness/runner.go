// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"context"
	"errors"
	"io"
	"iter"
	"log"

	"github.com/ezrec/rpn16/rpn"
	"github.com/ezrec/rpn16/vector"
)

// Runner feeds records to a machine, and compares the results.
type Runner struct {
	Verbose bool         // If set, enables verbose logging.
	Machine *rpn.Machine // Machine under test.
	Table   io.Writer    // If set, receives the results table.
}

// NewRunner creates a runner with a fresh machine.
func NewRunner() (rn *Runner) {
	rn = &Runner{
		Machine: rpn.NewMachine(),
	}

	return
}

// Step dispatches a single record, and returns its outcome.
func (rn *Runner) Step(rec vector.Record) (out Outcome) {
	out.Record = rec
	out.Top, out.Ok = rn.Machine.Dispatch(rec.Command, rec.Value)
	out.Pass = rec.Matches(out.Top, out.Ok)

	if rn.Verbose {
		log.Printf("harness: line %d: %v -> %v %v pass=%v", rec.LineNo, rec, out.Top, out.Ok, out.Pass)
	}

	return
}

// Run all the records of a source through the machine.
// The report holds every outcome up to the first error.
func (rn *Runner) Run(ctx context.Context, name string, records iter.Seq2[vector.Record, error]) (report *Report, err error) {
	report = &Report{Name: name}

	if rn.Machine == nil {
		rn.Machine = rpn.NewMachine()
	}
	if rn.Verbose {
		rn.Machine.Verbose = true
	}

	if rn.Table != nil {
		err = WriteHeader(rn.Table)
		if err != nil {
			return
		}
	}

	for rec, rerr := range records {
		err = ctx.Err()
		if err != nil {
			return
		}

		if rerr != nil {
			err = &ErrRecord{Name: name, LineNo: lineOf(rec, rerr), Err: rerr}
			return
		}

		out := rn.Step(rec)
		report.Add(out)

		if rn.Table != nil {
			err = WriteRow(rn.Table, out)
			if err != nil {
				return
			}
		}
	}

	if rn.Table != nil {
		err = WriteSummary(rn.Table, report.Summary())
	}

	return
}

// lineOf returns the line number of a failed record.
func lineOf(rec vector.Record, err error) int {
	var serr vector.ErrSyntax
	if errors.As(err, &serr) {
		return serr.LineNo
	}
	return rec.LineNo
}
