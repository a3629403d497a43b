// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/rpn16/harness"
	"github.com/ezrec/rpn16/vector"
)

// Exit status codes.
const (
	EXIT_SUCCESS = 0 // All records passed.
	EXIT_FAILURE = 1 // At least one record failed.
	EXIT_ERROR   = 2 // Bad arguments, or an unreadable vector file.
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// run the command line, and return the exit status.
func run(name string, args []string, stdout io.Writer, stderr io.Writer) int {
	var input string
	var isolate bool
	var parallel int
	var quiet bool
	var verbose bool

	parser := &vector.Parser{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&input, "i", "rpn-input.csv", "Vector file to run ('-' for stdin)")
	flags.BoolVar(&isolate, "isolate", false, "Run each vector file on its own machine")
	flags.IntVar(&parallel, "j", 0, "Vector files to run at once, with -isolate (0 for unlimited)")
	flags.BoolVar(&quiet, "q", false, "Quiet mode, only print the summary")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.Func("D", "Define NAME=VALUE for vector fields (repeatable)", func(def string) error {
		name, value, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", def)
		}
		parser.Define(name, value)
		return nil
	})

	err := flags.Parse(args)
	if err != nil {
		return EXIT_ERROR
	}

	parser.Verbose = verbose

	sources := []harness.Source{harness.FileSource(input)}
	for _, name := range flags.Args() {
		sources = append(sources, harness.FileSource(name))
	}

	suite := &harness.Suite{
		Verbose:  verbose,
		Isolated: isolate,
		Parallel: parallel,
		Parser:   parser,
	}
	if !quiet {
		suite.Table = stdout
	}

	reports, err := suite.Run(context.Background(), sources...)
	if err != nil {
		logger := log.New(stderr, "", log.LstdFlags)
		logger.Printf("%v: %v", name, err)
		return EXIT_ERROR
	}

	if quiet || len(reports) > 1 {
		fmt.Fprintln(stdout, harness.TotalSummary(reports...))
	}

	pass, total := harness.Totals(reports...)
	if pass != total {
		return EXIT_FAILURE
	}

	return EXIT_SUCCESS
}
