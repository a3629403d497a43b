package harness

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/rpn16/vector"
)

// Source is a named vector file.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource returns a source for a file; "-" is standard input.
func FileSource(name string) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			if name == "-" {
				return io.NopCloser(os.Stdin), nil
			}
			return os.Open(name)
		},
	}
}

// TextSource returns a source for in-memory vector text.
func TextSource(name string, text string) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(text)), nil
		},
	}
}

// Suite runs a set of vector sources.
//
// By default all sources share one machine, and are run in order, so
// the stack carries over from one source to the next. When Isolated is
// set, each source gets its own machine, and up to Parallel sources run
// at once.
type Suite struct {
	Verbose  bool           // If set, enables verbose logging.
	Isolated bool           // If set, each source runs on its own machine.
	Parallel int            // Limit of concurrent sources. Zero is unlimited.
	Parser   *vector.Parser // Vector parser. If nil, a default parser is used.
	Table    io.Writer      // If set, receives the results tables.
}

func (s *Suite) parser() *vector.Parser {
	if s.Parser == nil {
		return &vector.Parser{Verbose: s.Verbose}
	}
	return s.Parser
}

// runSource runs a single source on a runner.
func (s *Suite) runSource(ctx context.Context, rn *Runner, src Source) (report *Report, err error) {
	if s.Verbose {
		log.Printf("harness: run %v", src.Name)
	}

	in, err := src.Open()
	if err != nil {
		return
	}
	defer in.Close()

	report, err = rn.Run(ctx, src.Name, s.parser().Records(in))
	return
}

// Run all the sources, returning one report per source in source order.
// On error the reports of the sources that completed are returned.
func (s *Suite) Run(ctx context.Context, sources ...Source) (reports []*Report, err error) {
	reports = make([]*Report, len(sources))

	if !s.Isolated {
		rn := NewRunner()
		rn.Verbose = s.Verbose
		rn.Table = s.Table
		for n, src := range sources {
			reports[n], err = s.runSource(ctx, rn, src)
			if err != nil {
				return
			}
		}
		return
	}

	tables := make([]bytes.Buffer, len(sources))

	eg, ctx := errgroup.WithContext(ctx)
	if s.Parallel > 0 {
		eg.SetLimit(s.Parallel)
	}

	for n, src := range sources {
		eg.Go(func() (err error) {
			rn := NewRunner()
			rn.Verbose = s.Verbose
			if s.Table != nil {
				rn.Table = &tables[n]
			}
			reports[n], err = s.runSource(ctx, rn, src)
			return
		})
	}

	err = eg.Wait()

	if s.Table != nil {
		for n := range tables {
			_, werr := tables[n].WriteTo(s.Table)
			if err == nil {
				err = werr
			}
		}
	}

	return
}
