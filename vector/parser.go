package vector

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"log"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rpn16/internal"
	"github.com/ezrec/rpn16/rpn"
)

// Parser reads vector files.
type Parser struct {
	Verbose bool              // If set, verbosely logs each record.
	Equate  map[string]string // Map of user equates.
}

// Define defines a new equate or redefines an existing equate.
func (p *Parser) Define(equ string, value string) {
	if p.Equate == nil {
		p.Equate = map[string]string{equ: value}
	} else {
		p.Equate[equ] = value
	}
}

// Defines returns all names visible to value fields: the machine
// constants, NONE, then user equates.
func (p *Parser) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(rpn.Defines(),
		maps.All(_vector_defines),
		maps.All(p.Equate),
	)
}

// Parse reads all records.
func (p *Parser) Parse(in io.Reader) (records []Record, err error) {
	for rec, err := range p.Records(in) {
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}

	return
}

// Records returns an iterator over the records in a vector file.
// The first row is a header, and is skipped. Lines starting with '#'
// are comments. Iteration stops after the first error.
func (p *Parser) Records(in io.Reader) iter.Seq2[Record, error] {
	return func(yield func(rec Record, err error) bool) {
		r := csv.NewReader(in)
		r.Comment = '#'
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true

		defines := maps.Collect(p.Defines())

		header := true
		for {
			fields, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var perr *csv.ParseError
				lineno := 0
				if errors.As(err, &perr) {
					lineno = perr.Line
				}
				yield(Record{}, ErrSyntax{LineNo: lineno, Err: err})
				return
			}

			if header {
				header = false
				continue
			}

			lineno, _ := r.FieldPos(0)
			rec, err := p.parseRecord(defines, fields)
			rec.LineNo = lineno
			rec.Line = strings.Join(fields, ",")
			if err != nil {
				yield(rec, ErrSyntax{LineNo: rec.LineNo, Line: rec.Line, Err: err})
				return
			}

			if p.Verbose {
				log.Printf("vector: %d: %v", rec.LineNo, rec)
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// parseRecord decodes the command, value and expected fields.
func (p *Parser) parseRecord(defines map[string]string, fields []string) (rec Record, err error) {
	if len(fields) != 3 {
		err = ErrFieldCount
		return
	}

	rec.Command, err = rpn.ParseCommand(strings.TrimSpace(fields[0]))
	if err != nil {
		return
	}

	value, err := valueOf(defines, fields[1])
	if err != nil {
		return
	}
	if value != NONE {
		rec.Value = uint16(value)
		rec.HasValue = true
	}

	expect, err := valueOf(defines, fields[2])
	if err != nil {
		return
	}
	if expect != NONE {
		if expect < 0 || expect > rpn.MASK {
			err = errors.Join(ErrValueRange, ErrParseNumber(fields[2]))
			return
		}
		rec.Expect = uint16(expect)
		rec.HasExpect = true
	}

	return
}

// valueOf returns the value of a field: a number, an equate name, or
// a $(...) expression.
func valueOf(defines map[string]string, word string) (value int64, err error) {
	word = strings.TrimSpace(word)

	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return parenEval(defines, word[2:len(word)-1])
	}

	if def, ok := defines[word]; ok {
		word = def
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval evaluates a $(...) expression.
func parenEval(defines map[string]string, expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "vector"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range defines {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}
