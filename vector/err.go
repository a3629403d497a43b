package vector

import (
	"errors"

	"github.com/ezrec/rpn16/translate"
)

var f = translate.From

var (
	ErrFieldCount = errors.New(f("expected 3 fields"))
	ErrValueRange = errors.New(f("value out of range"))
)

// ErrSyntax locates an error in a vector file.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
