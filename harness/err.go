package harness

import (
	"github.com/ezrec/rpn16/translate"
)

var f = translate.From

// ErrRecord indicates the source location of a failed record.
type ErrRecord struct {
	Name   string
	LineNo int
	Err    error
}

func (err *ErrRecord) Error() string {
	return f("%v:%d %v", err.Name, err.LineNo, err.Err)
}

func (err *ErrRecord) Unwrap() error {
	return err.Err
}
