package rpn

import (
	"errors"

	"github.com/ezrec/rpn16/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrStackEmpty           = errors.New(f("stack empty"))
	ErrOperandsInsufficient = errors.New(f("insufficient operands"))
	ErrOverflow             = errors.New(f("arithmetic overflow"))
)

// ErrCommand is returned for a command outside the known set.
type ErrCommand Command

func (ec ErrCommand) Error() string {
	return f("bad command %v", Command(ec).String())
}

func (ec ErrCommand) Is(err error) (ok bool) {
	_, ok = err.(ErrCommand)
	return
}

// ErrCommandName is returned for an unknown command name.
type ErrCommandName string

func (err ErrCommandName) Error() string {
	return f("command '%v' unknown", string(err))
}
