// Package rpn implements a 16-bit reverse polish notation machine.
//
// The machine holds an unbounded stack of 16-bit unsigned values and
// accepts one of nine commands per dispatch: enter, clear, pop, top,
// left shift, right shift, or, and, add. Addition is carried out by a
// bitwise adder built from AND, XOR and shift only, which reports
// overflow rather than wrapping.
//
// Every dispatch yields either the new top of stack, or no result when
// the stack is empty, when a binary command lacks operands, or when an
// addition overflows. None of these conditions mutate the stack.
package rpn
