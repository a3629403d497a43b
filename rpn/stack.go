package rpn

import (
	"slices"
)

// Stack is an unbounded stack of 16-bit values.
type Stack struct {
	Data []uint16
}

func (s *Stack) Push(value uint16) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value uint16, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Len() int {
	return len(s.Data)
}

func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Operands returns the top value as 'a', and the value beneath it as 'b',
// without removing either.
func (s *Stack) Operands() (a, b uint16, ok bool) {
	n := len(s.Data)
	if n < 2 {
		return
	}

	return s.Data[n-1], s.Data[n-2], true
}

// Replace removes the top two values and pushes a single result.
// The caller must have confirmed two values are present via Operands().
func (s *Stack) Replace(value uint16) {
	n := len(s.Data)
	s.Data[n-2] = value
	s.Data = s.Data[:n-1]
}

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []uint16 {
	return slices.Clone(s.Data)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
