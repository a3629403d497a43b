// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rpn

import (
	"fmt"
	"log"
	"strings"
	"sync"
)

// Machine is a 16-bit RPN machine. It is safe for concurrent use; each
// dispatch is serialized against the others.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	mutex      sync.Mutex
	stack      Stack
	dispatches int // Count of dispatches since reset.
}

// NewMachine creates a machine with an empty stack.
func NewMachine() (m *Machine) {
	m = &Machine{}

	return
}

// Dispatch executes a single command, and returns the new top of stack.
// ok is false when there is no result: the stack is empty, a binary
// command lacked operands, the addition overflowed, or the command is
// unknown.
func (m *Machine) Dispatch(cmd Command, value uint16) (top uint16, ok bool) {
	top, err := m.Execute(cmd, value)
	if err != nil {
		return 0, false
	}

	return top, true
}

// Execute executes a single command, and returns the new top of stack,
// or an error describing why there is no result.
// The stack is never modified when an error other than ErrStackEmpty is
// returned.
func (m *Machine) Execute(cmd Command, value uint16) (top uint16, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.dispatches++

	if m.Verbose {
		defer func() {
			if err != nil {
				log.Printf("rpn: %v %#06x: %v", cmd, value, err)
			} else {
				log.Printf("rpn: %v %#06x: top %#06x", cmd, value, top)
			}
		}()
	}

	switch cmd {
	case CMD_ENTER:
		m.stack.Push(value & MASK)
	case CMD_CLEAR:
		m.stack.Reset()
	case CMD_POP:
		_, ok := m.stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
	case CMD_TOP:
		// No mutation.
	case CMD_LEFT_SHIFT, CMD_RIGHT_SHIFT, CMD_OR, CMD_AND, CMD_ADD:
		a, b, ok := m.stack.Operands()
		if !ok {
			err = ErrOperandsInsufficient
			return
		}
		var output uint16
		output, err = doAlu(cmd, a, b)
		if err != nil {
			return
		}
		m.stack.Replace(output)
	default:
		err = ErrCommand(cmd)
		return
	}

	top, ok := m.stack.Peek()
	if !ok {
		err = ErrStackEmpty
	}

	return
}

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.stack.Len()
}

// Dispatches returns the count of dispatches since reset.
func (m *Machine) Dispatches() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.dispatches
}

// Stack returns a copy of the stack, bottom first.
func (m *Machine) Stack() []uint16 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.stack.Values()
}

// Reset the machine state.
// - Empties the stack.
// - Zeros the dispatch counter.
func (m *Machine) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.Verbose {
		log.Printf("rpn: reset")
	}

	m.stack.Reset()
	m.dispatches = 0
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var top string
	val, ok := m.stack.Peek()
	if ok {
		top = fmt.Sprintf("%04X %016b", val, val)
	} else {
		top = "---- ----------------"
	}
	text += fmt.Sprintf("% 5s: %v\n", "top", top)
	text += fmt.Sprintf("% 5s: %v\n", "depth", m.stack.Len())

	values := make([]string, 0, m.stack.Len())
	for _, val := range m.stack.Data {
		values = append(values, fmt.Sprintf("%04X", val))
	}
	text += fmt.Sprintf("% 5s: [%v]\n", "stack", strings.Join(values, " "))

	return
}
