package rpn

import (
	"fmt"
	"iter"
	"maps"
)

// Command is a machine command.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	CMD_ENTER       = Command(0) // cmd_enter
	CMD_CLEAR       = Command(1) // cmd_clear
	CMD_POP         = Command(2) // cmd_pop
	CMD_TOP         = Command(3) // cmd_top
	CMD_LEFT_SHIFT  = Command(4) // cmd_left_shift
	CMD_RIGHT_SHIFT = Command(5) // cmd_right_shift
	CMD_OR          = Command(6) // cmd_or
	CMD_AND         = Command(7) // cmd_and
	CMD_ADD         = Command(8) // cmd_add

	command_count = 9
)

const (
	WIDTH      = 16     // Register width in bits.
	MASK       = 0xffff // Mask of a register value.
	SHIFT_MASK = 0x000f // Mask applied to shift amounts.
	CARRY_BIT  = 0x8000 // Carry out of this bit overflows.
)

var _rpn_defines = map[string]string{
	"WIDTH":      fmt.Sprintf("%v", WIDTH),
	"MASK":       fmt.Sprintf("%#x", MASK),
	"SHIFT_MASK": fmt.Sprintf("%#x", SHIFT_MASK),
	"CARRY_BIT":  fmt.Sprintf("%#x", CARRY_BIT),
}

// Defines returns the machine constants, by name.
func Defines() iter.Seq2[string, string] {
	return maps.All(_rpn_defines)
}

// Commands returns all valid commands, in opcode order.
func Commands() iter.Seq[Command] {
	return func(yield func(cmd Command) bool) {
		for cmd := range Command(command_count) {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Valid returns true if the command is one of the known commands.
func (cmd Command) Valid() bool {
	return cmd >= CMD_ENTER && cmd <= CMD_ADD
}

// Binary returns true if the command consumes the top two stack values.
func (cmd Command) Binary() bool {
	switch cmd {
	case CMD_LEFT_SHIFT, CMD_RIGHT_SHIFT, CMD_OR, CMD_AND, CMD_ADD:
		return true
	}
	return false
}

// ParseCommand returns the command for its textual name.
func ParseCommand(name string) (cmd Command, err error) {
	for c := range Commands() {
		if c.String() == name {
			cmd = c
			return
		}
	}

	err = ErrCommandName(name)
	return
}
