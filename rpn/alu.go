// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rpn

// Add16 returns the sum of x and y, computed with AND, XOR and shift only.
//
// ErrOverflow is returned as soon as a carry would leave bit 15; the
// sum is then undefined.
func Add16(x, y uint16) (sum uint16, err error) {
	for y != 0 {
		pair := x & y
		if (pair & CARRY_BIT) != 0 {
			err = ErrOverflow
			return
		}
		carry := pair << 1
		x = x ^ y
		y = carry
	}

	sum = x
	return
}

// doAlu performs a binary command on the operands, where 'a' was the
// top of stack and 'b' the value beneath it.
func doAlu(cmd Command, a, b uint16) (output uint16, err error) {
	switch cmd {
	case CMD_LEFT_SHIFT: // shl
		output = b << (a & SHIFT_MASK)
	case CMD_RIGHT_SHIFT: // shr
		output = b >> (a & SHIFT_MASK)
	case CMD_OR: // or
		output = b | a
	case CMD_AND: // and
		output = b & a
	case CMD_ADD: // add
		output, err = Add16(b, a)
	default:
		err = ErrCommand(cmd)
	}

	return
}
