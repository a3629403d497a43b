package rpn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// add16 is the reference sum, using native 32-bit addition.
func add16(x, y uint16) (sum uint16, overflow bool) {
	total := uint32(x) + uint32(y)
	return uint16(total & MASK), total > MASK
}

func TestAdd16(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		X, Y     uint16
		Sum      uint16
		Overflow bool
	}){
		{X: 0, Y: 0, Sum: 0},
		{X: 5, Y: 3, Sum: 8},
		{X: 1, Y: 0xfffe, Sum: 0xffff},
		{X: 0x7fff, Y: 0x7fff, Sum: 0xfffe},
		{X: 0x8000, Y: 0x7fff, Sum: 0xffff},
		{X: 0xffff, Y: 0, Sum: 0xffff},
		{X: 0, Y: 0xffff, Sum: 0xffff},
		{X: 0xffff, Y: 1, Overflow: true},
		{X: 1, Y: 0xffff, Overflow: true},
		{X: 8, Y: 0xffff, Overflow: true},
		{X: 0x8000, Y: 0x8000, Overflow: true},
		{X: 0xffff, Y: 0xffff, Overflow: true},
	}

	for _, entry := range table {
		sum, err := Add16(entry.X, entry.Y)
		if entry.Overflow {
			assert.ErrorIs(err, ErrOverflow, "%#x + %#x", entry.X, entry.Y)
		} else {
			assert.NoError(err, "%#x + %#x", entry.X, entry.Y)
			assert.Equal(entry.Sum, sum, "%#x + %#x", entry.X, entry.Y)
		}
	}
}

func TestAdd16_Sweep(t *testing.T) {
	assert := assert.New(t)

	// Every x against a set of y values that exercise each carry chain.
	ys := []uint16{0, 1, 2, 3, 0x00ff, 0x0100, 0x7fff, 0x8000, 0x8001, 0xaaaa, 0x5555, 0xfffe, 0xffff}
	for x := range 0x10000 {
		for _, y := range ys {
			expect, overflow := add16(uint16(x), y)
			sum, err := Add16(uint16(x), y)
			if overflow {
				if err == nil {
					assert.Fail("expected overflow", "%#x + %#x", x, y)
					return
				}
			} else if err != nil || sum != expect {
				assert.Fail("bad sum", "%#x + %#x = %#x, %v", x, y, sum, err)
				return
			}
		}
	}
}

func TestAdd16_Random(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(16))
	for range 50000 {
		x := uint16(rng.Uint32())
		y := uint16(rng.Uint32())
		expect, overflow := add16(x, y)
		sum, err := Add16(x, y)
		if overflow {
			assert.ErrorIs(err, ErrOverflow)
		} else {
			assert.NoError(err)
			assert.Equal(expect, sum)
		}
	}
}

func TestAdd16_Commutative(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(61))
	for range 10000 {
		x := uint16(rng.Uint32())
		y := uint16(rng.Uint32())
		s1, e1 := Add16(x, y)
		s2, e2 := Add16(y, x)
		assert.Equal(e1 == nil, e2 == nil)
		if e1 == nil {
			assert.Equal(s1, s2)
		}
	}
}

func FuzzAdd16(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(5), uint16(3))
	f.Add(uint16(0xffff), uint16(1))
	f.Add(uint16(0x8000), uint16(0x8000))
	f.Add(uint16(0x7fff), uint16(0x8000))

	f.Fuzz(func(t *testing.T, x uint16, y uint16) {
		assert := assert.New(t)

		expect, overflow := add16(x, y)
		sum, err := Add16(x, y)
		if overflow {
			assert.ErrorIs(err, ErrOverflow)
		} else {
			assert.NoError(err)
			assert.Equal(expect, sum)
		}
	})
}

func TestDoAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Cmd    Command
		A, B   uint16
		Output uint16
		Err    error
	}){
		{Cmd: CMD_LEFT_SHIFT, A: 4, B: 1, Output: 16},
		{Cmd: CMD_LEFT_SHIFT, A: 15, B: 1, Output: 0x8000},
		{Cmd: CMD_LEFT_SHIFT, A: 16, B: 1, Output: 1},        // 16 & 0xf == 0
		{Cmd: CMD_LEFT_SHIFT, A: 0x13, B: 1, Output: 8},      // 0x13 & 0xf == 3
		{Cmd: CMD_LEFT_SHIFT, A: 1, B: 0x8001, Output: 0x02}, // bit 15 lost
		{Cmd: CMD_RIGHT_SHIFT, A: 4, B: 0x100, Output: 0x10},
		{Cmd: CMD_RIGHT_SHIFT, A: 15, B: 0xffff, Output: 1},
		{Cmd: CMD_RIGHT_SHIFT, A: 0x20, B: 0xffff, Output: 0xffff},
		{Cmd: CMD_OR, A: 0xf0f0, B: 0x0f0f, Output: 0xffff},
		{Cmd: CMD_AND, A: 0xf0f0, B: 0x3c3c, Output: 0x3030},
		{Cmd: CMD_ADD, A: 3, B: 5, Output: 8},
		{Cmd: CMD_ADD, A: 0xffff, B: 8, Err: ErrOverflow},
		{Cmd: CMD_ENTER, Err: ErrCommand(0)},
		{Cmd: Command(42), Err: ErrCommand(0)},
	}

	for _, entry := range table {
		output, err := doAlu(entry.Cmd, entry.A, entry.B)
		if entry.Err != nil {
			assert.ErrorIs(err, entry.Err, entry.Cmd.String())
			continue
		}
		assert.NoError(err, entry.Cmd.String())
		assert.Equal(entry.Output, output, "%v a=%#x b=%#x", entry.Cmd, entry.A, entry.B)
	}
}
