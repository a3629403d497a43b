package rpn

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_String(t *testing.T) {
	assert := assert.New(t)

	table := map[Command]string{
		CMD_ENTER:       "cmd_enter",
		CMD_CLEAR:       "cmd_clear",
		CMD_POP:         "cmd_pop",
		CMD_TOP:         "cmd_top",
		CMD_LEFT_SHIFT:  "cmd_left_shift",
		CMD_RIGHT_SHIFT: "cmd_right_shift",
		CMD_OR:          "cmd_or",
		CMD_AND:         "cmd_and",
		CMD_ADD:         "cmd_add",
		Command(9):      "Command(9)",
		Command(-1):     "Command(-1)",
	}

	for cmd, name := range table {
		assert.Equal(name, cmd.String())
	}
}

func TestCommands(t *testing.T) {
	assert := assert.New(t)

	cmds := slices.Collect(Commands())
	assert.Equal([]Command{
		CMD_ENTER, CMD_CLEAR, CMD_POP, CMD_TOP,
		CMD_LEFT_SHIFT, CMD_RIGHT_SHIFT, CMD_OR, CMD_AND, CMD_ADD,
	}, cmds)

	for _, cmd := range cmds {
		assert.True(cmd.Valid(), cmd.String())
	}
	assert.False(Command(9).Valid())
	assert.False(Command(-1).Valid())
}

func TestCommand_Binary(t *testing.T) {
	assert := assert.New(t)

	for cmd := range Commands() {
		expect := cmd >= CMD_LEFT_SHIFT
		assert.Equal(expect, cmd.Binary(), cmd.String())
	}
}

func TestParseCommand(t *testing.T) {
	assert := assert.New(t)

	for cmd := range Commands() {
		parsed, err := ParseCommand(cmd.String())
		assert.NoError(err)
		assert.Equal(cmd, parsed)
	}

	_, err := ParseCommand("cmd_mul")
	assert.Error(err)
	assert.Equal(ErrCommandName("cmd_mul"), err)
	assert.Contains(err.Error(), "cmd_mul")
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.Collect(Defines())
	assert.Equal("16", defines["WIDTH"])
	assert.Equal("0xffff", defines["MASK"])
	assert.Equal("0xf", defines["SHIFT_MASK"])
	assert.Equal("0x8000", defines["CARRY_BIT"])
}
