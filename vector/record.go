package vector

import (
	"fmt"

	"github.com/ezrec/rpn16/rpn"
)

// NONE is the sentinel for an absent value or result.
const NONE = -999

var _vector_defines = map[string]string{
	"NONE": fmt.Sprintf("%v", NONE),
}

// Record is a single test vector.
type Record struct {
	LineNo int    // Line number in the source.
	Line   string // Source text of the record.

	Command   rpn.Command // Command to dispatch.
	Value     uint16      // Value to dispatch with.
	HasValue  bool        // Set if the source provided a value.
	Expect    uint16      // Expected top of stack.
	HasExpect bool        // Set if a result is expected.
}

// Matches returns true if a dispatch result is the expected one:
// both absent, or both present and equal.
func (rec Record) Matches(top uint16, ok bool) bool {
	if !rec.HasExpect || !ok {
		return rec.HasExpect == ok
	}

	return rec.Expect == top
}

// String returns the record in vector file form.
func (rec Record) String() string {
	value := fmt.Sprintf("%v", NONE)
	if rec.HasValue {
		value = fmt.Sprintf("%v", rec.Value)
	}
	expect := fmt.Sprintf("%v", NONE)
	if rec.HasExpect {
		expect = fmt.Sprintf("%v", rec.Expect)
	}

	return fmt.Sprintf("%v,%v,%v", rec.Command, value, expect)
}
