// Package vector reads test vectors for the RPN machine.
//
// A vector file is comma separated text with a header row, then one
// record per line of the form
//
//	command,value,expected
//
// where command is a name such as cmd_enter or cmd_add, and value and
// expected are integers (decimal, 0x hex, 0b binary, 0o octal), or a
// $(...) expression. The sentinel NONE (-999) marks an absent value, or
// an expected absence of result.
package vector
