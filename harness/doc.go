// Package harness runs test vectors against the RPN machine and reports
// pass/fail results as a table.
package harness
