// octal prints sample octal arithmetic, evaluates single expressions and runs
// YAML scenario files against the octal package.
//
// With no arguments it prints a fixed set of sample computations:
//
//	$ octal
//	7 + 1 = 10
//	155 - 137 = 16
//	777 + 1 = 1000
//	compare(7,1) = 1
//	equals(7,7) = true
//
// With three arguments it evaluates one expression. The operator is one of
// "+", "-", "cmp", "eq" or "lt":
//
//	$ octal 1000 - 1
//	777
//
// With --scenarios it evaluates every scenario in a YAML file and exits 1 if
// any of them fail. See testdata/scenarios.yaml for the format.
package main
