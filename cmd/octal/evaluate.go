package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/forestrie/go-octal/octal"
)

var errUnknownOperator = errors.New("unknown operator")

const (
	opAdd     = "+"
	opSub     = "-"
	opCompare = "cmp"
	opEqual   = "eq"
	opLess    = "lt"
)

func knownOperator(op string) bool {
	switch op {
	case opAdd, opSub, opCompare, opEqual, opLess:
		return true
	}
	return false
}

// evaluate parses both operands and renders the result of a op b.
func evaluate(a, op, b string) (string, error) {
	if !knownOperator(op) {
		return "", fmt.Errorf("%w: %q", errUnknownOperator, op)
	}
	x, err := octal.Parse(a)
	if err != nil {
		return "", fmt.Errorf("left operand: %w", err)
	}
	y, err := octal.Parse(b)
	if err != nil {
		return "", fmt.Errorf("right operand: %w", err)
	}

	switch op {
	case opAdd:
		return x.Add(y).String(), nil
	case opSub:
		d, err := x.Sub(y)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case opCompare:
		return strconv.Itoa(octal.Compare(x, y)), nil
	case opEqual:
		return strconv.FormatBool(x.Equal(y)), nil
	default:
		return strconv.FormatBool(x.Less(y)), nil
	}
}

// printSamples writes the sample computations, stopping at the first write
// error.
func printSamples(w io.Writer) error {
	a := octal.MustParse("7")
	b := octal.MustParse("1")
	x := octal.MustParse("155")
	y := octal.MustParse("137")
	d, err := x.Sub(y)
	if err != nil {
		return err
	}
	big1 := octal.MustParse("777")
	big2 := octal.MustParse("1")
	seven := octal.MustParse("7")

	lines := []string{
		fmt.Sprintf("%s + %s = %s", a, b, a.Add(b)),
		fmt.Sprintf("%s - %s = %s", x, y, d),
		fmt.Sprintf("%s + %s = %s", big1, big2, big1.Add(big2)),
		fmt.Sprintf("compare(%s,%s) = %d", a, b, a.Cmp(b)),
		fmt.Sprintf("equals(%s,%s) = %t", seven, a, seven.Equal(a)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
