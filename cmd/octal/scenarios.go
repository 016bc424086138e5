package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-octal/octal"
	"gopkg.in/yaml.v3"
)

var (
	errNoScenarios    = errors.New("scenario file has no scenarios")
	errBadScenario    = errors.New("invalid scenario")
	errUnknownErrKind = errors.New("unknown wantErr kind")
)

// wantErrKinds maps the wantErr values a scenario may use to the error the
// evaluation must match.
var wantErrKinds = map[string]error{
	"underflow": octal.ErrUnderflow,
	"invalid":   octal.ErrInvalidArgument,
}

type scenario struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	Op   string `yaml:"op"`
	B    string `yaml:"b"`

	// Exactly one of these is set.
	Want    string `yaml:"want"`
	WantErr string `yaml:"wantErr"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func (s scenario) expr() string {
	return fmt.Sprintf("%s %s %s", s.A, s.Op, s.B)
}

func loadScenarioFile(path string) ([]scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scenarios, err := decodeScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

func decodeScenarios(r io.Reader) ([]scenario, error) {
	var doc scenarioFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoScenarios
		}
		return nil, err
	}
	if len(doc.Scenarios) == 0 {
		return nil, errNoScenarios
	}

	for i := range doc.Scenarios {
		s := &doc.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if !knownOperator(s.Op) {
			return nil, fmt.Errorf("%w %s: %w: %q", errBadScenario, s.Name, errUnknownOperator, s.Op)
		}
		if (s.Want == "") == (s.WantErr == "") {
			return nil, fmt.Errorf("%w %s: exactly one of want and wantErr must be set", errBadScenario, s.Name)
		}
		if _, ok := wantErrKinds[s.WantErr]; s.WantErr != "" && !ok {
			return nil, fmt.Errorf("%w %s: %w: %q", errBadScenario, s.Name, errUnknownErrKind, s.WantErr)
		}
	}
	return doc.Scenarios, nil
}

// runScenarios evaluates each scenario, prints a PASS or FAIL line for it and
// returns the number that failed.
func runScenarios(w io.Writer, log logger.Logger, scenarios []scenario) int {
	failed := 0
	for _, s := range scenarios {
		got, err := evaluate(s.A, s.Op, s.B)
		log.Debugf("%s: %s -> %q, err=%v", s.Name, s.expr(), got, err)

		if s.WantErr != "" {
			if errors.Is(err, wantErrKinds[s.WantErr]) {
				fmt.Fprintf(w, "PASS %s: %s fails with %s\n", s.Name, s.expr(), s.WantErr)
				continue
			}
			failed++
			if err != nil {
				fmt.Fprintf(w, "FAIL %s: %s: %v, want %s\n", s.Name, s.expr(), err, s.WantErr)
				continue
			}
			fmt.Fprintf(w, "FAIL %s: %s = %s, want %s\n", s.Name, s.expr(), got, s.WantErr)
			continue
		}

		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %s: %v\n", s.Name, s.expr(), err)
			continue
		}
		if got != s.Want {
			failed++
			fmt.Fprintf(w, "FAIL %s: %s = %s, want %s\n", s.Name, s.expr(), got, s.Want)
			continue
		}
		fmt.Fprintf(w, "PASS %s: %s = %s\n", s.Name, s.expr(), got)
	}
	return failed
}
