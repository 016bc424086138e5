package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/pflag"
)

// logLevels are the levels logger.New distinguishes. Anything else silently
// falls back to INFO, so it is rejected here instead.
var logLevels = []string{"NOOP", "TEST", "DEBUG", "INFO"}

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var scenarioPath string
	var logLevel string

	flagSet := pflag.NewFlagSet("octal", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&scenarioPath, "scenarios", "", "evaluate the scenarios in this YAML file")
	flagSet.StringVar(&logLevel, "log-level", "NOOP", "log level: "+strings.Join(logLevels, ", "))
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return exitOK
	}

	if !slices.Contains(logLevels, logLevel) {
		fmt.Fprintf(stderr, "error: unsupported --log-level %q, want one of %s\n",
			logLevel, strings.Join(logLevels, ", "))
		return exitUsage
	}
	logger.New(logLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("octal")

	positional := flagSet.Args()

	if scenarioPath != "" {
		if len(positional) > 0 {
			fmt.Fprintf(stderr, "error: unexpected argument with --scenarios: %s\n", positional[0])
			return exitUsage
		}
		scenarios, err := loadScenarioFile(scenarioPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitUsage
		}
		log.Debugf("loaded %d scenarios from %s", len(scenarios), scenarioPath)
		if failed := runScenarios(stdout, log, scenarios); failed > 0 {
			log.Infof("%d of %d scenarios failed", failed, len(scenarios))
			return exitFailed
		}
		return exitOK
	}

	switch len(positional) {
	case 0:
		if err := printSamples(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailed
		}
		return exitOK
	case 3:
		result, err := evaluate(positional[0], positional[1], positional[2])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			if errors.Is(err, errUnknownOperator) {
				return exitUsage
			}
			return exitFailed
		}
		log.Debugf("%s %s %s = %s", positional[0], positional[1], positional[2], result)
		fmt.Fprintln(stdout, result)
		return exitOK
	default:
		fmt.Fprintf(stderr, "error: expected no arguments or A OP B, got %d arguments\n", len(positional))
		printHelp(stderr, flagSet)
		return exitUsage
	}
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: octal [flags] [A OP B]\n\n")
	fmt.Fprintf(w, "Operators: + - cmp eq lt\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fmt.Fprint(w, flagSet.FlagUsages())
}
