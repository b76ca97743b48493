package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdGenerate = "generate"
	cmdCheck    = "check"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultDeps()))
}

// runMain dispatches to a command and returns the process exit code.
// Without a command, or when the first argument is a flag, it runs generate.
func runMain(args []string, deps *Dependencies) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	cmd := cmdGenerate
	if len(rest) > 0 && !isFlag(rest[0]) {
		if !isCommand(rest[0]) {
			fmt.Fprintf(deps.Stderr, "unknown command: %s\n", rest[0])
			printUsage(deps.Stderr)
			return ExitUsage
		}
		cmd, rest = rest[0], rest[1:]
	}

	var err error
	switch cmd {
	case cmdGenerate:
		err = runGenerate(rest, deps)
	case cmdCheck:
		err = runCheck(rest, deps)
	case cmdVersion:
		fmt.Fprintf(deps.Stdout, "studyindex %s\n", Version)
		return ExitSuccess
	case cmdHelp:
		return runHelp(rest, deps)
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case cmdGenerate, cmdCheck, cmdVersion, cmdHelp:
		return true
	}
	return false
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// hasVerboseFlag scans raw arguments for -v or --verbose before flag parsing.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" || a == "--verbose=true" {
			return true
		}
	}
	return false
}
