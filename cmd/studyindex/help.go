package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: studyindex [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Regenerate the study resource index pages (default)")
	fmt.Fprintln(w, "  check      Verify front matter and links of the generated pages")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'studyindex help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for generate or check.
func printCommandUsage(w io.Writer, cmd string) {
	fmt.Fprintf(w, "Usage: studyindex %s [flags]\n", cmd)
	fmt.Fprintln(w)
	switch cmd {
	case cmdGenerate:
		fmt.Fprintln(w, "Scan the assets directory and rewrite the top-level index")
		fmt.Fprintln(w, "and one index page per category folder.")
	case cmdCheck:
		fmt.Fprintln(w, "Re-read the pages a generate run writes and report missing")
		fmt.Fprintln(w, "titles and broken relative links. Exits 4 when problems exist.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --root <dir>          Site root (default: executable directory)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-folder details")
}

// runHelp prints help for a specific command and returns an exit code.
func runHelp(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdGenerate, cmdCheck:
		printCommandUsage(deps.Stdout, args[0])
	case cmdVersion:
		fmt.Fprintln(deps.Stdout, "Usage: studyindex version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(deps.Stdout, "Usage: studyindex help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
