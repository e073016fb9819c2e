// Command hawk is the CLI front-end: `hawk <path>` compiles-and-runs a
// .hawk source file (or runs a .bc bytecode file directly), `hawk debug
// <stage> <path>` prints a debug dump after one stage, and `hawk repl`
// starts an interactive session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&runCmd{}, "")
	subcommands.Register(&debugCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	// No argument at all exits 0 per §6, without entering subcommands
	// at all (its default is a usage error).
	if len(os.Args) < 2 {
		os.Exit(0)
	}

	// `hawk -debug <stage> <path>` is the flag spelling of `hawk debug`.
	if os.Args[1] == "-debug" {
		os.Args[1] = "debug"
	}

	// A bare `hawk <path>` (no subcommand word) is shorthand for `hawk
	// run <path>`, matching §6's "hawk <path>" contract directly.
	if _, ok := knownSubcommands[os.Args[1]]; !ok {
		os.Args = append([]string{os.Args[0], "run"}, os.Args[1:]...)
	}

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

var knownSubcommands = map[string]bool{
	"run": true, "debug": true, "repl": true,
	"help": true, "flags": true, "commands": true,
}

func die(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format, args...)
	return subcommands.ExitFailure
}
