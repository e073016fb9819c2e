package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"github.com/AlexCouch/hawk-lang/hawk"
)

// replCmd starts an interactive session: each line is a whole `let ...
// do ...` program, compiled and run through the full pipeline and
// printed immediately. Line editing and history come from readline,
// a dependency the teacher declared but never actually wired in.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive Hawk session" }
func (*replCmd) Usage() string {
	return `repl:
  Start an interactive REPL. Each line is compiled and run as a whole program.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("hawk> ")
	if err != nil {
		return die("💥 Failed to start readline: %v\n", err)
	}
	defer rl.Close()

	fmt.Println("Hawk REPL. Ctrl-D to exit.")
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return subcommands.ExitSuccess
			}
			return die("💥 %v\n", err)
		}
		if line == "" {
			continue
		}

		result, diags, err := hawk.CompileAndRun(line, "<repl>")
		if diags.HasErrors() {
			printDiagnostics(line, diags)
			continue
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(result)
	}
}
