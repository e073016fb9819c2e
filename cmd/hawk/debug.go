package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/AlexCouch/hawk-lang/hawk"
)

// debugCmd implements `hawk debug <stage> <path>`: compiles the whole
// program, then prints a JSON debug dump of the named stage's result and
// exits. If any stage reports a diagnostic, the diagnostics are printed
// instead and no dump is made. This is presentational-only and
// deliberately thin: it reuses the ast.Node/resolver.Table/types.Map the
// compile produced.
type debugCmd struct{}

func (*debugCmd) Name() string     { return "debug" }
func (*debugCmd) Synopsis() string { return "Print a debug dump of one pipeline stage" }
func (*debugCmd) Usage() string {
	return `debug <ast|symtab|tymap> <path>:
  Compile the program and print the named stage's JSON dump.
`
}
func (*debugCmd) SetFlags(f *flag.FlagSet) {}

func (*debugCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 2 {
		return die("💥 Usage: hawk debug <ast|symtab|tymap> <path>\n")
	}
	stage, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		return die("💥 Failed to read file: %v\n", err)
	}

	artifacts, diags := hawk.Compile(string(data), path)
	if diags.HasErrors() {
		printDiagnostics(string(data), diags)
		return subcommands.ExitSuccess
	}

	var dump any
	switch stage {
	case "ast":
		dump = artifacts.AST
	case "symtab":
		dump = artifacts.Table
	case "tymap":
		dump = artifacts.TyMap
	default:
		return die("💥 Unknown debug stage: %s\n", stage)
	}

	out, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return die("💥 Failed to marshal dump: %v\n", err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
