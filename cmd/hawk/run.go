package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/AlexCouch/hawk-lang/hawk"
)

// runCmd implements `hawk <path>` / `hawk run <path>`: dispatch by
// extension, compile-then-execute a .hawk file (writing its .bc
// sibling), or load and execute a .bc file's raw bytes directly.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Compile and run, or execute, a Hawk program" }
func (*runCmd) Usage() string {
	return `run <path>:
  Compile and execute a .hawk source file, or execute a .bc bytecode file.
`
}
func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (*runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		return die("💥 File not provided\n")
	}
	path := args[0]
	ext := filepath.Ext(path)

	switch ext {
	case ".hawk":
		return runSource(path)
	case ".bc":
		return runCompiled(path)
	default:
		fmt.Printf("Unrecognized extension: %s\n", ext)
		return subcommands.ExitSuccess
	}
}

func runSource(path string) subcommands.ExitStatus {
	data, err := os.ReadFile(path)
	if err != nil {
		return die("💥 Failed to read file: %v\n", err)
	}

	artifacts, diags := hawk.Compile(string(data), path)
	if diags.HasErrors() {
		printDiagnostics(string(data), diags)
		return subcommands.ExitSuccess
	}

	bcPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".bc"
	if err := os.WriteFile(bcPath, artifacts.Code, 0o644); err != nil {
		return die("💥 Failed to write bytecode file: %v\n", err)
	}

	result, err := hawk.Run(artifacts.Code)
	if err != nil {
		return die("💥 %v\n", err)
	}
	fmt.Println(result)
	return subcommands.ExitSuccess
}

func runCompiled(path string) subcommands.ExitStatus {
	code, err := os.ReadFile(path)
	if err != nil {
		return die("💥 Failed to read file: %v\n", err)
	}
	result, err := hawk.Run(code)
	if err != nil {
		return die("💥 %v\n", err)
	}
	fmt.Println(result)
	return subcommands.ExitSuccess
}
