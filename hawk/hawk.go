// Package hawk wires the pipeline stages — lexer, parser, resolver,
// types, codegen, vm — into the driver contract the spec describes:
// diagnostics accumulate in a shared per-run buffer, and the pipeline
// halts as soon as any stage reports one.
package hawk

import (
	"github.com/AlexCouch/hawk-lang/ast"
	"github.com/AlexCouch/hawk-lang/codegen"
	"github.com/AlexCouch/hawk-lang/diag"
	"github.com/AlexCouch/hawk-lang/lexer"
	"github.com/AlexCouch/hawk-lang/parser"
	"github.com/AlexCouch/hawk-lang/resolver"
	"github.com/AlexCouch/hawk-lang/types"
	"github.com/AlexCouch/hawk-lang/vm"
)

// Artifacts collects the intermediate structures a -debug dump needs
// from a partial or complete compile.
type Artifacts struct {
	AST   *ast.Node
	Table *resolver.Table
	TyMap *types.Map
	Code  []byte
}

// Compile runs the front half of the pipeline (lex, parse, resolve,
// infer, codegen) over source, halting at the first stage that reports
// a diagnostic. Artifacts holds whatever stages completed, for -debug.
func Compile(source, path string) (Artifacts, diag.Diagnostics) {
	var diags diag.Diagnostics
	var artifacts Artifacts

	lx := lexer.New(source, path)
	tokens, lexDiags := lx.Scan()
	diags.Merge(lexDiags)
	if diags.HasErrors() {
		return artifacts, diags
	}

	p := parser.New(tokens, path)
	root, parseDiags := p.Parse()
	diags.Merge(parseDiags)
	artifacts.AST = root
	if diags.HasErrors() {
		return artifacts, diags
	}

	table, resolveDiags := resolver.Resolve(root)
	diags.Merge(resolveDiags)
	artifacts.Table = table
	if diags.HasErrors() {
		return artifacts, diags
	}

	tymap, typeDiags := types.Infer(root, table)
	diags.Merge(typeDiags)
	artifacts.TyMap = tymap
	if diags.HasErrors() {
		return artifacts, diags
	}

	code, codeDiags := codegen.Generate(root)
	diags.Merge(codeDiags)
	artifacts.Code = code
	if diags.HasErrors() {
		return artifacts, diags
	}

	return artifacts, diags
}

// Run executes an already-compiled bytecode buffer on a fresh VM.
func Run(code []byte) (int32, error) {
	return vm.New().Run(code)
}

// CompileAndRun compiles source and, if that produced no diagnostics,
// runs the resulting bytecode immediately.
func CompileAndRun(source, path string) (int32, diag.Diagnostics, error) {
	artifacts, diags := Compile(source, path)
	if diags.HasErrors() {
		return 0, diags, nil
	}
	v, err := Run(artifacts.Code)
	return v, diags, err
}
