package main

import (
	"fmt"

	"github.com/AlexCouch/hawk-lang/diag"
)

// printDiagnostics renders every recorded diagnostic against source,
// one after another, to stdout. Per §6, diagnostic-only failure exits
// 0 after printing, same as a successful run.
func printDiagnostics(source string, diags diag.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Println(d.Render(source))
	}
}
