// Command tinyapi-lint statically checks tinyapi call sites.
//
// It scans directories of Go source for client and endpoint declarations,
// synthesizes a call signature for each endpoint from its route template
// and statically visible defaults, and reports call sites that miss a
// required route parameter or supply an unexpected one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanjacob/tiny-api-client/internal/lint"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Import path of the tinyapi package (defaults to the canonical path, or the scanned module's fork of it)")
		verboseFlag = flag.Bool("verbose", false, "Include finding kinds in the output")
		quietFlag   = flag.Bool("quiet", false, "Suppress output; only the exit code reports problems")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Static checker for tinyapi endpoint call sites.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./pkg/clients      Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose ./internal/...\n", os.Args[0])
	}

	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(2)
	}

	linter := lint.NewLinter(lint.Options{ImportPath: *moduleFlag})
	findings, err := linter.Run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if !*quietFlag {
		reporter := lint.NewReporter(os.Stdout, *verboseFlag)
		reporter.Report(findings)
	}

	if len(findings) > 0 {
		os.Exit(1)
	}
}
