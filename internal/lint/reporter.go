package lint

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter renders findings for terminal consumption.
type Reporter struct {
	out     io.Writer
	verbose bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, verbose: verbose}
}

// Report prints every finding, one per line, in the standard
// file:line:col format, and a closing summary.
func (r *Reporter) Report(findings []Finding) {
	bold := color.New(color.Bold)
	warn := color.New(color.FgYellow, color.Bold)

	for _, finding := range findings {
		bold.Fprintf(r.out, "%s:%d:%d: ", finding.Pos.Filename, finding.Pos.Line, finding.Pos.Column)
		fmt.Fprintf(r.out, "%s", finding.Message())
		if r.verbose {
			fmt.Fprintf(r.out, " [%s]", finding.Kind)
		}
		fmt.Fprintln(r.out)
	}

	if len(findings) == 0 {
		ok := color.New(color.FgGreen)
		ok.Fprintln(r.out, "No problems found")
		return
	}
	warn.Fprintf(r.out, "%d problem(s) found\n", len(findings))
}
