package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/midbel/textwrap"

	"github.com/midbel/elfdump/elf"
)

// PrintCodes lists the codes of a table followed by its reserved ranges.
func PrintCodes(w io.Writer, t elf.Table) error {
	ws := tabwriter.NewWriter(w, 12, 2, 2, ' ', 0)
	for _, c := range t.Codes() {
		str, _ := t.Describe(c)
		writeCode(ws, fmt.Sprintf("%#x", c), str)
	}
	for _, r := range t.Ranges() {
		writeCode(ws, fmt.Sprintf("%#x-%#x", r.Lo, r.Hi), r.Desc)
	}
	return ws.Flush()
}

func writeCode(w io.Writer, code, desc string) {
	lines := strings.Split(strings.TrimSpace(textwrap.Wrap(desc)), "\n")
	for i, line := range lines {
		if i > 0 {
			code = ""
		}
		fmt.Fprintf(w, "%s\t%s\n", code, strings.TrimSpace(line))
	}
}
