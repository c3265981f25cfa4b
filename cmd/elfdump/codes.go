package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/midbel/cli"

	"github.com/midbel/elfdump/elf"
	"github.com/midbel/elfdump/internal/report"
)

func runCodes(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	if cmd.Flag.NArg() != 1 {
		return usageError{cmd: cmd}
	}
	t, err := lookupTable(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	return report.PrintCodes(os.Stdout, t)
}

func lookupTable(name string) (elf.Table, error) {
	all := elf.Tables()
	if t, ok := all[strings.ToLower(name)]; ok {
		return t, nil
	}
	names := make([]string, 0, len(all))
	for n := range all {
		names = append(names, n)
	}
	sort.Strings(names)
	return elf.Table{}, fmt.Errorf("%s: unknown table (known: %s)", name, strings.Join(names, ", "))
}
