package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/midbel/cli"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/midbel/elfdump/elf"
	"github.com/midbel/elfdump/internal/archive"
	"github.com/midbel/elfdump/internal/report"
)

func runArchive(cmd *cli.Command, args []string) error {
	var set settings
	set.register(cmd)
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	if cmd.Flag.NArg() != 1 {
		return usageError{cmd: cmd}
	}
	d, err := set.decoder()
	if err != nil {
		return err
	}
	r, err := os.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	return showArchive(os.Stdout, r, d)
}

func showArchive(w io.Writer, r io.Reader, d elf.Decoder) error {
	member := color.New(color.FgCyan, color.Bold)
	return archive.Walk(r, func(m archive.Member) error {
		if !elf.IsELF(m.Data) {
			log.Warn().Str("member", m.Name).Int("size", len(m.Data)).Msg("not an ELF member, skipped")
			return nil
		}
		img, err := decodeImage(d, m.Name, m.Data)
		if err != nil {
			return err
		}
		member.Fprintf(w, "\n%s:\n", m.Name)
		if err := report.Print(w, img.Header, img.Programs); err != nil {
			return errors.Wrap(err, m.Name)
		}
		return nil
	})
}
