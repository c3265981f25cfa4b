package main

import (
	"os"

	"github.com/midbel/cli"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/midbel/elfdump/elf"
	"github.com/midbel/elfdump/internal/report"
)

func runSections(cmd *cli.Command, args []string) error {
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
	file := cmd.Flag.Arg(0)
	buf, err := readFile(file)
	if err != nil {
		return err
	}
	fh, err := d.DecodeFileHeader(buf)
	if err != nil {
		return errors.Wrap(err, file)
	}
	log.Debug().
		Str("file", file).
		Uint64("shoff", fh.SectionHeaderOffset).
		Uint16("shentsize", fh.SectionHeaderEntrySize).
		Uint16("shnum", fh.SectionHeaderCount).
		Uint16("shstrndx", fh.SectionNamesIndex).
		Msg("file header decoded")

	shs, err := elf.DecodeSectionHeaders(buf, fh)
	if err != nil {
		return errors.Wrap(err, file)
	}
	names, err := elf.SectionNames(buf, fh, shs)
	if err != nil {
		return errors.Wrap(err, file)
	}
	report.PrintSections(os.Stdout, shs, names)
	return nil
}
