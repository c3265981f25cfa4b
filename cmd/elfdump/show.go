package main

import (
	"fmt"
	"os"

	"github.com/midbel/cli"

	"github.com/midbel/elfdump/internal/report"
)

func runShow(cmd *cli.Command, args []string) error {
	var set settings
	set.register(cmd)
	format := cmd.Flag.String("o", "text", "output format (text, yaml)")
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
	var show func(string, *image) error
	switch *format {
	case "text", "":
		show = func(_ string, img *image) error {
			return report.Print(os.Stdout, img.Header, img.Programs)
		}
	case "yaml", "yml":
		show = func(file string, img *image) error {
			return report.PrintYAML(os.Stdout, report.NewDocument(file, img.Header, img.Programs))
		}
	default:
		return fmt.Errorf("%s: unsupported output format", *format)
	}
	file := cmd.Flag.Arg(0)
	img, _, err := loadImage(d, file)
	if err != nil {
		return err
	}
	return show(file, img)
}

func runSegments(cmd *cli.Command, args []string) error {
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
	img, _, err := loadImage(d, cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	report.PrintSegments(os.Stdout, img.Programs)
	return nil
}
