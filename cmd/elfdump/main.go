package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/midbel/cli"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const helpText = `{{.Name}} reports the file header and the program header table of ELF binaries.

Usage:

  {{.Name}} [-e <order>] [-o <format>] [-v] <file>
  {{.Name}} command [arguments]
  {{.Name}} -version

The commands are:

{{range .Commands}}{{printf "  %-9s %s" .String .Short}}
{{end}}

Without a command, {{.Name}} runs show. The -v flag of every command turns on
debug logging.

Use {{.Name}} [command] -h for more information about its usage.
`

var commands = []*cli.Command{
	{
		Usage:   "show [-e <order>] [-o <format>] [-v] <file>",
		Short:   "show the ELF header and the program header table",
		Alias:   []string{"header"},
		Run:     runShow,
		Default: true,
	},
	{
		Usage: "segments [-e <order>] [-v] <file>",
		Short: "list the program header table",
		Alias: []string{"programs"},
		Run:   runSegments,
	},
	{
		Usage: "sections [-e <order>] [-v] <file>",
		Short: "list the section header table",
		Run:   runSections,
	},
	{
		Usage: "archive [-e <order>] [-v] <archive>",
		Short: "show the headers of every ELF member of an ar archive",
		Alias: []string{"ar"},
		Run:   runArchive,
	},
	{
		Usage: "codes <table>",
		Short: "list the codes known for one header field",
		Run:   runCodes,
	},
}

var ErrUsage = errors.New("usage")

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	os.Args = append(os.Args[:1:1], arguments(os.Args[1:])...)
	err := cli.Run(commands, usage)
	if err == nil {
		return
	}
	var u usageError
	if errors.As(err, &u) {
		fmt.Fprintf(os.Stdout, "usage: %s %s\n", filepath.Base(os.Args[0]), u.cmd.Usage)
		os.Exit(1)
	}
	log.Fatal().Err(err).Msg("elfdump")
}

// arguments makes show the command when the first argument names none, so
// that "elfdump [flags] <file>" runs show with its own flags. A lone -v or
// -version still asks for the version.
func arguments(args []string) []string {
	if len(args) == 0 {
		return args
	}
	switch args[0] {
	case "help", "version":
		return args
	case "-v", "-version", "--version":
		if len(args) == 1 {
			return args
		}
	}
	for _, c := range commands {
		if args[0] == c.String() {
			return args
		}
		for _, a := range c.Alias {
			if args[0] == a {
				return args
			}
		}
	}
	return append([]string{"show"}, args...)
}

func usage() {
	data := struct {
		Name     string
		Commands []*cli.Command
	}{
		Name:     filepath.Base(os.Args[0]),
		Commands: commands,
	}
	t := template.Must(template.New("help").Parse(helpText))
	t.Execute(os.Stdout, data)

	os.Exit(1)
}

type usageError struct {
	cmd *cli.Command
}

func (u usageError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUsage, u.cmd.Usage)
}

func (u usageError) Unwrap() error {
	return ErrUsage
}
