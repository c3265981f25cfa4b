package main

import (
	"encoding/binary"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/midbel/elfdump/elf"
)

type settings struct {
	order   string
	verbose bool
}

func (s *settings) register(cmd *cli.Command) {
	cmd.Flag.StringVar(&s.order, "e", "auto", "byte order of multi-byte fields (auto, little, big)")
	cmd.Flag.BoolVar(&s.verbose, "v", false, "verbose")
}

// decoder validates the flags and returns the decoder they describe.
func (s *settings) decoder() (elf.Decoder, error) {
	if s.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	order, err := parseOrder(s.order)
	if err != nil {
		return elf.Decoder{}, err
	}
	return elf.Decoder{Order: order}, nil
}

func parseOrder(str string) (binary.ByteOrder, error) {
	switch strings.ToLower(str) {
	case "", "auto":
		return nil, nil
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, errors.Errorf("%s: unknown byte order", str)
	}
}

type image struct {
	Header   *elf.FileHeader
	Programs []elf.ProgramHeader
}

func readFile(file string) ([]byte, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", file).Int("size", len(buf)).Msg("file loaded")
	return buf, nil
}

// decodeImage decodes the file header and the whole program header table.
// Nothing is returned unless both succeed.
func decodeImage(d elf.Decoder, name string, buf []byte) (*image, error) {
	fh, err := d.DecodeFileHeader(buf)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	log.Debug().
		Str("file", name).
		Str("order", fh.ByteOrder().String()).
		Uint64("phoff", fh.ProgramHeaderOffset).
		Uint16("phentsize", fh.ProgramHeaderEntrySize).
		Uint16("phnum", fh.ProgramHeaderCount).
		Msg("file header decoded")

	phs, err := elf.DecodeProgramHeaders(buf, fh)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &image{Header: fh, Programs: phs}, nil
}

func loadImage(d elf.Decoder, file string) (*image, []byte, error) {
	buf, err := readFile(file)
	if err != nil {
		return nil, nil, err
	}
	img, err := decodeImage(d, file, buf)
	return img, buf, err
}
