// Package elf decodes the file header, the program header table and the
// section header table of 64-bit ELF images held in memory.
//
// Every decoding function is a pure function of its input: it never keeps
// a cursor between calls and each table entry is located by arithmetic on
// the fields declared in the file header.
package elf

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	FileHeaderSize    = 0x40
	ProgramHeaderSize = 0x38
	SectionHeaderSize = 0x40
)

const (
	ClassNone = 0
	Class32   = 1
	Class64   = 2
)

const (
	DataNone   = 0
	DataLittle = 1
	DataBig    = 2
)

var magic = []byte{0x7F, 'E', 'L', 'F'}

var (
	ErrMalformed = errors.New("elf: malformed input")
	ErrTruncated = errors.New("elf: truncated input")
)

// IsELF reports whether buf starts with the ELF magic signature.
func IsELF(buf []byte) bool {
	return len(buf) >= len(magic) && bytes.Equal(buf[:len(magic)], magic)
}

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, format, args...)
}

func truncated(format string, args ...interface{}) error {
	return errors.Wrapf(ErrTruncated, format, args...)
}

// window returns buf[offset:offset+size] or ErrTruncated when the range is
// not fully inside buf.
func window(buf []byte, offset, size uint64) ([]byte, error) {
	n := uint64(len(buf))
	if offset > n || size > n-offset {
		return nil, truncated("%d bytes needed at offset %#x, %d available", size, offset, remaining(n, offset))
	}
	return buf[offset : offset+size], nil
}

// section is like window but gives a reader over the range.
func section(buf []byte, offset, size uint64) (*io.SectionReader, error) {
	if _, err := window(buf, offset, size); err != nil {
		return nil, err
	}
	return io.NewSectionReader(bytes.NewReader(buf), int64(offset), int64(size)), nil
}

func remaining(n, offset uint64) uint64 {
	if offset >= n {
		return 0
	}
	return n - offset
}

// table computes where a table of count entries of size bytes starting at
// offset ends and checks that it lies inside buf.
func table(buf []byte, what string, offset uint64, size, count uint16) error {
	if count == 0 {
		return nil
	}
	var (
		n     = uint64(len(buf))
		total = uint64(size) * uint64(count)
	)
	if offset > n || total > n-offset {
		return malformed("%s: %d entries of %d bytes at %#x exceed input size (%d bytes)", what, count, size, offset, n)
	}
	return nil
}
