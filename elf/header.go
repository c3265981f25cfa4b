package elf

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// FileHeader is the leading 64 bytes of an ELF image.
//
// IdentVersion is the version byte of the identification block while
// FileVersion is the 4-byte version that follows the machine field. Both are
// kept since nothing forces them to agree.
type FileHeader struct {
	Class        uint8
	Endianness   uint8
	IdentVersion uint8
	ABI          uint8

	Type                   uint16
	Machine                uint16
	FileVersion            uint32
	Entry                  uint64
	ProgramHeaderOffset    uint64
	SectionHeaderOffset    uint64
	Flags                  uint32
	HeaderSize             uint16
	ProgramHeaderEntrySize uint16
	ProgramHeaderCount     uint16
	SectionHeaderEntrySize uint16
	SectionHeaderCount     uint16
	SectionNamesIndex      uint16

	order binary.ByteOrder
}

// ByteOrder gives the byte order that was used to decode the header. The
// program and section header tables are decoded with the same order.
func (h *FileHeader) ByteOrder() binary.ByteOrder {
	if h.order == nil {
		return orderOf(h.Endianness)
	}
	return h.order
}

func (h *FileHeader) Is32() bool {
	return h.Class == Class32
}

func (h *FileHeader) Is64() bool {
	return h.Class == Class64
}

type ident struct {
	Magic      [4]byte
	Class      uint8
	Endianness uint8
	Version    uint8
	ABI        uint8
	_          [8]byte
}

type header64 struct {
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

// Decoder holds the options of the decoding functions. The zero value
// decodes multi-byte fields with the byte order declared by the image.
type Decoder struct {
	// Order, when set, is used for every multi-byte field regardless of the
	// endianness byte of the image.
	Order binary.ByteOrder
}

var std Decoder

func DecodeFileHeader(buf []byte) (*FileHeader, error) {
	return std.DecodeFileHeader(buf)
}

func (d Decoder) DecodeFileHeader(buf []byte) (*FileHeader, error) {
	if len(buf) >= len(magic) && !IsELF(buf) {
		return nil, malformed("not an ELF file (signature %x)", buf[:len(magic)])
	}
	rs, err := section(buf, 0, FileHeaderSize)
	if err != nil {
		return nil, errors.Wrap(err, "file header")
	}
	var id ident
	if err := binary.Read(rs, binary.LittleEndian, &id); err != nil {
		return nil, truncated("file header: %s", err)
	}
	order := d.Order
	if order == nil {
		order = orderOf(id.Endianness)
	}
	var raw header64
	if err := binary.Read(rs, order, &raw); err != nil {
		return nil, truncated("file header: %s", err)
	}
	fh := FileHeader{
		Class:                  id.Class,
		Endianness:             id.Endianness,
		IdentVersion:           id.Version,
		ABI:                    id.ABI,
		Type:                   raw.Type,
		Machine:                raw.Machine,
		FileVersion:            raw.Version,
		Entry:                  raw.Entry,
		ProgramHeaderOffset:    raw.Phoff,
		SectionHeaderOffset:    raw.Shoff,
		Flags:                  raw.Flags,
		HeaderSize:             raw.Ehsize,
		ProgramHeaderEntrySize: raw.Phentsize,
		ProgramHeaderCount:     raw.Phnum,
		SectionHeaderEntrySize: raw.Shentsize,
		SectionHeaderCount:     raw.Shnum,
		SectionNamesIndex:      raw.Shstrndx,
		order:                  order,
	}
	return &fh, nil
}

// orderOf maps the endianness byte to a byte order. Undefined values are
// read as little endian.
func orderOf(data uint8) binary.ByteOrder {
	if data == DataBig {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
