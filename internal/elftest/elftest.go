// Package elftest builds small ELF64 images in memory for unit tests.
package elftest

import (
	"bytes"
	"encoding/binary"
)

type Header struct {
	Class      uint8
	Endianness uint8
	Version    uint8
	ABI        uint8

	Type        uint16
	Machine     uint16
	FileVersion uint32
	Entry       uint64
	Phoff       uint64
	Shoff       uint64
	Flags       uint32
	Ehsize      uint16
	Phentsize   uint16
	Phnum       uint16
	Shentsize   uint16
	Shnum       uint16
	Shstrndx    uint16
}

type Prog struct {
	Type   uint32
	Flags  uint32
	Off    uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

type Section struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	AddrAlign uint64
	EntSize   uint64
}

// Executable is the header of a little endian x86-64 executable with a
// standard program header table right after the file header. Phnum is left
// to the caller.
func Executable() Header {
	return Header{
		Class:       2,
		Endianness:  1,
		Version:     1,
		Type:        2,
		Machine:     62,
		FileVersion: 1,
		Entry:       0x401000,
		Phoff:       0x40,
		Ehsize:      0x40,
		Phentsize:   0x38,
		Shentsize:   0x40,
	}
}

func (h Header) order() binary.ByteOrder {
	if h.Endianness == 2 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Bytes encodes the 64 bytes of the file header.
func (h Header) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x7F, 'E', 'L', 'F', h.Class, h.Endianness, h.Version, h.ABI})
	buf.Write(make([]byte, 8))

	order := h.order()
	binary.Write(&buf, order, h.Type)
	binary.Write(&buf, order, h.Machine)
	binary.Write(&buf, order, h.FileVersion)
	binary.Write(&buf, order, h.Entry)
	binary.Write(&buf, order, h.Phoff)
	binary.Write(&buf, order, h.Shoff)
	binary.Write(&buf, order, h.Flags)
	binary.Write(&buf, order, h.Ehsize)
	binary.Write(&buf, order, h.Phentsize)
	binary.Write(&buf, order, h.Phnum)
	binary.Write(&buf, order, h.Shentsize)
	binary.Write(&buf, order, h.Shnum)
	binary.Write(&buf, order, h.Shstrndx)
	return buf.Bytes()
}

// Image lays out the file header, then the program headers at Phoff spaced
// by Phentsize, then the section headers at Shoff spaced by Shentsize.
// Phnum and Shnum are set from the given tables; the image is grown with
// zeros to cover every entry and at least size bytes.
type Image struct {
	Header   Header
	Progs    []Prog
	Sections []Section
	Data     map[uint64][]byte
	Size     int
}

func (i Image) Bytes() []byte {
	h := i.Header
	h.Phnum = uint16(len(i.Progs))
	h.Shnum = uint16(len(i.Sections))

	buf := make([]byte, 0, 4096)
	buf = put(buf, 0, h.Bytes())

	order := h.order()
	for j, p := range i.Progs {
		var w bytes.Buffer
		binary.Write(&w, order, p)
		buf = put(buf, h.Phoff+uint64(j)*uint64(h.Phentsize), pad(w.Bytes(), int(h.Phentsize)))
	}
	for j, s := range i.Sections {
		var w bytes.Buffer
		binary.Write(&w, order, s)
		buf = put(buf, h.Shoff+uint64(j)*uint64(h.Shentsize), pad(w.Bytes(), int(h.Shentsize)))
	}
	for off, data := range i.Data {
		buf = put(buf, off, data)
	}
	if len(buf) < i.Size {
		buf = append(buf, make([]byte, i.Size-len(buf))...)
	}
	return buf
}

func pad(bs []byte, n int) []byte {
	if len(bs) >= n {
		return bs
	}
	return append(bs, make([]byte, n-len(bs))...)
}

func put(buf []byte, off uint64, data []byte) []byte {
	end := int(off) + len(data)
	if end > len(buf) {
		buf = append(buf, make([]byte, end-len(buf))...)
	}
	copy(buf[off:], data)
	return buf
}
