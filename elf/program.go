package elf

import (
	"encoding/binary"
)

// ProgramHeader describes one segment of the image.
type ProgramHeader struct {
	Type         uint32
	Flags        uint32
	Offset       uint64
	VirtualAddr  uint64
	PhysicalAddr uint64
	FileSize     uint64
	MemSize      uint64
	Align        uint64
}

const (
	PF_X = 0x1
	PF_W = 0x2
	PF_R = 0x4
)

// programTable returns the offset and the entry size of the program header
// table. Zero values declared by the header fall back to the standard 64-bit
// layout.
func programTable(fh *FileHeader) (uint64, uint16, error) {
	var (
		offset = fh.ProgramHeaderOffset
		size   = fh.ProgramHeaderEntrySize
	)
	if size == 0 {
		size = ProgramHeaderSize
	}
	if size < ProgramHeaderSize {
		return 0, 0, malformed("program header entry size %d smaller than %d", size, ProgramHeaderSize)
	}
	if offset == 0 && fh.ProgramHeaderCount > 0 {
		offset = FileHeaderSize
	}
	return offset, size, nil
}

// DecodeProgramHeaders decodes every entry of the program header table in
// index order.
func DecodeProgramHeaders(buf []byte, fh *FileHeader) ([]ProgramHeader, error) {
	offset, size, err := programTable(fh)
	if err != nil {
		return nil, err
	}
	if err := table(buf, "program header table", offset, size, fh.ProgramHeaderCount); err != nil {
		return nil, err
	}
	list := make([]ProgramHeader, 0, fh.ProgramHeaderCount)
	for i := 0; i < int(fh.ProgramHeaderCount); i++ {
		ph, err := ProgramHeaderAt(buf, fh, i)
		if err != nil {
			return nil, err
		}
		list = append(list, ph)
	}
	return list, nil
}

// ProgramHeaderAt decodes the i-th entry of the program header table, found
// at ProgramHeaderOffset + i*ProgramHeaderEntrySize.
func ProgramHeaderAt(buf []byte, fh *FileHeader, i int) (ProgramHeader, error) {
	var ph ProgramHeader
	offset, size, err := programTable(fh)
	if err != nil {
		return ph, err
	}
	if i < 0 || i >= int(fh.ProgramHeaderCount) {
		return ph, malformed("program header %d out of range [0, %d)", i, fh.ProgramHeaderCount)
	}
	where := offset + uint64(i)*uint64(size)
	rs, err := section(buf, where, uint64(size))
	if err != nil {
		return ph, err
	}
	if err := binary.Read(rs, fh.ByteOrder(), &ph); err != nil {
		return ph, truncated("program header %d at %#x: %s", i, where, err)
	}
	return ph, nil
}
