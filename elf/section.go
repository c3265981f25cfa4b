package elf

import (
	"bytes"
	"encoding/binary"
)

// SectionHeader is one entry of the section header table.
type SectionHeader struct {
	Name      uint32
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	AddrAlign uint64
	EntrySize uint64
}

const SHN_UNDEF = 0

func sectionTable(fh *FileHeader) (uint16, error) {
	size := fh.SectionHeaderEntrySize
	if size == 0 {
		size = SectionHeaderSize
	}
	if size < SectionHeaderSize {
		return 0, malformed("section header entry size %d smaller than %d", size, SectionHeaderSize)
	}
	return size, nil
}

func DecodeSectionHeaders(buf []byte, fh *FileHeader) ([]SectionHeader, error) {
	size, err := sectionTable(fh)
	if err != nil {
		return nil, err
	}
	if err := table(buf, "section header table", fh.SectionHeaderOffset, size, fh.SectionHeaderCount); err != nil {
		return nil, err
	}
	list := make([]SectionHeader, 0, fh.SectionHeaderCount)
	for i := 0; i < int(fh.SectionHeaderCount); i++ {
		sh, err := SectionHeaderAt(buf, fh, i)
		if err != nil {
			return nil, err
		}
		list = append(list, sh)
	}
	return list, nil
}

func SectionHeaderAt(buf []byte, fh *FileHeader, i int) (SectionHeader, error) {
	var sh SectionHeader
	size, err := sectionTable(fh)
	if err != nil {
		return sh, err
	}
	if i < 0 || i >= int(fh.SectionHeaderCount) {
		return sh, malformed("section header %d out of range [0, %d)", i, fh.SectionHeaderCount)
	}
	where := fh.SectionHeaderOffset + uint64(i)*uint64(size)
	rs, err := section(buf, where, uint64(size))
	if err != nil {
		return sh, err
	}
	if err := binary.Read(rs, fh.ByteOrder(), &sh); err != nil {
		return sh, truncated("section header %d at %#x: %s", i, where, err)
	}
	return sh, nil
}

// SectionNames resolves the name of each section from the section name
// string table. Names stay empty when the image declares no string table.
func SectionNames(buf []byte, fh *FileHeader, shs []SectionHeader) ([]string, error) {
	names := make([]string, len(shs))
	ix := int(fh.SectionNamesIndex)
	if ix == SHN_UNDEF || ix >= len(shs) {
		return names, nil
	}
	strtab := shs[ix]
	data, err := window(buf, strtab.Offset, strtab.Size)
	if err != nil {
		return nil, err
	}
	for i, sh := range shs {
		if sh.Name == 0 && len(data) == 0 {
			continue
		}
		if uint64(sh.Name) >= uint64(len(data)) {
			return nil, malformed("section %d: name offset %#x outside string table", i, sh.Name)
		}
		str := data[sh.Name:]
		if x := bytes.IndexByte(str, 0); x >= 0 {
			str = str[:x]
		}
		names[i] = string(str)
	}
	return names, nil
}
