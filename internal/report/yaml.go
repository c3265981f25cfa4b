package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/midbel/elfdump/elf"
)

type Document struct {
	File     string    `yaml:"file,omitempty"`
	Header   Header    `yaml:"header"`
	Segments []Segment `yaml:"segments"`
}

type Header struct {
	Class                  string `yaml:"class"`
	Endian                 string `yaml:"endian"`
	IdentVersion           uint8  `yaml:"ident_version"`
	FileVersion            uint32 `yaml:"file_version"`
	ABI                    string `yaml:"abi"`
	Machine                string `yaml:"machine"`
	Type                   string `yaml:"type"`
	Entry                  string `yaml:"entry_point"`
	ProgramHeaderOffset    string `yaml:"program_header_offset"`
	SectionHeaderOffset    string `yaml:"section_header_offset"`
	Flags                  string `yaml:"flags"`
	HeaderSize             uint16 `yaml:"header_size"`
	ProgramHeaderEntrySize uint16 `yaml:"program_header_entry_size"`
	ProgramHeaderCount     uint16 `yaml:"program_header_count"`
	SectionHeaderEntrySize uint16 `yaml:"section_header_entry_size"`
	SectionHeaderCount     uint16 `yaml:"section_header_count"`
	SectionNamesIndex      uint16 `yaml:"section_names_index"`
}

type Segment struct {
	Type         string `yaml:"type"`
	Flags        string `yaml:"flags"`
	Offset       string `yaml:"offset"`
	VirtualAddr  string `yaml:"virtual_address"`
	PhysicalAddr string `yaml:"physical_address"`
	FileSize     uint64 `yaml:"size_file"`
	MemSize      uint64 `yaml:"size_memory"`
	Align        string `yaml:"alignment"`
}

// NewDocument converts decoded structures into their described form.
func NewDocument(file string, fh *elf.FileHeader, phs []elf.ProgramHeader) Document {
	doc := Document{
		File: file,
		Header: Header{
			Class:                  elf.Classes.Format(uint32(fh.Class)),
			Endian:                 elf.Endians.Format(uint32(fh.Endianness)),
			IdentVersion:           fh.IdentVersion,
			FileVersion:            fh.FileVersion,
			ABI:                    elf.ABIs.Format(uint32(fh.ABI)),
			Machine:                elf.Machines.Format(uint32(fh.Machine)),
			Type:                   elf.ObjectTypes.Format(uint32(fh.Type)),
			Entry:                  hex(fh.Entry),
			ProgramHeaderOffset:    hex(fh.ProgramHeaderOffset),
			SectionHeaderOffset:    hex(fh.SectionHeaderOffset),
			Flags:                  hex(uint64(fh.Flags)),
			HeaderSize:             fh.HeaderSize,
			ProgramHeaderEntrySize: fh.ProgramHeaderEntrySize,
			ProgramHeaderCount:     fh.ProgramHeaderCount,
			SectionHeaderEntrySize: fh.SectionHeaderEntrySize,
			SectionHeaderCount:     fh.SectionHeaderCount,
			SectionNamesIndex:      fh.SectionNamesIndex,
		},
		Segments: make([]Segment, 0, len(phs)),
	}
	for _, ph := range phs {
		doc.Segments = append(doc.Segments, Segment{
			Type:         elf.SegmentTypes.Format(ph.Type),
			Flags:        elf.SegmentFlags.Format(ph.Flags),
			Offset:       hex(ph.Offset),
			VirtualAddr:  hex(ph.VirtualAddr),
			PhysicalAddr: hex(ph.PhysicalAddr),
			FileSize:     ph.FileSize,
			MemSize:      ph.MemSize,
			Align:        hex(ph.Align),
		})
	}
	return doc
}

func PrintYAML(w io.Writer, doc Document) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(doc); err != nil {
		return err
	}
	return e.Close()
}
