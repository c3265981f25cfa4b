package elf_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/midbel/elfdump/elf"
)

func TestDescribeDocumentedCodes(t *testing.T) {
	tests := []struct {
		Table elf.Table
		Code  uint32
		Want  string
	}{
		{Table: elf.Endians, Code: 1, Want: "Little"},
		{Table: elf.Endians, Code: 2, Want: "Big"},
		{Table: elf.Classes, Code: 1, Want: "32-bit"},
		{Table: elf.Classes, Code: 2, Want: "64-bit"},
		{Table: elf.ABIs, Code: 0, Want: "System V"},
		{Table: elf.ObjectTypes, Code: 0, Want: "No file type"},
		{Table: elf.ObjectTypes, Code: 2, Want: "Executable file"},
		{Table: elf.ObjectTypes, Code: 3, Want: "Shared object file"},
		{Table: elf.ObjectTypes, Code: 0xFE00, Want: "Operating system-specific"},
		{Table: elf.ObjectTypes, Code: 0xFFFF, Want: "Processor-specific"},
		{Table: elf.Machines, Code: 0, Want: "No machine"},
		{Table: elf.Machines, Code: 3, Want: "Intel 80386"},
		{Table: elf.Machines, Code: 16, Want: "Reserved for future use"},
		{Table: elf.Machines, Code: 40, Want: "ARM 32-bit architecture (AARCH32)"},
		{Table: elf.Machines, Code: 62, Want: "AMD x86-64 architecture"},
		{Table: elf.Machines, Code: 183, Want: "ARM 64-bit architecture (AARCH64)"},
		{Table: elf.Machines, Code: 243, Want: "RISC-V"},
		{Table: elf.SegmentTypes, Code: 0, Want: "Unused entry"},
		{Table: elf.SegmentTypes, Code: 1, Want: "Loadable segment"},
		{Table: elf.SegmentTypes, Code: 7, Want: "Thread-Local Storage template"},
		{Table: elf.SegmentTypes, Code: 0x6474e551, Want: "GNU stack permissions"},
		{Table: elf.SegmentFlags, Code: 1, Want: "--X"},
		{Table: elf.SegmentFlags, Code: 5, Want: "R-X"},
		{Table: elf.SegmentFlags, Code: 6, Want: "RW-"},
		{Table: elf.SegmentFlags, Code: 7, Want: "RWX"},
		{Table: elf.SectionTypes, Code: 8, Want: "NOBITS"},
	}
	for _, tt := range tests {
		got, ok := tt.Table.Describe(tt.Code)
		assert.True(t, ok, "%s: %d", tt.Table.Name, tt.Code)
		assert.Equal(t, tt.Want, got, "%s: %d", tt.Table.Name, tt.Code)
		assert.Equal(t, tt.Want, tt.Table.Format(tt.Code))
	}
}

func TestDescribeEveryCode(t *testing.T) {
	for name, tbl := range elf.Tables() {
		assert.Equal(t, name, tbl.Name)
		for _, c := range tbl.Codes() {
			str, ok := tbl.Describe(c)
			assert.True(t, ok, "%s: %d", name, c)
			assert.NotEmpty(t, str, "%s: %d", name, c)
			assert.NotContains(t, tbl.Format(c), "not defined")
		}
	}
}

func TestDescribeRanges(t *testing.T) {
	for _, c := range []uint32{11, 12, 14, 24, 30, 35, 121, 125, 130, 145, 159} {
		str, ok := elf.Machines.Describe(c)
		assert.True(t, ok, "machine %d", c)
		assert.Equal(t, "Reserved for future use", str, "machine %d", c)
	}
	for _, c := range []uint32{205, 207, 209} {
		assert.Equal(t, "Reserved by Intel", elf.Machines.Format(c))
	}
	// the range bounds stay exact: neighbours keep their own description
	assert.Equal(t, "MIPS RS3000 Little-endian", elf.Machines.Format(10))
	assert.Equal(t, "Hewlett-Packard PA-RISC", elf.Machines.Format(15))
	assert.Equal(t, "Renesas M32C series microprocessors", elf.Machines.Format(120))
	assert.Equal(t, "Altium TSK3000 core", elf.Machines.Format(131))

	for _, c := range []uint32{0x60000000, 0x6474e5ff, 0x6FFFFFFF, 0x70000000, 0x7FFFFFFF} {
		assert.Equal(t, "Reserved inclusive range", elf.SegmentTypes.Format(c), "segment %#x", c)
	}
	assert.Equal(t, "GNU read-only after relocation", elf.SegmentTypes.Format(0x6474e552))
	assert.Equal(t, "Architecture-specific value range", elf.ABIs.Format(97))
	assert.Equal(t, "Operating system-specific", elf.ObjectTypes.Format(0xFE42))
}

func TestDescribeUnknown(t *testing.T) {
	tests := []struct {
		Table elf.Table
		Code  uint32
	}{
		{Table: elf.Endians, Code: 0},
		{Table: elf.Endians, Code: 3},
		{Table: elf.Classes, Code: 9},
		{Table: elf.ABIs, Code: 5},
		{Table: elf.ObjectTypes, Code: 5},
		{Table: elf.Machines, Code: 225},
		{Table: elf.Machines, Code: 0xFFFF},
		{Table: elf.SegmentTypes, Code: 8},
		{Table: elf.SegmentTypes, Code: 0x80000000},
		{Table: elf.SegmentFlags, Code: 0},
		{Table: elf.SegmentFlags, Code: 0x8},
	}
	for _, tt := range tests {
		str, ok := tt.Table.Describe(tt.Code)
		assert.False(t, ok, "%s: %d", tt.Table.Name, tt.Code)
		assert.Empty(t, str)
		assert.Equal(t, "not defined: "+strconv.FormatUint(uint64(tt.Code), 10), tt.Table.Format(tt.Code))
	}
}

func TestTableAccessorsAreCopies(t *testing.T) {
	rs := elf.Machines.Ranges()
	assert.Len(t, rs, 5)
	rs[0].Desc = "changed"
	assert.Equal(t, "Reserved for future use", elf.Machines.Format(11))
}
