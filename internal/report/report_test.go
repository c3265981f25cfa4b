package report

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/midbel/elfdump/elf"
	"github.com/midbel/elfdump/internal/elftest"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func minimal(t *testing.T) (*elf.FileHeader, []elf.ProgramHeader) {
	t.Helper()
	h := elftest.Executable()
	h.Entry = 0
	buf := elftest.Image{
		Header: h,
		Progs: []elftest.Prog{
			{Type: elf.PT_LOAD, Flags: elf.PF_R | elf.PF_X, Vaddr: 0x400000, Paddr: 0x400000, Filesz: 0x78, Memsz: 0x78, Align: 0x1000},
		},
	}.Bytes()
	fh, err := elf.DecodeFileHeader(buf)
	require.NoError(t, err)
	phs, err := elf.DecodeProgramHeaders(buf, fh)
	require.NoError(t, err)
	return fh, phs
}

const minimalText = `
***ELF HEADER***
Class: 64-bit
Endian: Little
Version: 1
ABI: System V
Machine: AMD x86-64 architecture
Type: Executable file
Entry point: 0x0
Program header offset: 0x40
Section header offset: 0x0
Flags: 0x0
Header size: 0x40 (64 bytes)
Entry size: 0x38 (56 bytes per program table header entry)
Entry count: 0x1 (1)
Section size: 0x40 (64 bytes per section header table entry)
Section count: 0x0 (0)
Index with section names: 0x0

***PROGRAM HEADER TABLE***
Type: Loadable segment
Flags: R-X
Offset: 0x0
Virtual Addr: 0x400000
Alignment: 0x1000

`

func TestPrint(t *testing.T) {
	fh, phs := minimal(t)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, fh, phs))
	assert.Equal(t, minimalText, buf.String())
}

func TestPrintUnknownCodes(t *testing.T) {
	fh, phs := minimal(t)
	fh.Class = 9
	fh.Endianness = 0
	fh.ABI = 5
	fh.Machine = 0x9999
	fh.Type = 0x42
	phs[0].Type = 0x12
	phs[0].Flags = 0x10

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, fh, phs))
	out := buf.String()
	for _, line := range []string{
		"Class: not defined: 9",
		"Endian: not defined: 0",
		"ABI: not defined: 5",
		"Machine: not defined: 39321",
		"Type: not defined: 66",
		"Type: not defined: 18",
		"Flags: not defined: 16",
	} {
		assert.Contains(t, out, line+"\n")
	}
	assert.Contains(t, out, "Virtual Addr: 0x400000\n")
}

func TestPrintFileVersion(t *testing.T) {
	fh, _ := minimal(t)
	fh.IdentVersion = 1
	fh.FileVersion = 7

	var buf bytes.Buffer
	require.NoError(t, PrintHeader(&buf, fh))
	assert.Contains(t, buf.String(), "\nVersion: 7\n")
}

func TestPrintProgramsSeparated(t *testing.T) {
	phs := []elf.ProgramHeader{
		{Type: elf.PT_PHDR, Flags: elf.PF_R, Offset: 0x40, VirtualAddr: 0x40, Align: 8},
		{Type: elf.PT_INTERP, Flags: elf.PF_R, Offset: 0x318, VirtualAddr: 0x318, Align: 1},
		{Type: elf.PT_LOAD, Flags: elf.PF_R | elf.PF_W, Offset: 0x2df0, VirtualAddr: 0x3df0, Align: 0x1000},
	}
	var buf bytes.Buffer
	require.NoError(t, PrintPrograms(&buf, phs))

	blocks := strings.Split(strings.TrimSpace(buf.String()), "\n\n")
	require.Len(t, blocks, 3)
	assert.True(t, strings.HasPrefix(blocks[0], "***PROGRAM HEADER TABLE***\nType: Segment containing program header table itself\n"))
	assert.Equal(t, "Type: Interpreter information\nFlags: R--\nOffset: 0x318\nVirtual Addr: 0x318\nAlignment: 0x1", blocks[1])
	assert.True(t, strings.HasPrefix(blocks[2], "Type: Loadable segment\nFlags: RW-\n"))
}

func TestPrintSegments(t *testing.T) {
	_, phs := minimal(t)
	phs = append(phs, elf.ProgramHeader{Type: elf.PT_GNU_STACK, Flags: elf.PF_R | elf.PF_W, Align: 0x10})

	var buf bytes.Buffer
	PrintSegments(&buf, phs)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Type")
	assert.Contains(t, lines[0], "VirtAddr")
	assert.Contains(t, lines[1], "Loadable segment")
	assert.Contains(t, lines[1], "R-X")
	assert.Contains(t, lines[1], "0x400000")
	assert.Contains(t, lines[1], "120 B")
	assert.Contains(t, lines[2], "GNU stack permissions")
	assert.Contains(t, lines[2], "RW-")
}

func TestPrintSections(t *testing.T) {
	shs := []elf.SectionHeader{
		{},
		{Name: 1, Type: 1, Flags: 0x6, Addr: 0x401000, Offset: 0x1000, Size: 0x2000, AddrAlign: 16},
		{Name: 7, Type: 8, Flags: 0x3, Addr: 0x404000, Offset: 0x3000, Size: 0x100, AddrAlign: 32},
	}
	var buf bytes.Buffer
	PrintSections(&buf, shs, []string{"", ".text", ".bss"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "NULL")
	assert.Contains(t, lines[2], ".text")
	assert.Contains(t, lines[2], "PROGBITS")
	assert.Contains(t, lines[2], "AX")
	assert.Contains(t, lines[2], "8.0 KiB")
	assert.Contains(t, lines[3], ".bss")
	assert.Contains(t, lines[3], "NOBITS")
	assert.Contains(t, lines[3], "WA")
}

func TestSectionFlags(t *testing.T) {
	assert.Equal(t, "", sectionFlags(0))
	assert.Equal(t, "WAX", sectionFlags(0x7))
	assert.Equal(t, "AMS", sectionFlags(0x32))
	assert.Equal(t, "WAT", sectionFlags(0x403))
}

func TestPrintYAML(t *testing.T) {
	fh, phs := minimal(t)

	var buf bytes.Buffer
	require.NoError(t, PrintYAML(&buf, NewDocument("a.out", fh, phs)))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "a.out", doc.File)
	assert.Equal(t, "64-bit", doc.Header.Class)
	assert.Equal(t, "Little", doc.Header.Endian)
	assert.Equal(t, "System V", doc.Header.ABI)
	assert.Equal(t, "AMD x86-64 architecture", doc.Header.Machine)
	assert.Equal(t, uint32(1), doc.Header.FileVersion)
	require.Len(t, doc.Segments, 1)
	assert.Equal(t, "Loadable segment", doc.Segments[0].Type)
	assert.Equal(t, "R-X", doc.Segments[0].Flags)
	assert.Equal(t, "0x400000", doc.Segments[0].VirtualAddr)
	assert.Contains(t, buf.String(), "machine: AMD x86-64 architecture\n")
}

func TestPrintCodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintCodes(&buf, elf.SegmentFlags))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "0x1", strings.Fields(lines[0])[0])
	assert.Equal(t, "--X", strings.Fields(lines[0])[1])
	assert.Equal(t, "RWX", strings.Fields(lines[6])[1])

	buf.Reset()
	require.NoError(t, PrintCodes(&buf, elf.Machines))
	out := buf.String()
	assert.Contains(t, out, "0x3e")
	assert.Contains(t, out, "AMD x86-64 architecture")
	assert.Contains(t, out, "0x79-0x82")
	assert.Contains(t, out, "0xcd-0xd1")
}
