package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/midbel/elfdump/elf"
)

func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetColumnSeparator("")
	t.SetCenterSeparator("")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetTablePadding("  ")
	t.SetNoWhiteSpace(true)
	return t
}

// PrintSegments writes the program header table as a table.
func PrintSegments(w io.Writer, phs []elf.ProgramHeader) {
	t := newTable(w, "Nr", "Type", "Flags", "Offset", "VirtAddr", "PhysAddr", "FileSiz", "MemSiz", "Align")
	for i, ph := range phs {
		t.Append([]string{
			strconv.Itoa(i),
			elf.SegmentTypes.Format(ph.Type),
			elf.SegmentFlags.Format(ph.Flags),
			hex(ph.Offset),
			hex(ph.VirtualAddr),
			hex(ph.PhysicalAddr),
			humanize.IBytes(ph.FileSize),
			humanize.IBytes(ph.MemSize),
			hex(ph.Align),
		})
	}
	t.Render()
}

// PrintSections writes the section header table with the names found in the
// section name string table.
func PrintSections(w io.Writer, shs []elf.SectionHeader, names []string) {
	t := newTable(w, "Nr", "Name", "Type", "Address", "Offset", "Size", "EntSize", "Flags", "Link", "Info", "Align")
	for i, sh := range shs {
		var name string
		if i < len(names) {
			name = names[i]
		}
		t.Append([]string{
			strconv.Itoa(i),
			name,
			elf.SectionTypes.Format(sh.Type),
			hex(sh.Addr),
			hex(sh.Offset),
			humanize.IBytes(sh.Size),
			hex(sh.EntrySize),
			sectionFlags(sh.Flags),
			strconv.FormatUint(uint64(sh.Link), 10),
			strconv.FormatUint(uint64(sh.Info), 10),
			strconv.FormatUint(sh.AddrAlign, 10),
		})
	}
	t.Render()
}

var sectionFlagLetters = []struct {
	Mask   uint64
	Letter byte
}{
	{Mask: 0x1, Letter: 'W'},
	{Mask: 0x2, Letter: 'A'},
	{Mask: 0x4, Letter: 'X'},
	{Mask: 0x10, Letter: 'M'},
	{Mask: 0x20, Letter: 'S'},
	{Mask: 0x40, Letter: 'I'},
	{Mask: 0x80, Letter: 'L'},
	{Mask: 0x200, Letter: 'G'},
	{Mask: 0x400, Letter: 'T'},
}

// sectionFlags uses the one letter codes of readelf.
func sectionFlags(flags uint64) string {
	var buf []byte
	for _, f := range sectionFlagLetters {
		if flags&f.Mask != 0 {
			buf = append(buf, f.Letter)
		}
	}
	return string(buf)
}

func hex(v uint64) string {
	return fmt.Sprintf("%#x", v)
}
