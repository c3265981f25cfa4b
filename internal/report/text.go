// Package report renders decoded ELF structures for humans.
package report

import (
	"fmt"
	"io"
	"text/template"

	"github.com/fatih/color"

	"github.com/midbel/elfdump/elf"
)

const headerText = `Class: {{class .Class}}
Endian: {{endian .Endianness}}
Version: {{.FileVersion}}
ABI: {{abi .ABI}}
Machine: {{machine .Machine}}
Type: {{objtype .Type}}
Entry point: {{hex .Entry}}
Program header offset: {{hex .ProgramHeaderOffset}}
Section header offset: {{hex .SectionHeaderOffset}}
Flags: {{hex .Flags}}
Header size: {{hex .HeaderSize}} ({{.HeaderSize}} bytes)
Entry size: {{hex .ProgramHeaderEntrySize}} ({{.ProgramHeaderEntrySize}} bytes per program table header entry)
Entry count: {{hex .ProgramHeaderCount}} ({{.ProgramHeaderCount}})
Section size: {{hex .SectionHeaderEntrySize}} ({{.SectionHeaderEntrySize}} bytes per section header table entry)
Section count: {{hex .SectionHeaderCount}} ({{.SectionHeaderCount}})
Index with section names: {{hex .SectionNamesIndex}}
`

const programText = `{{range .}}Type: {{segment .Type}}
Flags: {{flags .Flags}}
Offset: {{hex .Offset}}
Virtual Addr: {{hex .VirtualAddr}}
Alignment: {{hex .Align}}

{{end}}`

var funcs = template.FuncMap{
	"hex":     func(v interface{}) string { return fmt.Sprintf("%#x", v) },
	"class":   func(c uint8) string { return elf.Classes.Format(uint32(c)) },
	"endian":  func(c uint8) string { return elf.Endians.Format(uint32(c)) },
	"abi":     func(c uint8) string { return elf.ABIs.Format(uint32(c)) },
	"machine": func(c uint16) string { return elf.Machines.Format(uint32(c)) },
	"objtype": func(c uint16) string { return elf.ObjectTypes.Format(uint32(c)) },
	"segment": func(c uint32) string { return elf.SegmentTypes.Format(c) },
	"flags":   func(c uint32) string { return elf.SegmentFlags.Format(c) },
}

var (
	headerTemplate  = template.Must(template.New("header").Funcs(funcs).Parse(headerText))
	programTemplate = template.Must(template.New("programs").Funcs(funcs).Parse(programText))
)

var title = color.New(color.Bold)

const (
	HeaderTitle  = "ELF HEADER"
	ProgramTitle = "PROGRAM HEADER TABLE"
)

func printTitle(w io.Writer, str string) error {
	_, err := title.Fprintf(w, "\n***%s***\n", str)
	return err
}

// PrintHeader writes the ELF HEADER section, one field per line.
func PrintHeader(w io.Writer, fh *elf.FileHeader) error {
	if err := printTitle(w, HeaderTitle); err != nil {
		return err
	}
	return headerTemplate.Execute(w, fh)
}

// PrintPrograms writes the PROGRAM HEADER TABLE section with a blank line
// after each entry.
func PrintPrograms(w io.Writer, phs []elf.ProgramHeader) error {
	if err := printTitle(w, ProgramTitle); err != nil {
		return err
	}
	return programTemplate.Execute(w, phs)
}

// Print writes both sections.
func Print(w io.Writer, fh *elf.FileHeader, phs []elf.ProgramHeader) error {
	if err := PrintHeader(w, fh); err != nil {
		return err
	}
	return PrintPrograms(w, phs)
}
