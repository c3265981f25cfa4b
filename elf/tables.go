package elf

import (
	"fmt"
	"sort"
)

// Range covers every code from Lo to Hi, both included.
type Range struct {
	Lo   uint32
	Hi   uint32
	Desc string
}

func (r Range) Contains(code uint32) bool {
	return code >= r.Lo && code <= r.Hi
}

// Table maps the codes of one header field to their description. Exact codes
// are looked up before ranges.
type Table struct {
	Name   string
	codes  map[uint32]string
	ranges []Range
}

func makeTable(name string, codes map[uint32]string, ranges ...Range) Table {
	return Table{
		Name:   name,
		codes:  codes,
		ranges: ranges,
	}
}

func (t Table) Describe(code uint32) (string, bool) {
	if str, ok := t.codes[code]; ok {
		return str, true
	}
	for _, r := range t.ranges {
		if r.Contains(code) {
			return r.Desc, true
		}
	}
	return "", false
}

// Format gives the description of code or a "not defined" marker when the
// table does not know it.
func (t Table) Format(code uint32) string {
	if str, ok := t.Describe(code); ok {
		return str
	}
	return fmt.Sprintf("not defined: %d", code)
}

// Codes returns the exact codes of the table in ascending order.
func (t Table) Codes() []uint32 {
	list := make([]uint32, 0, len(t.codes))
	for c := range t.codes {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

func (t Table) Ranges() []Range {
	list := make([]Range, len(t.ranges))
	copy(list, t.ranges)
	return list
}

// Tables lists every table by the name used on the command line.
func Tables() map[string]Table {
	return map[string]Table{
		"endian":  Endians,
		"class":   Classes,
		"abi":     ABIs,
		"type":    ObjectTypes,
		"machine": Machines,
		"segment": SegmentTypes,
		"flags":   SegmentFlags,
		"section": SectionTypes,
	}
}
