package elf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/elfdump/elf"
	"github.com/midbel/elfdump/internal/elftest"
)

var shstrtab = []byte("\x00.text\x00.data\x00.shstrtab\x00")

func sectioned() []byte {
	h := elftest.Executable()
	h.Shoff = 0x100
	h.Shstrndx = 3
	return elftest.Image{
		Header: h,
		Sections: []elftest.Section{
			{},
			{Name: 1, Type: 1, Flags: 0x6, Addr: 0x401000, Offset: 0x1000, Size: 0x200, AddrAlign: 16},
			{Name: 7, Type: 1, Flags: 0x3, Addr: 0x402000, Offset: 0x1200, Size: 0x40, AddrAlign: 8},
			{Name: 13, Type: 3, Offset: 0x80, Size: uint64(len(shstrtab)), AddrAlign: 1},
		},
		Data: map[uint64][]byte{0x80: shstrtab},
		Size: 0x1240,
	}.Bytes()
}

func TestDecodeSectionHeaders(t *testing.T) {
	buf := sectioned()
	fh, err := elf.DecodeFileHeader(buf)
	require.NoError(t, err)

	shs, err := elf.DecodeSectionHeaders(buf, fh)
	require.NoError(t, err)
	require.Len(t, shs, 4)

	assert.Equal(t, elf.SectionHeader{}, shs[0])
	assert.Equal(t, uint64(0x401000), shs[1].Addr)
	assert.Equal(t, uint64(0x200), shs[1].Size)
	assert.Equal(t, uint64(16), shs[1].AddrAlign)
	assert.Equal(t, uint64(0x3), shs[2].Flags)
	assert.Equal(t, uint32(3), shs[3].Type)

	names, err := elf.SectionNames(buf, fh, shs)
	require.NoError(t, err)
	assert.Equal(t, []string{"", ".text", ".data", ".shstrtab"}, names)
}

func TestSectionNamesWithoutTable(t *testing.T) {
	buf := sectioned()
	fh, err := elf.DecodeFileHeader(buf)
	require.NoError(t, err)
	shs, err := elf.DecodeSectionHeaders(buf, fh)
	require.NoError(t, err)

	for _, ix := range []uint16{elf.SHN_UNDEF, 4, 0xFFFF} {
		fh.SectionNamesIndex = ix
		names, err := elf.SectionNames(buf, fh, shs)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "", "", ""}, names)
	}
}

func TestSectionNamesBadOffset(t *testing.T) {
	buf := sectioned()
	fh, err := elf.DecodeFileHeader(buf)
	require.NoError(t, err)
	shs, err := elf.DecodeSectionHeaders(buf, fh)
	require.NoError(t, err)

	shs[2].Name = 0x400
	_, err = elf.SectionNames(buf, fh, shs)
	assert.ErrorIs(t, err, elf.ErrMalformed)
}

func TestDecodeSectionHeadersPastEnd(t *testing.T) {
	h := elftest.Executable()
	h.Shoff = 0x40
	h.Shnum = 10
	buf := append(h.Bytes(), make([]byte, 2*elf.SectionHeaderSize)...)

	fh, err := elf.DecodeFileHeader(buf)
	require.NoError(t, err)
	_, err = elf.DecodeSectionHeaders(buf, fh)
	assert.ErrorIs(t, err, elf.ErrMalformed)

	_, err = elf.SectionHeaderAt(buf, fh, 1)
	require.NoError(t, err)
	_, err = elf.SectionHeaderAt(buf, fh, 2)
	assert.ErrorIs(t, err, elf.ErrTruncated)
	_, err = elf.SectionHeaderAt(buf, fh, 10)
	assert.ErrorIs(t, err, elf.ErrMalformed)
}
