// Package archive iterates over the members of ar archives such as static
// libraries.
package archive

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/tape"
	"github.com/midbel/tape/ar"
	"github.com/pkg/errors"
)

var (
	ErrName    = errors.New("archive: invalid member name")
	ErrArchive = errors.New("archive: malformed member header")
)

// Member names as reported by ar.Reader, which strips trailing slashes: the
// GNU symbol table "/" and name table "//" both come back empty.
const (
	symbolTable64 = "/SYM64"
	bsdPrefix     = "#1/"
	bsdSymbols    = "__.SYMDEF"
)

type Member struct {
	Name string
	Data []byte
}

// Walk calls fn for every file member of the archive in r, in archive order.
// Symbol tables and the GNU long name table are consumed but not reported.
func Walk(r io.Reader, fn func(Member) error) error {
	rs, err := ar.NewReader(r)
	if err != nil {
		return errors.Wrap(err, "archive")
	}
	var names []byte
	for {
		h, err := next(rs)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errors.Wrap(err, "archive")
		}
		// the reader skips the padding byte of odd sized members only once
		// the member has been read up to EOF.
		data, err := io.ReadAll(rs)
		if err != nil {
			return errors.Wrapf(err, "archive: %s", h.Filename)
		}
		name := strings.TrimSpace(h.Filename)
		switch {
		case name == "" && isNameTable(data):
			names = data
			continue
		case name == "" || name == symbolTable64:
			continue
		case strings.HasPrefix(name, bsdSymbols):
			continue
		}
		m, err := resolve(name, data, names)
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

// next guards against ar.Reader returning (or dereferencing) a nil header
// when the terminator of a member header is wrong.
func next(rs *ar.Reader) (h *tape.Header, err error) {
	defer func() {
		if recover() != nil {
			h, err = nil, ErrArchive
		}
	}()
	h, err = rs.Next()
	if err == nil && h == nil {
		err = ErrArchive
	}
	return h, err
}

// isNameTable tells the GNU long name table ("name/\n" records) apart from the
// symbol table, which starts with a big endian symbol count.
func isNameTable(data []byte) bool {
	return bytes.IndexByte(data, 0) < 0 && bytes.Contains(data, []byte("/\n"))
}

// resolve gives the real name of a member: GNU archives refer to long names
// as /<offset> into the name table while BSD archives store them as #1/<len>
// at the start of the member data.
func resolve(name string, data, names []byte) (Member, error) {
	m := Member{Name: name, Data: data}
	switch {
	case strings.HasPrefix(name, bsdPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(name, bsdPrefix))
		if err != nil || n < 0 || n > len(data) {
			return m, errors.Wrapf(ErrName, "%q", name)
		}
		m.Name = string(bytes.TrimRight(data[:n], "\x00"))
		m.Data = data[n:]
	case strings.HasPrefix(name, "/"):
		off, err := strconv.Atoi(name[1:])
		if err != nil || off < 0 || off >= len(names) {
			return m, errors.Wrapf(ErrName, "%q", name)
		}
		str := names[off:]
		if x := bytes.IndexByte(str, '\n'); x >= 0 {
			str = str[:x]
		}
		m.Name = strings.TrimSuffix(string(str), "/")
	default:
		m.Name = strings.TrimSuffix(name, "/")
	}
	return m, nil
}
