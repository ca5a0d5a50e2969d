package vault

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding is returned when a note cannot be written back
// byte-for-byte in the form it was read.
var ErrUnsupportedEncoding = errors.New("note is not valid UTF-8 or UTF-16")

// Encoding is the on-disk form of a note.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8 with bom"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// Note is the decoded text of a note file together with its encoding, so
// that an edited version can be stored the same way.
type Note struct {
	Path     string
	Text     string
	Encoding Encoding
}

// ReadNote returns the text of the note at path. A UTF-8 or UTF-16 byte order
// mark selects the decoding and is dropped; without one the file is read as
// UTF-8.
func ReadNote(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeNote(data)
}

func decodeNote(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decoding note: %w", err)
	}
	return string(decoded), nil
}

// LoadNote reads the note at path for editing. Unlike ReadNote it refuses
// UTF-8 files with invalid byte sequences, which could not be written back
// unchanged.
func LoadNote(path string) (*Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	enc := detectEncoding(data)
	if (enc == UTF8 || enc == UTF8BOM) && !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedEncoding)
	}
	text, err := decodeNote(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Note{Path: path, Text: text, Encoding: enc}, nil
}

func detectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	default:
		return UTF8
	}
}

// Encode returns text in the note's encoding, byte order mark included.
func (n *Note) Encode(text string) ([]byte, error) {
	var enc encoding.Encoding
	switch n.Encoding {
	case UTF8:
		return []byte(text), nil
	case UTF8BOM:
		return append(append([]byte{}, bomUTF8...), text...), nil
	case UTF16LE:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16BE:
		enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	default:
		return nil, ErrUnsupportedEncoding
	}

	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding note as %s: %w", n.Encoding, err)
	}
	return out, nil
}

// LineEnding returns "\r\n" when most lines of the note end that way,
// otherwise "\n".
func (n *Note) LineEnding() string {
	lf := strings.Count(n.Text, "\n")
	if lf > 0 && strings.Count(n.Text, "\r\n")*2 > lf {
		return "\r\n"
	}
	return "\n"
}
