package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/kk-code-lab/lessr/internal/debuglog"
)

// StdinName is the source name meaning "read standard input".
const StdinName = "-"

const lineNumberWidth = 6

var (
	stdin    io.Reader = os.Stdin
	openFile           = func(name string) (io.ReadCloser, error) { return os.Open(name) }
)

// LoadOptions controls how source lines are turned into display lines.
type LoadOptions struct {
	NumberLines bool
}

// DisplayLine is one renderable row. The zero Number means the line is not
// numbered.
type DisplayLine struct {
	number int
	text   string
}

func (l DisplayLine) Number() int  { return l.number }
func (l DisplayLine) Text() string { return l.text }

// String renders the line as shown on screen: a right-aligned number field
// and a tab in front of the text when numbered.
func (l DisplayLine) String() string {
	if l.number == 0 {
		return l.text
	}
	return fmt.Sprintf("%*d\t%s", lineNumberWidth, l.number, l.text)
}

// LineBuffer is the full, read-only line sequence of one source.
type LineBuffer struct {
	name  string
	lines []DisplayLine
}

// NewLineBuffer builds a buffer from already split lines.
func NewLineBuffer(name string, texts []string, opts LoadOptions) *LineBuffer {
	lines := make([]DisplayLine, len(texts))
	for i, text := range texts {
		lines[i] = newLine(i, text, opts)
	}
	return &LineBuffer{name: name, lines: lines}
}

func newLine(index int, text string, opts LoadOptions) DisplayLine {
	if opts.NumberLines {
		return DisplayLine{number: index + 1, text: text}
	}
	return DisplayLine{text: text}
}

// Name returns the source name the buffer was loaded from.
func (b *LineBuffer) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Len returns the number of lines.
func (b *LineBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines)
}

// Line returns the line at idx. Out of range indexes yield the zero line.
func (b *LineBuffer) Line(idx int) DisplayLine {
	if b == nil || idx < 0 || idx >= len(b.lines) {
		return DisplayLine{}
	}
	return b.lines[idx]
}

// Slice returns a copy of lines [start, end), clamped to the buffer bounds.
func (b *LineBuffer) Slice(start, end int) []DisplayLine {
	total := b.Len()
	if start < 0 {
		start = 0
	}
	if end > total {
		end = total
	}
	if start >= end {
		return nil
	}
	out := make([]DisplayLine, end-start)
	copy(out, b.lines[start:end])
	return out
}

// Load reads the whole named source. StdinName reads standard input.
func Load(name string, opts LoadOptions) (*LineBuffer, error) {
	if name == StdinName {
		return LoadReader(stdin, name, opts)
	}

	f, err := openFile(name)
	if err != nil {
		return nil, &SourceOpenError{Name: name, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadReader(f, name, opts)
}

// LoadReader reads r to the end and splits it into display lines. A final
// line without a trailing newline still counts; CRLF endings are stripped.
// Nothing is returned unless the whole source was read and decoded.
func LoadReader(r io.Reader, name string, opts LoadOptions) (*LineBuffer, error) {
	br, enc, err := decodingReader(r)
	if err != nil {
		return nil, &ReadError{Name: name, Err: err}
	}

	var lines []DisplayLine
	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			raw = bytes.TrimSuffix(raw, []byte{'\n'})
			raw = bytes.TrimSuffix(raw, []byte{'\r'})
			if !validLine(raw, enc) {
				return nil, &MalformedLineError{Name: name, Line: len(lines) + 1}
			}
			lines = append(lines, newLine(len(lines), string(raw), opts))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ReadError{Name: name, Err: err}
		}
	}

	debuglog.Printf("fs", "loaded %s: %d lines, encoding %s, numbered=%v", name, len(lines), enc, opts.NumberLines)
	return &LineBuffer{name: name, lines: lines}, nil
}

// validLine reports whether raw decoded cleanly. The UTF-16 decoder never
// fails; it substitutes U+FFFD for lone surrogates and odd trailing bytes,
// so a replacement rune in transcoded text marks a broken source.
func validLine(raw []byte, enc unicodeEncoding) bool {
	if !utf8.Valid(raw) {
		return false
	}
	switch enc {
	case encodingUTF16LE, encodingUTF16BE:
		return !bytes.ContainsRune(raw, utf8.RuneError)
	}
	return true
}
