package fs

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func (e unicodeEncoding) String() string {
	switch e {
	case encodingUTF8BOM:
		return "utf-8-bom"
	case encodingUTF16LE:
		return "utf-16le"
	case encodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// decodingReader sniffs a byte-order mark and returns a reader producing
// UTF-8. Sources without a BOM are passed through untouched.
func decodingReader(r io.Reader) (*bufio.Reader, unicodeEncoding, error) {
	br := bufio.NewReader(r)
	sample, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, encodingUnknown, err
	}
	enc := detectUnicodeEncoding(sample)

	switch enc {
	case encodingUTF8BOM:
		_, _ = br.Discard(3)
		return br, enc, nil
	case encodingUTF16LE:
		return bufio.NewReader(transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())), enc, nil
	case encodingUTF16BE:
		return bufio.NewReader(transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())), enc, nil
	default:
		return br, enc, nil
	}
}
