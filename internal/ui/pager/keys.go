package pager

import "bufio"

// decodeKey reads one key press from r. Bytes of sequences it does not
// recognise are consumed so they cannot be mistaken for later keys.
func decodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyUnknown, err
	}

	switch b {
	case 0x1b:
		return decodeEscape(r), nil
	case 'q':
		return KeyQuit, nil
	case ' ':
		return KeySpace, nil
	case 0x03:
		return KeyInterrupt, nil
	}

	for extra := utf8Continuations(b); extra > 0 && r.Buffered() > 0; extra-- {
		if _, err := r.ReadByte(); err != nil {
			break
		}
	}
	return KeyUnknown, nil
}

func utf8Continuations(lead byte) int {
	switch {
	case lead >= 0xF0:
		return 3
	case lead >= 0xE0:
		return 2
	case lead >= 0xC0:
		return 1
	default:
		return 0
	}
}

// decodeEscape handles the bytes after ESC. A lone ESC with nothing buffered
// behind it is a bare Escape press.
func decodeEscape(r *bufio.Reader) Key {
	if r.Buffered() == 0 {
		return KeyUnknown
	}
	next, err := r.ReadByte()
	if err != nil {
		return KeyUnknown
	}

	switch next {
	case '[':
		return decodeCSI(r)
	case 'O':
		if r.Buffered() == 0 {
			return KeyUnknown
		}
		final, err := r.ReadByte()
		if err != nil {
			return KeyUnknown
		}
		return arrowKey(final)
	default:
		return KeyUnknown
	}
}

// escapePending reports whether buf starts with an escape sequence whose
// remaining bytes have not arrived yet.
func escapePending(buf []byte) bool {
	if len(buf) == 0 || buf[0] != 0x1b {
		return false
	}
	if len(buf) == 1 {
		return true
	}
	switch buf[1] {
	case '[':
		if len(buf) > maxCSILength {
			return false
		}
		for _, b := range buf[2:] {
			if b >= 0x40 && b <= 0x7e {
				return false
			}
		}
		return true
	case 'O':
		return len(buf) == 2
	default:
		return false
	}
}

const maxCSILength = 10

func decodeCSI(r *bufio.Reader) Key {
	var params []byte
	for r.Buffered() > 0 {
		b, err := r.ReadByte()
		if err != nil {
			return KeyUnknown
		}
		if b >= 0x40 && b <= 0x7e {
			// Modified arrows (ESC[1;2B) still move.
			return arrowKey(b)
		}
		params = append(params, b)
		if len(params) > maxCSILength-2 {
			return KeyUnknown
		}
	}
	return KeyUnknown
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	default:
		return KeyUnknown
	}
}
