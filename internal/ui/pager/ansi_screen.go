package pager

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kk-code-lab/lessr/internal/textutil"
	"golang.org/x/term"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
	clearLine      = "\x1b[2K"
)

var (
	termGetSize    = term.GetSize
	termIsTerminal = term.IsTerminal
	termMakeRaw    = term.MakeRaw
	termRestore    = term.Restore
	openTTY        = func() (*os.File, error) { return os.OpenFile("/dev/tty", os.O_RDWR, 0) }

	escapeTailTimeout = 50 * time.Millisecond
)

// ANSIScreen drives the controlling terminal directly with escape sequences.
// Keys are read from /dev/tty so standard input can carry the content.
type ANSIScreen struct {
	input       *os.File
	output      *os.File
	tty         *os.File
	reader      *bufio.Reader
	writer      *bufio.Writer
	restoreTerm *term.State
	width       int
}

func NewANSIScreen() *ANSIScreen {
	return &ANSIScreen{}
}

func (s *ANSIScreen) Init() error {
	s.input = os.Stdin
	s.output = os.Stdout
	if tty, err := openTTY(); err == nil {
		s.tty = tty
		s.input = tty
		if !termIsTerminal(int(s.output.Fd())) {
			s.output = tty
		}
	}

	if !termIsTerminal(int(s.input.Fd())) || !termIsTerminal(int(s.output.Fd())) {
		s.closeTTY()
		return errNotTerminal
	}

	rawState, err := termMakeRaw(int(s.input.Fd()))
	if err != nil {
		s.closeTTY()
		return err
	}
	s.restoreTerm = rawState
	s.reader = bufio.NewReader(s.input)
	s.writer = bufio.NewWriter(s.output)

	_ = s.writeString(enterAltScreen + hideCursor + clearScreen)
	if err := s.writer.Flush(); err != nil {
		_ = s.Fini()
		return err
	}
	return nil
}

func (s *ANSIScreen) Fini() error {
	var restoreErr error
	if s.input != nil && s.restoreTerm != nil {
		restoreErr = termRestore(int(s.input.Fd()), s.restoreTerm)
		s.restoreTerm = nil
	}
	_ = s.writeString(showCursor + leaveAltScreen)
	var flushErr error
	if s.writer != nil {
		flushErr = s.writer.Flush()
	}
	s.closeTTY()
	return errors.Join(restoreErr, flushErr)
}

func (s *ANSIScreen) closeTTY() {
	if s.tty != nil {
		_ = s.tty.Close()
		s.tty = nil
	}
}

// Size asks the output descriptor first and falls back to the input one.
func (s *ANSIScreen) Size() (int, int, error) {
	var firstErr error
	for _, f := range []*os.File{s.output, s.input} {
		if f == nil {
			continue
		}
		width, height, err := termGetSize(int(f.Fd()))
		if err == nil && height > 0 {
			s.width = width
			return width, height, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = errors.New("terminal size unavailable")
	}
	return 0, 0, firstErr
}

func (s *ANSIScreen) Clear() error {
	return s.writeString(clearScreen)
}

// DrawLine positions the cursor explicitly because raw mode disables the
// newline to carriage-return translation. Lines are cut at the terminal width
// so they never wrap into the next row.
func (s *ANSIScreen) DrawLine(row int, text string) error {
	if err := s.printf("\x1b[%d;1H%s", row+1, clearLine); err != nil {
		return err
	}
	text = textutil.SanitizeTerminalText(text)
	if s.width > 0 {
		text = textutil.TruncateToWidth(text, s.width)
	}
	return s.writeString(text)
}

func (s *ANSIScreen) Flush() error {
	if s.writer == nil {
		return errors.New("no output available")
	}
	return s.writer.Flush()
}

func (s *ANSIScreen) PollKey(timeout time.Duration) (Key, bool, error) {
	if s.reader == nil {
		return KeyUnknown, false, errors.New("no reader available")
	}
	if s.reader.Buffered() == 0 {
		ready, err := waitReadable(int(s.input.Fd()), timeout)
		if err != nil || !ready {
			return KeyUnknown, false, err
		}
	}
	s.awaitEscapeTail()
	key, err := decodeKey(s.reader)
	if err != nil {
		return KeyUnknown, false, err
	}
	return key, true, nil
}

// awaitEscapeTail gives a partially received escape sequence a moment to
// complete. Slow links can deliver ESC and "[B" in separate reads.
func (s *ANSIScreen) awaitEscapeTail() {
	if _, err := s.reader.Peek(1); err != nil {
		return
	}
	for {
		pending, err := s.reader.Peek(s.reader.Buffered())
		if err != nil || !escapePending(pending) {
			return
		}
		ready, err := waitReadable(int(s.input.Fd()), escapeTailTimeout)
		if err != nil || !ready {
			return
		}
		if _, err := s.reader.Peek(len(pending) + 1); err != nil {
			return
		}
	}
}

func (s *ANSIScreen) writeString(str string) error {
	if s.writer == nil {
		return errors.New("no output available")
	}
	_, err := s.writer.WriteString(str)
	return err
}

func (s *ANSIScreen) printf(format string, args ...interface{}) error {
	if s.writer == nil {
		return errors.New("no output available")
	}
	_, err := fmt.Fprintf(s.writer, format, args...)
	return err
}
