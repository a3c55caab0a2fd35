package pager

import "time"

// Screen is a full-screen terminal surface. Implementations enter the
// alternate screen in Init and restore the original view in Fini.
type Screen interface {
	Init() error
	Fini() error
	Size() (width, height int, err error)
	Clear() error
	// DrawLine writes text on the zero-based row. Output may be buffered
	// until Flush.
	DrawLine(row int, text string) error
	Flush() error
	// PollKey waits up to timeout for one key. ok is false when the timeout
	// expired. io.EOF means the input stream is exhausted.
	PollKey(timeout time.Duration) (key Key, ok bool, err error)
}

// Key is a decoded keyboard event.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeySpace
	KeyQuit
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySpace:
		return "space"
	case KeyQuit:
		return "quit"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}
