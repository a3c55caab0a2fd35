package pager

// Session owns the terminal between OpenSession and Close.
type Session struct {
	screen Screen
	width  int
	height int
	closed bool
}

// OpenSession enters the alternate screen and records the terminal size.
// Nothing stays acquired when it fails.
func OpenSession(screen Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, &TerminalError{Op: "enter alternate screen", Err: err}
	}
	width, height, err := screen.Size()
	if err != nil {
		_ = screen.Fini()
		return nil, &TerminalError{Op: "query size", Err: err}
	}
	return &Session{screen: screen, width: width, height: height}, nil
}

// PageSize is the terminal height minus the reserved bottom row, so a full
// page never scrolls the terminal. It is fixed for the session's lifetime.
func (s *Session) PageSize() int {
	size := s.height - 1
	if size < 1 {
		size = 1
	}
	return size
}

// Close restores the terminal. Calling it more than once is harmless.
func (s *Session) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	if err := s.screen.Fini(); err != nil {
		return &TerminalError{Op: "restore terminal", Err: err}
	}
	return nil
}
