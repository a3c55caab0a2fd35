package pager

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/kk-code-lab/lessr/internal/debuglog"
	"github.com/kk-code-lab/lessr/internal/fs"
)

// DefaultPollTimeout bounds each wait for input so the loop can notice
// cancellation between keys.
const DefaultPollTimeout = 500 * time.Millisecond

// Options tunes the interactive loop.
type Options struct {
	PollTimeout time.Duration
}

// Pager displays a LineBuffer one page at a time.
type Pager struct {
	session     *Session
	lines       *fs.LineBuffer
	state       PageState
	pollTimeout time.Duration
}

type transition int

const (
	stay transition = iota
	moved
	quit
	interrupt
)

// New binds lines to an open session. The page size is taken from the
// session once and never re-derived.
func New(session *Session, lines *fs.LineBuffer, opts Options) *Pager {
	timeout := opts.PollTimeout
	if timeout <= 0 {
		timeout = DefaultPollTimeout
	}
	return &Pager{
		session:     session,
		lines:       lines,
		state:       NewPageState(session.PageSize(), lines.Len()),
		pollTimeout: timeout,
	}
}

// Run opens a session on screen, pages through lines until the user quits,
// and restores the terminal on every exit path, panics included.
func Run(ctx context.Context, screen Screen, lines *fs.LineBuffer, opts Options) (err error) {
	session, err := OpenSession(screen)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return New(session, lines, opts).Run(ctx)
}

// Page returns the index of the displayed page.
func (p *Pager) Page() int {
	return p.state.Page()
}

// Run renders the first page and then handles keys until q, Ctrl+C, end of
// input or cancellation of ctx.
func (p *Pager) Run(ctx context.Context) error {
	debuglog.Printf("pager", "start %s: %d lines, page size %d", p.lines.Name(), p.state.Total(), p.state.Size())
	if err := p.renderPage(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		key, ok, err := p.session.screen.PollKey(p.pollTimeout)
		if errors.Is(err, io.EOF) {
			debuglog.Printf("pager", "input exhausted on page %d", p.state.Page())
			return nil
		}
		if err != nil {
			return &TerminalError{Op: "read input", Err: err}
		}
		if !ok {
			continue
		}

		switch p.handleKey(key) {
		case quit:
			return nil
		case interrupt:
			return ErrInterrupted
		case moved:
			if err := p.renderPage(); err != nil {
				return err
			}
		}
	}
}

func (p *Pager) handleKey(key Key) transition {
	switch key {
	case KeyQuit:
		return quit
	case KeyInterrupt:
		return interrupt
	case KeyDown, KeySpace:
		if p.state.Advance() {
			return moved
		}
	case KeyUp:
		if p.state.Retreat() {
			return moved
		}
	}
	return stay
}

// renderPage clears the screen and draws the current page from the top row.
// The frame is flushed before returning.
func (p *Pager) renderPage() error {
	screen := p.session.screen
	start, end := p.state.Bounds()

	if err := screen.Clear(); err != nil {
		return &TerminalError{Op: "clear screen", Err: err}
	}
	for row, line := range p.lines.Slice(start, end) {
		if err := screen.DrawLine(row, line.String()); err != nil {
			return &TerminalError{Op: "write output", Err: err}
		}
	}
	if err := screen.Flush(); err != nil {
		return &TerminalError{Op: "flush output", Err: err}
	}
	debuglog.Printf("pager", "rendered page %d (lines %d-%d)", p.state.Page(), start, end)
	return nil
}
