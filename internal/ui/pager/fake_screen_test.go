package pager

import (
	"io"
	"time"
)

type pollResult struct {
	key Key
	ok  bool
	err error
}

func press(k Key) pollResult { return pollResult{key: k, ok: true} }

func idle() pollResult { return pollResult{} }

// fakeScreen records every flushed frame and replays scripted input. Once
// the script runs out it reports end of input.
type fakeScreen struct {
	width, height int

	initErr  error
	sizeErr  error
	clearErr error
	drawErr  error
	drawHook func(row int)

	script []pollResult
	polls  int

	inited  bool
	finis   int
	current []string
	frames  [][]string
}

func newFakeScreen(height int, script ...pollResult) *fakeScreen {
	return &fakeScreen{width: 80, height: height, script: script}
}

func (f *fakeScreen) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	f.inited = true
	return nil
}

func (f *fakeScreen) Fini() error {
	f.finis++
	return nil
}

func (f *fakeScreen) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeScreen) Clear() error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.current = []string{}
	return nil
}

func (f *fakeScreen) DrawLine(row int, text string) error {
	if f.drawHook != nil {
		f.drawHook(row)
	}
	if f.drawErr != nil {
		return f.drawErr
	}
	if row != len(f.current) {
		panic("rows must be drawn top to bottom without gaps")
	}
	f.current = append(f.current, text)
	return nil
}

func (f *fakeScreen) Flush() error {
	f.frames = append(f.frames, f.current)
	return nil
}

func (f *fakeScreen) PollKey(time.Duration) (Key, bool, error) {
	if f.polls >= len(f.script) {
		return KeyUnknown, false, io.EOF
	}
	r := f.script[f.polls]
	f.polls++
	return r.key, r.ok, r.err
}

func (f *fakeScreen) lastFrame() []string {
	if len(f.frames) == 0 {
		return nil
	}
	return f.frames[len(f.frames)-1]
}
