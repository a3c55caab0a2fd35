package pager

import (
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/lessr/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// TcellScreen renders through tcell, which handles terminals and consoles
// that do not speak plain ANSI escape sequences.
type TcellScreen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

func NewTcellScreen() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTcellScreen(screen), nil
}

func newTcellScreen(screen tcell.Screen) *TcellScreen {
	return &TcellScreen{screen: screen}
}

func (s *TcellScreen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.events = make(chan tcell.Event, 8)
	s.quit = make(chan struct{})
	go s.screen.ChannelEvents(s.events, s.quit)

	s.screen.HideCursor()
	s.screen.Clear()
	s.screen.Show()
	return nil
}

func (s *TcellScreen) Fini() error {
	if s.quit != nil {
		close(s.quit)
		s.quit = nil
	}
	s.screen.Fini()
	return nil
}

func (s *TcellScreen) Size() (int, int, error) {
	width, height := s.screen.Size()
	return width, height, nil
}

func (s *TcellScreen) Clear() error {
	s.screen.Clear()
	return nil
}

// DrawLine places one rune per cell. Wide runes take two cells, combining
// marks ride along with the cell before them, and tabs are expanded because
// tcell has no notion of tab stops.
func (s *TcellScreen) DrawLine(row int, text string) error {
	width, height := s.screen.Size()
	if row < 0 || row >= height {
		return nil
	}
	text = textutil.ExpandTabs(textutil.SanitizeTerminalText(text), textutil.DefaultTabWidth)

	x := 0
	var cell tcellCell
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w == 0 {
			if cell.set {
				cell.combc = append(cell.combc, ru)
			}
			continue
		}
		s.putCell(row, cell)
		cell = tcellCell{}
		if x+w > width {
			break
		}
		cell = tcellCell{x: x, mainc: ru, set: true}
		x += w
	}
	s.putCell(row, cell)
	return nil
}

// tcellCell collects a base rune and the zero-width runes that follow it.
type tcellCell struct {
	x     int
	mainc rune
	combc []rune
	set   bool
}

func (s *TcellScreen) putCell(row int, cell tcellCell) {
	if cell.set {
		s.screen.SetContent(cell.x, row, cell.mainc, cell.combc, tcell.StyleDefault)
	}
}

func (s *TcellScreen) Flush() error {
	s.screen.Show()
	return nil
}

// PollKey ignores non-key events such as resizes while waiting.
func (s *TcellScreen) PollKey(timeout time.Duration) (Key, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return KeyUnknown, false, io.EOF
			}
			if keyEv, isKey := ev.(*tcell.EventKey); isKey {
				return keyFromTcell(keyEv), true, nil
			}
		case <-timer.C:
			return KeyUnknown, false, nil
		}
	}
}

func keyFromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyCtrlC:
		return KeyInterrupt
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return KeyQuit
		case ' ':
			return KeySpace
		}
	}
	return KeyUnknown
}
