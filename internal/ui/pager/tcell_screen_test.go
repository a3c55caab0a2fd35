package pager

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/lessr/internal/fs"
)

func newSimTcellScreen(t *testing.T) (*TcellScreen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen := newTcellScreen(sim)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = screen.Fini() })
	return screen, sim
}

func simRow(sim tcell.SimulationScreen, row int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[row*width+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestTcellScreenDrawLine(t *testing.T) {
	screen, sim := newSimTcellScreen(t)
	sim.SetSize(12, 4)

	if err := screen.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	_ = screen.DrawLine(0, "     1\ta")
	_ = screen.DrawLine(1, "a very long line indeed")
	_ = screen.DrawLine(9, "off screen")
	if err := screen.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := simRow(sim, 0); got != "     1  a" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := simRow(sim, 1); got != "a very long " && got != "a very long" {
		t.Fatalf("row 1 should be cut at the width, got %q", got)
	}
}

func TestTcellScreenDrawLineKeepsCombiningMarks(t *testing.T) {
	screen, sim := newSimTcellScreen(t)
	sim.SetSize(3, 2)

	_ = screen.DrawLine(0, "e\u0301xyz\u0301")
	_ = screen.Flush()

	cells, _, _ := sim.GetContents()
	if got := string(cells[0].Runes); got != "e\u0301" {
		t.Fatalf("cell 0 = %q, want e with its accent", got)
	}
	if got := string(cells[1].Runes); got != "x" {
		t.Fatalf("cell 1 = %q", got)
	}
	if got := string(cells[2].Runes); got != "y" {
		t.Fatalf("cell 2 = %q, the mark after the cut must not land here", got)
	}
}

func TestTcellScreenPollKey(t *testing.T) {
	screen, sim := newSimTcellScreen(t)

	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	want := []Key{KeyDown, KeySpace, KeyUp, KeyUnknown, KeyQuit}
	for i, k := range want {
		got, ok, err := screen.PollKey(2 * time.Second)
		if err != nil || !ok {
			t.Fatalf("poll %d: ok=%v err=%v", i, ok, err)
		}
		if got != k {
			t.Fatalf("poll %d = %v, want %v", i, got, k)
		}
	}

	if _, ok, err := screen.PollKey(10 * time.Millisecond); ok || err != nil {
		t.Fatalf("expected a timeout with no pending keys, ok=%v err=%v", ok, err)
	}
}

func TestTcellScreenRunsPager(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen := newTcellScreen(sim)
	session, err := OpenSession(screen)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	defer func() { _ = session.Close() }()

	_, height, _ := screen.Size()
	texts := numberedTexts(height * 2)
	p := New(session, fs.NewLineBuffer("sim", texts, fs.LoadOptions{}), Options{PollTimeout: 50 * time.Millisecond})

	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.Page() != 1 {
		t.Fatalf("expected page 1, got %d", p.Page())
	}
	if got := simRow(sim, 0); got != texts[height-1] {
		t.Fatalf("row 0 = %q, want %q", got, texts[height-1])
	}
}
