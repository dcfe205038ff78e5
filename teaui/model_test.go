package teaui

import (
	"TermSnake/game"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	b, err := game.NewBoardWithRand(78, 24, rand.New(rand.NewPCG(7, 8)))
	if err != nil {
		t.Fatalf("NewBoardWithRand err=%v", err)
	}
	return NewModel(b, time.Millisecond)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestUpdate_KeysChangeDirection(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want game.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, game.Up},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, game.Down},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, game.Left},
		{tea.KeyMsg{Type: tea.KeyUp}, game.Up},
		{tea.KeyMsg{Type: tea.KeyLeft}, game.Left},
		{tea.KeyMsg{Type: tea.KeyDown}, game.Down},
		{tea.KeyMsg{Type: tea.KeyRight}, game.Right},
	}

	for _, tt := range tests {
		m := newTestModel(t)
		m.Board.ChangeControl(game.Right)
		if tt.want == game.Right {
			m.Board.ChangeControl(game.Up)
		}

		m, cmd := update(t, m, tt.msg)
		if cmd != nil {
			t.Fatalf("%v: unexpected command", tt.msg)
		}
		if got := m.Board.Direction(); got != tt.want {
			t.Fatalf("%v: direction=%v want=%v", tt.msg, got, tt.want)
		}
	}
}

func TestUpdate_LatestKeyWinsUntilTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m, cmd := update(t, m, tickMsg(time.Now()))

	if cmd == nil || isQuit(cmd) {
		t.Fatalf("tick did not schedule the next tick")
	}
	if head := m.Board.Snake()[3]; head != game.NewPoint(39, 13) {
		t.Fatalf("head=%v want=(39,13)", head)
	}
	if m.Board.Frame() != 1 {
		t.Fatalf("frame=%d want=1", m.Board.Frame())
	}
}

func TestUpdate_UnknownKeyIgnored(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Fatalf("unexpected command for an unknown key")
	}
	if m.Board.Direction() != game.Right {
		t.Fatalf("direction=%v want=%v", m.Board.Direction(), game.Right)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyCtrlD},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := newTestModel(t)
		m, cmd := update(t, m, msg)
		if !isQuit(cmd) {
			t.Fatalf("%v: command is not quit", msg)
		}

		_, cmd = update(t, m, tickMsg(time.Now()))
		if cmd != nil || m.Board.Frame() != 0 {
			t.Fatalf("%v: ticked after quit, frame=%d", msg, m.Board.Frame())
		}
	}
}

func TestUpdate_GameOverQuits(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, cmd := update(t, m, tickMsg(time.Now()))

	if m.Board.State() != game.GameOver {
		t.Fatalf("state=%v want=%v", m.Board.State(), game.GameOver)
	}
	if !isQuit(cmd) {
		t.Fatalf("game over did not quit")
	}
	if !strings.Contains(m.View(), "State: game over") {
		t.Fatalf("view missing game over state:\n%s", m.View())
	}
}

func TestView_Grid(t *testing.T) {
	m := newTestModel(t)
	lines := strings.Split(m.View(), "\n")

	if len(lines) != 26 {
		t.Fatalf("lines=%d want=26", len(lines))
	}
	// Two wall cells plus four snake segments.
	if n := strings.Count(lines[12], "█"); n != 6 {
		t.Fatalf("snake row has %d blocks want=6: %q", n, lines[12])
	}
	if n := strings.Count(lines[0], "█"); n != 79 {
		t.Fatalf("top wall has %d blocks want=79", n)
	}
	if !strings.Contains(lines[25], "Length: 4") {
		t.Fatalf("status=%q", lines[25])
	}
}

func TestUpdate_PauseHoldsTicks(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m, cmd := update(t, m, tickMsg(time.Now()))

	if cmd == nil || isQuit(cmd) {
		t.Fatalf("paused tick did not schedule the next tick")
	}
	if m.Board.Frame() != 0 || m.Board.Direction() != game.Right {
		t.Fatalf("paused tick stepped or steered: frame=%d direction=%v", m.Board.Frame(), m.Board.Direction())
	}
	if !strings.Contains(m.View(), "State: paused") {
		t.Fatalf("view missing paused state")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m, _ = update(t, m, tickMsg(time.Now()))
	if m.Board.Frame() != 1 {
		t.Fatalf("frame=%d want=1 after resuming", m.Board.Frame())
	}
}
