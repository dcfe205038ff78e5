// Package teaui plays the game through a Bubble Tea program instead of the raw terminal client.
//
// Keys arriving between two ticks overwrite the pending direction, so the latest one wins just like the
// polling loop in package client. Each tick runs exactly one board step unless the game is paused.
package teaui

import (
	"TermSnake/client"
	"TermSnake/game"
	"fmt"
	"strings"
	"time"

	"github.com/HandyGold75/GOLib/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type (
	tickMsg time.Time

	styles struct{ Wall, Body, Head, Food, Status, Warning lipgloss.Style }

	Model struct {
		Board    *game.Board
		Interval time.Duration
		Lgr      *logger.Logger

		styles       styles
		quit, paused bool
	}
)

func NewModel(board *game.Board, interval time.Duration) Model {
	return Model{
		Board:    board,
		Interval: interval,
		styles: styles{
			Wall:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Body:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Head:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Food:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Status:  lipgloss.NewStyle().Faint(true),
			Warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		},
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) log(verbosity, action string, msg any) {
	if m.Lgr == nil {
		return
	}
	m.Lgr.Log(verbosity, action, msg)
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.Interval)
}

// symbol maps a key press to the symbols understood by game.DirectionFrom.
func symbol(msg tea.KeyMsg) (rune, bool) {
	switch msg.String() {
	case "q", "ctrl+c", "ctrl+d":
		return client.QuitKey, true
	case "p", "esc":
		return client.PauseKey, true
	case "up":
		return 'w', true
	case "left":
		return 'a', true
	case "down":
		return 's', true
	case "right":
		return 'd', true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return msg.Runes[0], true
	}
	return 0, false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		r, ok := symbol(msg)
		if !ok {
			return m, nil
		}
		if r == client.QuitKey {
			m.quit = true
			m.log("medium", "Quit", fmt.Sprintf("frame %d", m.Board.Frame()))
			return m, tea.Quit
		}
		if r == client.PauseKey {
			m.paused = !m.paused
			return m, nil
		}
		if dir, ok := game.DirectionFrom(r); ok && !m.paused && m.Board.State() != game.GameOver {
			m.Board.ChangeControl(dir)
		}
		return m, nil

	case tickMsg:
		if m.quit {
			return m, nil
		}
		if m.paused {
			return m, tickCmd(m.Interval)
		}
		m.Board.Step()
		if m.Board.State() == game.GameOver {
			m.log("medium", "GameOver", fmt.Sprintf("length %d frame %d", len(m.Board.Snake()), m.Board.Frame()))
			return m, tea.Quit
		}
		return m, tickCmd(m.Interval)
	}

	return m, nil
}

func (m Model) View() string {
	snap := m.Board.Snapshot()
	snap.Paused = m.paused
	w, h := int(snap.Width)+1, int(snap.Height)+1

	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				grid[y][x] = m.styles.Wall.Render("█")
				continue
			}
			grid[y][x] = " "
		}
	}

	if snap.HasFood {
		grid[snap.Food.Y()][snap.Food.X()] = m.styles.Food.Render("●")
	}
	for i, p := range snap.Snake {
		if int(p.X()) >= w || int(p.Y()) >= h {
			continue
		}
		if i == len(snap.Snake)-1 {
			grid[p.Y()][p.X()] = m.styles.Head.Render("█")
		} else {
			grid[p.Y()][p.X()] = m.styles.Body.Render("█")
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.Join(row, ""))
		sb.WriteByte('\n')
	}

	state := snap.State.String()
	if snap.Paused && snap.State != game.GameOver {
		state = "paused"
	}
	status := fmt.Sprintf("Length: %d   Frame: %d   Direction: %v   State: %v", len(snap.Snake), snap.Frame, snap.Direction, state)
	if snap.State == game.GameOver {
		sb.WriteString(m.styles.Warning.Render(status))
	} else {
		sb.WriteString(m.styles.Status.Render(status))
	}
	return sb.String()
}

// Run plays one game as a Bubble Tea program on the alternate screen.
func Run(cfg client.Config) error {
	lgr, err := client.NewLogger(cfg.LogName)
	if err != nil {
		return err
	}
	session := uuid.NewString()

	board, err := game.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	m := NewModel(board, cfg.FrameInterval)
	m.Lgr = lgr

	lgr.Log("medium", "Session", fmt.Sprintf("%s %dx%d tea", session, cfg.Width, cfg.Height))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	lgr.Log("medium", "Ended", session)

	return err
}
