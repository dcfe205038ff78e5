package client

import (
	"TermSnake/game"
	"fmt"
	"time"

	"github.com/HandyGold75/GOLib/logger"
)

type (
	// InputSource yields at most one decoded key symbol per call, waiting no longer than timeout.
	InputSource interface {
		Poll(timeout time.Duration) (rune, bool)
	}

	Renderer interface {
		Render(game.Snapshot) error
	}

	// Loop drives a Board at a fixed cadence, the latest direction seen within a frame wins.
	Loop struct {
		Board    *game.Board
		Input    InputSource
		Renderer Renderer
		Lgr      *logger.Logger

		FrameInterval, PollInterval time.Duration

		quit, paused bool
	}
)

const (
	// QuitKey is the symbol inputs decode q, Ctrl-C and Ctrl-D to.
	QuitKey rune = 'q'
	// PauseKey is the symbol inputs decode p and Esc to.
	PauseKey rune = 'p'
)

func (l *Loop) log(verbosity, action string, msg any) {
	if l.Lgr == nil {
		return
	}
	l.Lgr.Log(verbosity, action, msg)
}

// sample applies inputs until the deadline passes or a quit is requested.
func (l *Loop) sample(deadline time.Time) {
	for remaining := time.Until(deadline); remaining > 0; remaining = time.Until(deadline) {
		r, ok := l.Input.Poll(min(l.PollInterval, remaining))
		if !ok {
			continue
		}

		if r == QuitKey {
			l.quit = true
			return
		}
		if r == PauseKey {
			l.paused = !l.paused
			continue
		}
		if l.paused {
			continue
		}
		if dir, ok := game.DirectionFrom(r); ok {
			l.Board.ChangeControl(dir)
		}
	}
}

// Frame runs one iteration and reports whether the loop is done. A paused frame renders without stepping.
func (l *Loop) Frame() (bool, error) {
	l.sample(time.Now().Add(l.FrameInterval))
	if l.quit {
		l.log("medium", "Quit", fmt.Sprintf("frame %d", l.Board.Frame()))
		return true, nil
	}

	if !l.paused {
		l.Board.Step()
	}

	snap := l.Board.Snapshot()
	snap.Paused = l.paused
	if err := l.Renderer.Render(snap); err != nil {
		l.log("high", "Error", err)
		return true, err
	}

	if l.Board.State() == game.GameOver {
		l.log("medium", "GameOver", fmt.Sprintf("length %d frame %d", len(l.Board.Snake()), l.Board.Frame()))
		return true, nil
	}
	return false, nil
}

func (l *Loop) Run() error {
	for {
		done, err := l.Frame()
		if err != nil || done {
			return err
		}
	}
}
