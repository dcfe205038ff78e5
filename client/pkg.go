package client

import (
	"TermSnake/game"
	"TermSnake/screen"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/HandyGold75/GOLib/logger"
	"github.com/google/uuid"
	"golang.org/x/term"
)

type (
	Config struct {
		Width, Height               uint16
		FrameInterval, PollInterval time.Duration
		KeyBuffer                   int
		LogName                     string
	}

	errClient struct{ NotATerminal error }
)

var ErrClient = errClient{
	NotATerminal: errors.New("stdin/ stdout should be a terminal"),
}

func DefaultConfig() Config {
	return Config{
		Width:         78,
		Height:        24,
		FrameInterval: 100 * time.Millisecond,
		PollInterval:  10 * time.Millisecond,
		KeyBuffer:     16,
		LogName:       "TermSnake",
	}
}

// NewLogger opens the game log `<UserConfigDir>/golib/<name>.log`.
// Nothing is echoed to the CLI since the terminal belongs to the game.
func NewLogger(name string) (*logger.Logger, error) {
	lgr, err := logger.New(name)
	if err != nil {
		return nil, err
	}
	lgr.UseSeperators = false
	lgr.CharCountPerPart = 16
	lgr.VerboseToCLI = 4
	return lgr, nil
}

// Run plays one game in the current terminal and returns once it is over or the player quits.
func Run(cfg Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrClient.NotATerminal
	}

	lgr, err := NewLogger(cfg.LogName)
	if err != nil {
		return err
	}
	session := uuid.NewString()

	board, err := game.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	trm := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "")

	rdr, err := screen.NewBoardRenderer(cfg.Width, cfg.Height, screen.NewCharMap(trm.Escape), trm.Escape, trm)
	if err != nil {
		return err
	}
	if err := rdr.Screen.FitsTerminal(int(os.Stdout.Fd()), 1); err != nil {
		return err
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	kb := NewKeyboard(os.Stdin, cfg.KeyBuffer)
	defer kb.Stop()
	go func() {
		if err := kb.Listen(); err != nil {
			lgr.Log("high", "Error", err)
		}
	}()

	lgr.Log("medium", "Session", fmt.Sprintf("%s %dx%d", session, cfg.Width, cfg.Height))
	os.Stdout.WriteString("\033[2J")

	lp := &Loop{
		Board:         board,
		Input:         kb,
		Renderer:      rdr,
		Lgr:           lgr,
		FrameInterval: cfg.FrameInterval,
		PollInterval:  cfg.PollInterval,
	}
	err = lp.Run()

	os.Stdout.WriteString("\r\n")
	lgr.Log("medium", "Ended", session)

	return err
}
