package client

import (
	"io"
	"slices"
	"sync/atomic"
	"time"
)

type (
	keyBinds struct {
		ESC, P, CTRL_C, CTRL_D, Q,
		UP, RIGHT, DOWN, LEFT []byte
	}

	// Keyboard reads raw key chunks from a terminal and buffers decoded symbols for Poll.
	Keyboard struct {
		KeyBinds keyBinds

		in       io.Reader
		keys     chan rune
		stopping atomic.Bool
	}
)

func NewKeyboard(in io.Reader, buffer int) *Keyboard {
	return &Keyboard{
		KeyBinds: keyBinds{
			ESC: []byte{27, 0, 0}, P: []byte{112, 0, 0},
			CTRL_C: []byte{3, 0, 0}, CTRL_D: []byte{4, 0, 0}, Q: []byte{113, 0, 0},
			UP: []byte{27, 91, 65}, RIGHT: []byte{27, 91, 67}, DOWN: []byte{27, 91, 66}, LEFT: []byte{27, 91, 68},
		},
		in:   in,
		keys: make(chan rune, max(1, buffer)),
	}
}

// Decode turns one read chunk into key symbols. Arrows become w/a/s/d, Esc becomes PauseKey and quit keys become QuitKey.
func (kb *Keyboard) Decode(in []byte) []rune {
	chunk := make([]byte, 3)
	copy(chunk, in)

	switch {
	case slices.Equal(chunk, kb.KeyBinds.UP):
		return []rune{'w'}
	case slices.Equal(chunk, kb.KeyBinds.RIGHT):
		return []rune{'d'}
	case slices.Equal(chunk, kb.KeyBinds.DOWN):
		return []rune{'s'}
	case slices.Equal(chunk, kb.KeyBinds.LEFT):
		return []rune{'a'}
	case slices.Equal(chunk, kb.KeyBinds.ESC):
		return []rune{PauseKey}
	case len(in) > 0 && in[0] == 27:
		return nil
	}

	out := []rune{}
	for _, b := range in {
		switch b {
		case 0:
		case kb.KeyBinds.CTRL_C[0], kb.KeyBinds.CTRL_D[0], kb.KeyBinds.Q[0]:
			out = append(out, QuitKey)
		default:
			out = append(out, rune(b))
		}
	}
	return out
}

// Listen blocks reading the input until it fails or Stop is called, keys are dropped while the buffer is full.
func (kb *Keyboard) Listen() error {
	for !kb.stopping.Load() {
		in := make([]byte, 3)
		n, err := kb.in.Read(in)
		if err != nil {
			return err
		}

		for _, r := range kb.Decode(in[:n]) {
			select {
			case kb.keys <- r:
			default:
			}
		}
	}
	return nil
}

// Stop makes Listen return after its next read. A Read that is already blocked is not interrupted,
// so on stdin the listener lives until the next key or process exit.
func (kb *Keyboard) Stop() { kb.stopping.Store(true) }

func (kb *Keyboard) Poll(timeout time.Duration) (rune, bool) {
	select {
	case r := <-kb.keys:
		return r, true
	default:
	}
	if timeout <= 0 {
		return 0, false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-kb.keys:
		return r, true
	case <-timer.C:
		return 0, false
	}
}
