package screen

import (
	"TermSnake/game"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/term"
)

type (
	boardObjects struct{ Default, Empty, Wall, PlusOne, Warning, Food, Body, Head int8 }

	// BoardRenderer draws game snapshots onto a Screen sized to the board including its wall ring.
	BoardRenderer struct {
		Screen        *Screen
		Escape        *term.EscapeCodes
		PlusOneFrames int
		StartTime     time.Time

		lastLen     int
		plusOneLeft int
	}
)

var Objects = boardObjects{
	Default: -1,
	Empty:   0,
	Wall:    1,
	PlusOne: 2,
	Warning: 3,
	Food:    4,
	Body:    5,
	Head:    6,
}

// NewCharMap builds the coloured glyph map for every board object.
func NewCharMap(esc *term.EscapeCodes) map[int8][]byte {
	block := func(color []byte) []byte {
		return append(append(append([]byte{}, color...), []byte("█")...), esc.Reset...)
	}

	return map[int8][]byte{
		Objects.Default: block(esc.Magenta),
		Objects.Empty:   []byte(" "),
		Objects.Wall:    block(esc.Blue),
		Objects.PlusOne: block(esc.Green),
		Objects.Warning: block(esc.Red),
		Objects.Food:    block(esc.Yellow),
		Objects.Body:    block(esc.White),
		Objects.Head:    block(esc.Cyan),
	}
}

// NewBoardRenderer covers cells 0..width by 0..height, so the outer ring shows where the walls really are.
func NewBoardRenderer(width, height uint16, charMap map[int8][]byte, esc *term.EscapeCodes, out io.Writer) (*BoardRenderer, error) {
	scr, err := NewScreen(int(width)+1, int(height)+1, charMap, out)
	if err != nil {
		return &BoardRenderer{}, err
	}

	return &BoardRenderer{
		Screen:        scr,
		Escape:        esc,
		PlusOneFrames: 10,
		StartTime:     time.Now(),
	}, nil
}

func (r *BoardRenderer) Render(snap game.Snapshot) error {
	scr := r.Screen
	scr.Clear()

	_ = scr.SetCol(0, Objects.Wall)
	_ = scr.SetRow(0, Objects.Wall)
	_ = scr.SetCol(scr.CurX, Objects.Wall)
	_ = scr.SetRow(scr.CurY, Objects.Wall)

	if r.lastLen > 0 && len(snap.Snake) > r.lastLen {
		r.plusOneLeft = r.PlusOneFrames
	}
	r.lastLen = len(snap.Snake)

	if r.plusOneLeft > 0 {
		r.plusOneLeft--
		onEmpty := func(val int8) bool { return val == Objects.Empty }
		scr.H.RenderCordsIf(Chars.Plus, 2, 2, Objects.PlusOne, onEmpty)
		scr.H.RenderCordsIf(Chars.One, 8, 2, Objects.PlusOne, onEmpty)
	}

	if snap.HasFood {
		_ = scr.SetColRow(int(snap.Food.X()), int(snap.Food.Y()), Objects.Food)
	}

	for i, p := range snap.Snake {
		obj := Objects.Body
		if i == len(snap.Snake)-1 {
			obj = Objects.Head
		}
		_ = scr.SetColRow(int(p.X()), int(p.Y()), obj)
	}

	if snap.State == game.GameOver {
		scr.H.RenderString("Game", 2, 2, Objects.Warning)
		scr.H.RenderString("Over", 8, 8, Objects.Warning)
	} else if snap.Paused {
		scr.H.RenderStringIf("Paused", 2, 2, Objects.Warning, func(val int8) bool { return val < Objects.Food })
	}

	if err := scr.Draw(); err != nil {
		return err
	}

	_, err := scr.Out.Write([]byte(r.statsBar(snap)))
	return err
}

func (r *BoardRenderer) statsBar(snap game.Snapshot) string {
	timeDiff := time.Since(r.StartTime)
	timeStr := fmt.Sprintf("%02d:%02d:%02d:%03d", int(timeDiff.Hours()), int(timeDiff.Minutes())%60, int(timeDiff.Seconds())%60, int(timeDiff.Milliseconds())%1000)

	state := snap.State.String()
	if snap.Paused && snap.State != game.GameOver {
		state = "paused"
	}
	if r.Escape != nil && snap.State == game.GameOver {
		state = string(r.Escape.Red) + state + string(r.Escape.Reset)
	}

	msg := fmt.Sprintf("Time: %v   Length: %v   Frame: %v   Size: %vx %vy   State: %v ", timeStr, len(snap.Snake), snap.Frame, snap.Width, snap.Height, state)

	if len([]rune(msg)) > r.Screen.CurX+1 {
		return fmt.Sprintf("\033[2K\r%."+strconv.Itoa(r.Screen.CurX+1)+"s...", msg)
	}
	return fmt.Sprintf("\033[2K\r%."+strconv.Itoa(r.Screen.CurX+1)+"s", msg)
}
