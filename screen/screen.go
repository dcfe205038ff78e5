package screen

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"unicode"

	"golang.org/x/term"
)

type (
	row []int8

	screenHelper struct {
		f *Screen
	}

	// Screen is a fixed grid of cell objects drawn through CharMap.
	Screen struct {
		Rows       []row
		CurX, CurY int
		CharMap    map[int8][]byte
		Out        io.Writer
		H          screenHelper
	}

	Cord       struct{ X, Y int }
	errScreens struct{ XOutOfBounds, YOutOfBounds, NoRowsFound, TerminalTooSmall error }
)

var (
	ErrScreens = errScreens{
		XOutOfBounds:     errors.New("x is out of bounds"),
		YOutOfBounds:     errors.New("y is out of bounds"),
		NoRowsFound:      errors.New("no rows found"),
		TerminalTooSmall: errors.New("terminal is too small for the board"),
	}
)

// NewScreen creates a screen of cols by rows cells, CurX and CurY are the last valid indexes.
func NewScreen(cols, rows int, charMap map[int8][]byte, out io.Writer) (*Screen, error) {
	if cols <= 0 || rows <= 0 {
		return &Screen{}, ErrScreens.NoRowsFound
	}

	r := make([]row, rows)
	for i := range r {
		r[i] = make(row, cols)
	}

	f := &Screen{
		Rows: r,
		CurX: cols - 1, CurY: rows - 1,
		CharMap: charMap,
		Out:     out,
	}
	f.H.f = f

	return f, nil
}

// FitsTerminal checks the terminal on fd can show every cell plus the stats bar.
func (f *Screen) FitsTerminal(fd int, cellWidth int) error {
	x, y, err := term.GetSize(fd)
	if err != nil {
		return err
	}
	if x < (f.CurX+1)*cellWidth || y < f.CurY+2 {
		return ErrScreens.TerminalTooSmall
	}
	return nil
}

func (f *Screen) SetRow(y int, state int8) error {
	if y > len(f.Rows)-1 || y < 0 {
		return ErrScreens.YOutOfBounds
	}

	r := make(row, f.CurX+1)
	for i := range r {
		r[i] = state
	}

	f.Rows = slices.Replace(f.Rows, y, y+1, r)

	return nil
}

func (f *Screen) SetCol(x int, state int8) error {
	if len(f.Rows) == 0 {
		return ErrScreens.NoRowsFound
	}
	if x > len(f.Rows[0])-1 || x < 0 {
		return ErrScreens.XOutOfBounds
	}

	for i := range f.Rows {
		f.Rows[i][x] = state
	}

	return nil
}

func (f *Screen) SetColRow(x, y int, state int8) error {
	if y > len(f.Rows)-1 || y < 0 {
		return ErrScreens.YOutOfBounds
	}
	if x > len(f.Rows[y])-1 || x < 0 {
		return ErrScreens.XOutOfBounds
	}

	f.Rows[y][x] = state

	return nil
}

func (f *Screen) GetColRow(x, y int) (int8, error) {
	if y > len(f.Rows)-1 || y < 0 {
		return -1, ErrScreens.YOutOfBounds
	}
	if x > len(f.Rows[y])-1 || x < 0 {
		return -1, ErrScreens.XOutOfBounds
	}

	return f.Rows[y][x], nil
}

func (f *Screen) Clear() {
	for i := range f.Rows {
		f.Rows[i] = make(row, f.CurX+1)
	}
}

// Frame returns the bytes Draw would write, without the cursor reset.
func (f *Screen) Frame() []byte {
	lines := [][]byte{}
	for _, r := range f.Rows {
		line := []byte{}
		for _, col := range r {
			char, ok := f.CharMap[col]
			if ok {
				line = append(line, char...)
				continue
			}

			char, ok = f.CharMap[-1]
			if ok {
				line = append(line, char...)
				continue
			}

			if col != 0 {
				line = append(line, []byte("█")...)
				continue
			}

			line = append(line, ' ')
		}
		lines = append(lines, line)
	}
	lines = append(lines, []byte{})

	return bytes.Join(lines, []byte("\r\n"))
}

func (f *Screen) Draw() error {
	if _, err := f.Out.Write(append([]byte("\033[0;0H"), f.Frame()...)); err != nil {
		return err
	}

	return nil
}

func (fh *screenHelper) RenderString(str string, offsetX, offsetY int, state int8) {
	for _, r := range str {
		cords, ok := charMap[unicode.ToUpper(r)]
		if !ok {
			offsetX += 6
			continue
		}

		fh.RenderCords(cords, offsetX, offsetY, state)
		offsetX += 6
	}
}

func (fh *screenHelper) RenderStringIf(str string, offsetX, offsetY int, state int8, set func(int8) bool) {
	for _, r := range str {
		cords, ok := charMap[unicode.ToUpper(r)]
		if !ok {
			offsetX += 6
			continue
		}

		fh.RenderCordsIf(cords, offsetX, offsetY, state, set)
		offsetX += 6
	}
}

func (fh *screenHelper) RenderCords(cords []Cord, offsetX, offsetY int, state int8) {
	for _, cord := range cords {
		_ = fh.f.SetColRow(cord.X+offsetX, cord.Y+offsetY, state)
	}
}

func (fh *screenHelper) RenderCordsIf(cords []Cord, offsetX, offsetY int, state int8, set func(int8) bool) {
	for _, cord := range cords {
		val, err := fh.f.GetColRow(cord.X+offsetX, cord.Y+offsetY)
		if err != nil {
			continue
		}
		if set(val) {
			_ = fh.f.SetColRow(cord.X+offsetX, cord.Y+offsetY, state)
		}
	}
}
