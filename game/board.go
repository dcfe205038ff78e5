package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"time"
)

type (
	State uint8

	errBoard struct{ TooSmall, EmptySnake error }

	// Board holds the full game state and is mutated once per frame through Step.
	Board struct {
		width, height uint16

		state     State
		direction Direction

		snake           []Point
		food            Point
		hasFood         bool
		framesSinceFood int
		frame           uint64

		rng *rand.Rand
	}

	// Snapshot is a read-only copy of a Board handed to renderers.
	// Paused is never set by the Board, drivers set it on frames they hold back.
	Snapshot struct {
		Width, Height   uint16
		State           State
		Direction       Direction
		Snake           []Point
		Food            Point
		HasFood         bool
		FramesSinceFood int
		Frame           uint64
		Paused          bool
	}
)

const (
	Running State = iota
	FruitCollected
	GameOver
)

const (
	MinSize = 9

	foodSpawnFrames = 5
	foodInset       = 4
	startLength     = 4
)

var ErrBoard = errBoard{
	TooSmall:   errors.New("board is too small"),
	EmptySnake: errors.New("invalid game state, snake is empty"),
}

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case FruitCollected:
		return "fruit collected"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

func NewBoard(width, height uint16) (*Board, error) {
	now := uint64(time.Now().UnixNano())
	return NewBoardWithRand(width, height, rand.New(rand.NewPCG(now, now>>1)))
}

// NewBoardWithRand is NewBoard with an explicit random source for food placement.
func NewBoardWithRand(width, height uint16, rng *rand.Rand) (*Board, error) {
	if width < MinSize || height < MinSize {
		return &Board{}, ErrBoard.TooSmall
	}

	tail := NewPoint(width/2, height/2)
	snake := make([]Point, 0, startLength)
	for i := startLength - 1; i > 0; i-- {
		snake = append(snake, NewPoint(tail.x-uint16(i), tail.y))
	}
	snake = append(snake, tail)

	return &Board{
		width: width, height: height,
		state:     Running,
		direction: Right,
		snake:     snake,
		rng:       rng,
	}, nil
}

func (b *Board) head() Point {
	if len(b.snake) == 0 {
		panic(ErrBoard.EmptySnake)
	}
	return b.snake[len(b.snake)-1]
}

// nextPoint is the cell the head moves into with the pending direction.
func (b *Board) nextPoint() Point {
	head := b.head()
	switch b.direction {
	case Up:
		return NewPoint(head.x, head.y-1)
	case Down:
		return NewPoint(head.x, head.y+1)
	case Left:
		return NewPoint(head.x-1, head.y)
	}
	return NewPoint(head.x+1, head.y)
}

// Step runs one frame worth of transitions. The order is load bearing.
func (b *Board) Step() {
	if b.state == GameOver {
		return
	}

	b.CheckCollisionDeath()
	b.CheckCollisionFood()
	b.MoveSnake()
	b.ChopTail()
	b.SpawnFood()
	b.frame++
}

// CheckCollisionDeath ends the game when any segment sits on the wall ring or the next head hits the body.
// The ring includes coordinate 0 as well as width and height.
func (b *Board) CheckCollisionDeath() {
	for _, p := range b.snake {
		if p.x == 0 || p.x >= b.width || p.y == 0 || p.y >= b.height {
			b.state = GameOver
			return
		}
	}

	if slices.Contains(b.snake, b.nextPoint()) {
		b.state = GameOver
	}
}

// CheckCollisionFood collects food under the head. A frame that already ended the game collects nothing.
func (b *Board) CheckCollisionFood() {
	if b.state == GameOver || !b.hasFood {
		return
	}

	if b.food == b.head() {
		b.state = FruitCollected
		b.hasFood = false
	}
}

func (b *Board) MoveSnake() {
	if b.state == GameOver {
		return
	}

	b.snake = append(b.snake, b.nextPoint())
}

// ChopTail removes the oldest segment, unless a fruit was collected this frame.
func (b *Board) ChopTail() {
	if b.state == FruitCollected {
		b.state = Running
		return
	}
	if b.state != Running {
		return
	}
	if len(b.snake) == 0 {
		panic(ErrBoard.EmptySnake)
	}

	b.snake = slices.Delete(b.snake, 0, 1)
}

// SpawnFood places food inside the inset region after enough food-less frames.
// The chosen cell is not checked against the snake body.
func (b *Board) SpawnFood() {
	if b.hasFood {
		return
	}

	b.framesSinceFood++
	if b.framesSinceFood < foodSpawnFrames {
		return
	}

	x := b.rng.IntN(int(b.width)-2*foodInset) + foodInset
	y := b.rng.IntN(int(b.height)-2*foodInset) + foodInset
	b.food = NewPoint(uint16(x), uint16(y))
	b.hasFood = true
	b.framesSinceFood = 0
}

func (b *Board) ChangeControl(d Direction) { b.direction = d }

func (b *Board) Width() uint16 { return b.width }

func (b *Board) Height() uint16 { return b.height }

func (b *Board) State() State { return b.state }

func (b *Board) Direction() Direction { return b.direction }

func (b *Board) Snake() []Point { return slices.Clone(b.snake) }

func (b *Board) Food() (Point, bool) { return b.food, b.hasFood }

func (b *Board) FramesSinceFood() int { return b.framesSinceFood }

func (b *Board) Frame() uint64 { return b.frame }

func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Width: b.width, Height: b.height,
		State:           b.state,
		Direction:       b.direction,
		Snake:           slices.Clone(b.snake),
		Food:            b.food,
		HasFood:         b.hasFood,
		FramesSinceFood: b.framesSinceFood,
		Frame:           b.frame,
	}
}

// Head is the newest segment, false when the snapshot has no body.
func (s Snapshot) Head() (Point, bool) {
	if len(s.Snake) == 0 {
		return Point{}, false
	}
	return s.Snake[len(s.Snake)-1], true
}
