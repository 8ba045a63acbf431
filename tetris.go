package tetris

import (
	"io"
	"log"
	"time"
)

const (
	FallInterval  = 500 * time.Millisecond
	PointsPerLine = 100
)

type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionDown
	ActionRotate
	ActionPause
)

type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	}
	return "unknown"
}

type CompleteHandler interface {
	OnCompleted(rows int)
}

type CompleteHandlerFunc func(rows int)

func (f CompleteHandlerFunc) OnCompleted(rows int) {
	f(rows)
}

// State is a snapshot of a game, safe to keep across frames.
type State struct {
	Rows          [][]Color
	Current, Next Piece
	Score         int
	Status        Status
}

type Game struct {
	tetrominoGetter TetrominoGetter
	completeHandler CompleteHandler
	logger          *log.Logger

	board         *Board
	current, next Piece
	score         int
	status        Status
	fallTimer     time.Duration

	renderFrame [][]Color
}

type GameOption func(*Game)

func WithGetter(tetrominoGetter TetrominoGetter) GameOption {
	return func(game *Game) {
		game.tetrominoGetter = tetrominoGetter
	}
}

func WithCompleteHandler(handler CompleteHandler) GameOption {
	return func(game *Game) {
		game.completeHandler = handler
	}
}

func WithLogger(logger *log.Logger) GameOption {
	return func(game *Game) {
		game.logger = logger
	}
}

func NewGame(options ...GameOption) *Game {
	game := &Game{
		tetrominoGetter: NewRandomGetter(time.Now().UnixNano()),
		logger:          log.New(io.Discard, "", 0),
		board:           NewBoard(),
		status:          StatusRunning,
	}
	for _, opt := range options {
		opt(game)
	}

	game.current = Spawn(game.tetrominoGetter)
	game.next = Spawn(game.tetrominoGetter)

	game.renderFrame = make([][]Color, game.board.Height())
	for y := range game.renderFrame {
		game.renderFrame[y] = make([]Color, game.board.Width())
	}

	return game
}

// Step advances the game by one frame: dt feeds the fall timer, actions
// are applied in order, then gravity runs if the timer is due.
func (g *Game) Step(dt time.Duration, actions ...Action) {
	if g.status == StatusRunning {
		g.fallTimer += dt
	}

	for _, action := range actions {
		g.Apply(action)
	}

	if g.status == StatusRunning && g.fallTimer >= FallInterval {
		g.fallTimer = 0
		g.applyGravity()
	}
}

func (g *Game) Apply(action Action) {
	if g.status == StatusGameOver {
		return
	}

	if action == ActionPause {
		g.togglePause()
		return
	}

	if g.status != StatusRunning {
		return
	}

	switch action {
	case ActionLeft:
		TryMove(&g.current, g.board, -1, 0)
	case ActionRight:
		TryMove(&g.current, g.board, 1, 0)
	case ActionDown:
		TryMove(&g.current, g.board, 0, 1)
	case ActionRotate:
		Rotate(&g.current, g.board)
	}
}

func (g *Game) togglePause() {
	if g.status == StatusPaused {
		g.status = StatusRunning
	} else {
		g.status = StatusPaused
	}
	g.logger.Printf("game %s\n", g.status)
}

func (g *Game) applyGravity() {
	if TryMove(&g.current, g.board, 0, 1) {
		return
	}

	g.board.Lock(g.current)
	rows := g.board.ClearFullLines()
	if rows > 0 {
		g.score += rows * PointsPerLine
		g.logger.Printf("cleared %d rows, score %d\n", rows, g.score)
	}
	if g.completeHandler != nil {
		g.completeHandler.OnCompleted(rows)
	}

	g.setupNextTetromino()
	if Collides(g.current, g.board, 0, 0) {
		g.status = StatusGameOver
		g.logger.Printf("game over: %s blocked at spawn, final score %d\n", g.current.Kind, g.score)
	}
}

func (g *Game) setupNextTetromino() {
	g.current = g.next
	g.next = Spawn(g.tetrominoGetter)
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Current() Piece {
	return g.current.Clone()
}

func (g *Game) Next() Piece {
	return g.next.Clone()
}

func (g *Game) State() State {
	return State{
		Rows:    g.board.Rows(),
		Current: g.current.Clone(),
		Next:    g.next.Clone(),
		Score:   g.score,
		Status:  g.status,
	}
}

// Render returns the board with the current piece drawn over it. The
// returned grid is reused by the next call.
func (g *Game) Render() [][]Color {
	for y := range g.renderFrame {
		for x := range g.renderFrame[y] {
			g.renderFrame[y][x] = g.board.Cell(x, y)
		}
	}

	color := g.current.Color()
	g.current.Blocks(func(x, y int) {
		if x >= 0 && x < g.board.Width() && y >= 0 && y < g.board.Height() {
			g.renderFrame[y][x] = color
		}
	})

	return g.renderFrame
}
