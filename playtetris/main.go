package main

import (
	"fmt"
	"time"

	"github.com/JoelOtter/termloop"
	tetris "github.com/jauhararifin/gotetris"
)

func main() {
	game := termloop.NewGame()
	game.SetEndKey(termloop.KeyEsc)
	game.Screen().SetFps(60)
	level := termloop.NewBaseLevel(termloop.Cell{})
	boardEntity := NewBoardPlayer(0, 0)
	level.AddEntity(boardEntity)
	game.Screen().SetLevel(level)
	game.Start()
}

// 8-color terminals have no orange, L pieces share yellow with O pieces.
var cellColors = [...]termloop.Attr{
	tetris.ColorNone:    termloop.ColorBlack,
	tetris.ColorCyan:    termloop.ColorCyan,
	tetris.ColorYellow:  termloop.ColorYellow,
	tetris.ColorMagenta: termloop.ColorMagenta,
	tetris.ColorBlue:    termloop.ColorBlue,
	tetris.ColorOrange:  termloop.ColorYellow,
	tetris.ColorGreen:   termloop.ColorGreen,
	tetris.ColorRed:     termloop.ColorRed,
}

func cellColor(c tetris.Color) termloop.Attr {
	if c < 0 || int(c) >= len(cellColors) {
		return termloop.ColorBlack
	}
	return cellColors[c]
}

type boardPlayer struct {
	game                *tetris.Game
	bindings            *bindings
	pending             []tetris.Action
	x, y, width, height int

	scoreText  *termloop.Text
	statusText *termloop.Text
}

func NewBoardPlayer(x, y int, options ...tetris.GameOption) *boardPlayer {
	return &boardPlayer{
		game:     tetris.NewGame(options...),
		bindings: defaultBindings(),
		width:    tetris.BoardWidth,
		height:   tetris.BoardHeight,
		x:        x,
		y:        y,

		scoreText:  termloop.NewText(x+tetris.BoardWidth+3, y+8, "0", termloop.ColorWhite, termloop.ColorDefault),
		statusText: termloop.NewText(x+2, y+tetris.BoardHeight/2, "", termloop.ColorWhite, termloop.ColorDefault),
	}
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}
	if action, ok := b.bindings.lookup(ev.Key, ev.Ch); ok {
		b.pending = append(b.pending, action)
	}
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	dt := time.Duration(s.TimeDelta() * float64(time.Second))
	b.game.Step(dt, b.pending...)
	b.pending = b.pending[:0]

	border := &termloop.Cell{
		Fg: termloop.ColorWhite,
		Bg: termloop.ColorBlack,
		Ch: '+',
	}
	for i := 0; i < b.width+2; i++ {
		s.RenderCell(b.x+i, b.y, border)
		s.RenderCell(b.x+i, b.y+b.height+1, border)
	}
	for i := 0; i < b.height+2; i++ {
		s.RenderCell(b.x, b.y+i, border)
		s.RenderCell(b.x+b.width+1, b.y+i, border)
	}

	for i := 0; i < 6; i++ {
		s.RenderCell(b.x+b.width+3+i, b.y, border)
		s.RenderCell(b.x+b.width+3+i, b.y+5, border)
		s.RenderCell(b.x+b.width+3, b.y+i, border)
		s.RenderCell(b.x+b.width+8, b.y+i, border)
	}

	state := b.game.State()

	b.scoreText.SetText(fmt.Sprintf("Score: %d", state.Score))
	b.scoreText.Draw(s)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.RenderCell(b.x+b.width+4+x, b.y+1+y, &termloop.Cell{
				Fg: termloop.ColorWhite,
				Bg: termloop.ColorBlack,
			})
		}
	}
	next := state.Next
	next.X, next.Y = 0, 0
	next.Blocks(func(x, y int) {
		s.RenderCell(b.x+b.width+4+x, b.y+1+y, &termloop.Cell{
			Fg: termloop.ColorWhite,
			Bg: cellColor(next.Color()),
			Ch: ' ',
		})
	})

	tiles := b.game.Render()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := &termloop.Cell{
				Fg: termloop.ColorWhite,
				Bg: termloop.ColorBlack,
			}
			if tiles[y][x] != tetris.ColorNone {
				cell.Bg = cellColor(tiles[y][x])
				cell.Ch = ' '
			}
			s.RenderCell(b.x+1+x, b.y+1+y, cell)
		}
	}

	switch state.Status {
	case tetris.StatusPaused:
		b.statusText.SetText("Paused")
	case tetris.StatusGameOver:
		b.statusText.SetText("Game Over")
	default:
		b.statusText.SetText("")
	}
	b.statusText.Draw(s)
}
