package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	tetris "github.com/jauhararifin/gotetris"
	"github.com/kamstrup/intmap"
	"golang.org/x/image/font/basicfont"
)

const (
	CellSize     = 30
	ScreenWidth  = 500
	ScreenHeight = 700

	offsetX = 50
	offsetY = 50
)

var (
	borderColor  = color.RGBA{128, 128, 128, 255}
	overlayColor = color.RGBA{0, 0, 0, 180}
)

type Game struct {
	tetris   *tetris.Game
	bindings *intmap.Map[ebiten.Key, tetris.Action]

	keys    []ebiten.Key
	actions []tetris.Action
}

func NewGame(options ...tetris.GameOption) *Game {
	return &Game{
		tetris:   tetris.NewGame(options...),
		bindings: defaultBindings(),
	}
}

func defaultBindings() *intmap.Map[ebiten.Key, tetris.Action] {
	bindings := intmap.New[ebiten.Key, tetris.Action](8)
	bindings.Put(ebiten.KeyArrowLeft, tetris.ActionLeft)
	bindings.Put(ebiten.KeyArrowRight, tetris.ActionRight)
	bindings.Put(ebiten.KeyArrowDown, tetris.ActionDown)
	bindings.Put(ebiten.KeyArrowUp, tetris.ActionRotate)
	bindings.Put(ebiten.KeyP, tetris.ActionPause)
	return bindings
}

// translate maps the keys pressed this frame to actions, keeping their
// order and dropping unbound keys.
func (g *Game) translate(keys []ebiten.Key) []tetris.Action {
	g.actions = g.actions[:0]
	for _, key := range keys {
		if action, ok := g.bindings.Get(key); ok {
			g.actions = append(g.actions, action)
		}
	}
	return g.actions
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	dt := time.Second / time.Duration(ebiten.TPS())
	g.tetris.Step(dt, g.translate(g.keys)...)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	vector.StrokeRect(screen, offsetX-2, offsetY-2, tetris.BoardWidth*CellSize+4, tetris.BoardHeight*CellSize+4, 2, borderColor, false)

	tiles := g.tetris.Render()
	for y := range tiles {
		for x, c := range tiles[y] {
			if c == tetris.ColorNone {
				continue
			}
			drawCell(screen, offsetX+x*CellSize, offsetY+y*CellSize, c)
		}
	}

	state := g.tetris.State()
	textX := offsetX + tetris.BoardWidth*CellSize + 20

	text.Draw(screen, "SCORE", basicfont.Face7x13, textX, offsetY+10, color.White)
	text.Draw(screen, fmt.Sprintf("%d", state.Score), basicfont.Face7x13, textX, offsetY+30, color.White)

	text.Draw(screen, "NEXT", basicfont.Face7x13, textX, offsetY+70, color.White)
	next := state.Next
	next.X, next.Y = 0, 0
	next.Blocks(func(x, y int) {
		drawCell(screen, textX+x*CellSize/2, offsetY+85+y*CellSize/2, next.Color(), CellSize/2)
	})

	var overlay string
	switch state.Status {
	case tetris.StatusPaused:
		overlay = "PAUSED"
	case tetris.StatusGameOver:
		overlay = "GAME OVER"
	}
	if overlay != "" {
		midY := float32(offsetY + tetris.BoardHeight*CellSize/2)
		vector.DrawFilledRect(screen, offsetX, midY-20, tetris.BoardWidth*CellSize, 40, overlayColor, false)
		text.Draw(screen, overlay, basicfont.Face7x13, offsetX+20, int(midY)+4, color.White)
	}
}

func drawCell(screen *ebiten.Image, x, y int, c tetris.Color, size ...int) {
	s := float32(CellSize)
	if len(size) > 0 {
		s = float32(size[0])
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), s, s, c.ToRGBA(), false)
	vector.StrokeRect(screen, float32(x), float32(y), s, s, 1, color.Black, false)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
