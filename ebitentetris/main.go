package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	tetris "github.com/jauhararifin/gotetris"
)

func main() {
	logger := log.New(os.Stderr, "tetris: ", log.LstdFlags)
	game := NewGame(tetris.WithLogger(logger))

	ebiten.SetTPS(60)
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
