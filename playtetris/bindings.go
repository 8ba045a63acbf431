package main

import (
	"github.com/JoelOtter/termloop"
	tetris "github.com/jauhararifin/gotetris"
	"github.com/kamstrup/intmap"
)

// bindings maps special keys and printable characters to game actions.
// termloop reports printable characters with a zero Key and the rune in Ch.
type bindings struct {
	keys  *intmap.Map[termloop.Key, tetris.Action]
	chars *intmap.Map[rune, tetris.Action]
}

func defaultBindings() *bindings {
	b := &bindings{
		keys:  intmap.New[termloop.Key, tetris.Action](8),
		chars: intmap.New[rune, tetris.Action](4),
	}
	b.keys.Put(termloop.KeyArrowLeft, tetris.ActionLeft)
	b.keys.Put(termloop.KeyArrowRight, tetris.ActionRight)
	b.keys.Put(termloop.KeyArrowDown, tetris.ActionDown)
	b.keys.Put(termloop.KeyArrowUp, tetris.ActionRotate)
	b.chars.Put('p', tetris.ActionPause)
	b.chars.Put('P', tetris.ActionPause)
	return b
}

func (b *bindings) lookup(key termloop.Key, ch rune) (tetris.Action, bool) {
	if ch != 0 {
		return b.chars.Get(ch)
	}
	return b.keys.Get(key)
}
