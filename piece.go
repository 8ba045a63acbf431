package tetris

import "image/color"

type Color int

const (
	ColorNone Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorBlue
	ColorOrange
	ColorGreen
	ColorRed
)

var palette = [...]color.RGBA{
	ColorNone:    {0, 0, 0, 255},
	ColorCyan:    {0, 255, 255, 255},
	ColorYellow:  {255, 255, 0, 255},
	ColorMagenta: {255, 0, 255, 255},
	ColorBlue:    {0, 0, 255, 255},
	ColorOrange:  {255, 165, 0, 255},
	ColorGreen:   {0, 255, 0, 255},
	ColorRed:     {255, 0, 0, 255},
}

func (c Color) ToRGBA() color.RGBA {
	if c < 0 || int(c) >= len(palette) {
		return palette[ColorNone]
	}
	return palette[c]
}

type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

type tetromino struct {
	name  string
	mask  Mask
	color Color
}

var tetrominoes = [KindCount]tetromino{
	KindI: {"I", Mask{{true, true, true, true}}, ColorCyan},
	KindO: {"O", Mask{{true, true}, {true, true}}, ColorYellow},
	KindT: {"T", Mask{{true, true, true}, {false, true, false}}, ColorMagenta},
	KindJ: {"J", Mask{{true, true, true}, {true, false, false}}, ColorBlue},
	KindL: {"L", Mask{{true, true, true}, {false, false, true}}, ColorOrange},
	KindS: {"S", Mask{{false, true, true}, {true, true, false}}, ColorGreen},
	KindZ: {"Z", Mask{{true, true, false}, {false, true, true}}, ColorRed},
}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return "?"
	}
	return tetrominoes[k].name
}

func (k Kind) Color() Color {
	return tetrominoes[k].color
}

// Mask returns a fresh copy of the spawn orientation of k.
func (k Kind) Mask() Mask {
	return tetrominoes[k].mask.Clone()
}

// Mask is a rectangular grid of blocks indexed as mask[row][column].
type Mask [][]bool

func (m Mask) Height() int {
	return len(m)
}

func (m Mask) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m Mask) Clone() Mask {
	clone := make(Mask, len(m))
	for i := range m {
		clone[i] = make([]bool, len(m[i]))
		copy(clone[i], m[i])
	}
	return clone
}

// RotateClockwise returns m turned 90 degrees clockwise. A mask of h rows
// and w columns becomes w rows and h columns, and the block at (row r,
// column c) moves to (row c, column h-1-r). The input is left untouched.
func RotateClockwise(m Mask) Mask {
	h, w := m.Height(), m.Width()
	rotated := make(Mask, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			rotated[c][h-1-r] = m[r][c]
		}
	}

	return rotated
}

type Piece struct {
	Kind Kind
	Mask Mask
	X, Y int
}

// NewPiece places kind horizontally centered on the top row. It does not
// check the board, callers decide what an overlapping spawn means.
func NewPiece(kind Kind) Piece {
	mask := kind.Mask()
	return Piece{
		Kind: kind,
		Mask: mask,
		X:    BoardWidth/2 - mask.Width()/2,
		Y:    0,
	}
}

func Spawn(getter TetrominoGetter) Piece {
	return NewPiece(getter.Next())
}

func (p Piece) Color() Color {
	return p.Kind.Color()
}

func (p Piece) Clone() Piece {
	p.Mask = p.Mask.Clone()
	return p
}

// Blocks calls fn with the board coordinates of every block of the piece.
func (p Piece) Blocks(fn func(x, y int)) {
	for my, row := range p.Mask {
		for mx, set := range row {
			if set {
				fn(p.X+mx, p.Y+my)
			}
		}
	}
}
