package tetris

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the playfield. Rows are numbered top to bottom, columns left to
// right, and a cell holding ColorNone is empty.
type Board struct {
	width, height int
	tiles         [][]Color
}

func NewBoard() *Board {
	b := &Board{
		width:  BoardWidth,
		height: BoardHeight,
		tiles:  make([][]Color, BoardHeight),
	}
	for y := range b.tiles {
		b.tiles[y] = make([]Color, BoardWidth)
	}
	return b
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Cell returns the color at (x, y), or ColorNone outside the board.
func (b *Board) Cell(x, y int) Color {
	if !b.inside(x, y) {
		return ColorNone
	}
	return b.tiles[y][x]
}

// IsOccupied reports whether a block may not be placed at (x, y). The side
// walls and the floor count as occupied. Rows above the field never are,
// so pieces can spawn and rotate partly outside the top.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.tiles[y][x] != ColorNone
}

// Lock writes the piece into the board. Blocks above the field are
// dropped.
func (b *Board) Lock(p Piece) {
	color := p.Color()
	p.Blocks(func(x, y int) {
		if y >= 0 && b.inside(x, y) {
			b.tiles[y][x] = color
		}
	})
}

// ClearFullLines removes every full row in a single top to bottom pass and
// returns how many were removed. Rows above a removed one shift down and an
// empty row enters at the top.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := 0; y < b.height; y++ {
		if !b.isRowCompleted(y) {
			continue
		}
		cleared++
		for y2 := y; y2 > 0; y2-- {
			copy(b.tiles[y2], b.tiles[y2-1])
		}
		for x := range b.tiles[0] {
			b.tiles[0][x] = ColorNone
		}
	}
	return cleared
}

func (b *Board) isRowCompleted(row int) bool {
	for x := 0; x < b.width; x++ {
		if b.tiles[row][x] == ColorNone {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for y := range rows {
		rows[y] = make([]Color, b.width)
		copy(rows[y], b.tiles[y])
	}
	return rows
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
