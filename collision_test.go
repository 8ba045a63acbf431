package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollides(t *testing.T) {
	t.Run("floor", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindO)

		p.Y = 17
		assert.False(t, Collides(p, b, 0, 1))
		p.Y = 18
		assert.True(t, Collides(p, b, 0, 1))
	})

	t.Run("walls", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindI)

		p.X = 0
		assert.True(t, Collides(p, b, -1, 0))
		p.X = BoardWidth - 4
		assert.True(t, Collides(p, b, 1, 0))
		assert.False(t, Collides(p, b, -1, 0))
	})

	t.Run("locked blocks", func(t *testing.T) {
		b := NewBoard()
		b.tiles[2][5] = ColorRed
		p := NewPiece(KindO)

		assert.True(t, Collides(p, b, 0, 1))
		assert.False(t, Collides(p, b, -1, 0))
	})

	t.Run("above the field only checks walls", func(t *testing.T) {
		b := NewBoard()
		fillRow(b, 0, ColorRed)
		p := NewPiece(KindI)
		p.Y = -3

		assert.False(t, Collides(p, b, 0, 0))
		assert.True(t, Collides(p, b, 0, 3))
		p.X = 0
		assert.True(t, Collides(p, b, -1, 0))
	})

	t.Run("down matches manual check", func(t *testing.T) {
		b := NewBoard()
		b.tiles[12][3] = ColorBlue
		b.tiles[19][7] = ColorBlue

		for k := Kind(0); k < KindCount; k++ {
			for y := -2; y < BoardHeight; y++ {
				for x := -1; x < BoardWidth; x++ {
					p := NewPiece(k)
					p.X, p.Y = x, y

					want := false
					p.Blocks(func(bx, by int) {
						ny := by + 1
						if bx < 0 || bx >= BoardWidth || ny >= BoardHeight || (ny >= 0 && b.tiles[ny][bx] != ColorNone) {
							want = true
						}
					})
					assert.Equal(t, want, Collides(p, b, 0, 1), "%s at (%d,%d)", k, x, y)
				}
			}
		}
	})
}

func TestTryMove(t *testing.T) {
	t.Run("O falls to the floor", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindO)
		require.Equal(t, 4, p.X)

		for i := 0; i < 18; i++ {
			require.True(t, TryMove(&p, b, 0, 1), "move %d", i)
		}
		assert.Equal(t, 18, p.Y)

		assert.False(t, TryMove(&p, b, 0, 1))
		assert.Equal(t, 18, p.Y)
		assert.Equal(t, 4, p.X)
	})

	t.Run("sideways", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindT)

		assert.True(t, TryMove(&p, b, -1, 0))
		assert.Equal(t, 3, p.X)
		assert.True(t, TryMove(&p, b, 1, 0))
		assert.Equal(t, 4, p.X)
	})

	t.Run("blocked leaves piece unchanged", func(t *testing.T) {
		b := NewBoard()
		b.tiles[0][3] = ColorRed
		p := NewPiece(KindO)

		assert.False(t, TryMove(&p, b, -1, 0))
		assert.Equal(t, 4, p.X)
		assert.Equal(t, 0, p.Y)
	})
}

func TestRotate(t *testing.T) {
	t.Run("four rotations on an empty board", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindJ)
		p.Y = 5
		original := p.Mask.Clone()

		for i := 0; i < 2; i++ {
			require.True(t, Rotate(&p, b))
		}
		assert.NotEqual(t, original, p.Mask)
		for i := 0; i < 2; i++ {
			require.True(t, Rotate(&p, b))
		}
		assert.Equal(t, original, p.Mask)
	})

	t.Run("rejected at the floor", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindI)
		p.Y = BoardHeight - 1

		assert.False(t, Rotate(&p, b))
		assert.Equal(t, KindI.Mask(), p.Mask)
	})

	t.Run("rejected at the wall without kick", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindI)
		p.Y = 5
		require.True(t, Rotate(&p, b))
		for TryMove(&p, b, 1, 0) {
		}
		require.Equal(t, BoardWidth-1, p.X)
		vertical := p.Mask.Clone()

		assert.False(t, Rotate(&p, b))
		assert.Equal(t, vertical, p.Mask)
		assert.Equal(t, BoardWidth-1, p.X)
	})

	t.Run("rejected by locked blocks", func(t *testing.T) {
		b := NewBoard()
		p := NewPiece(KindT)
		p.Y = 5
		b.tiles[7][5] = ColorGreen

		assert.False(t, Rotate(&p, b))
		assert.Equal(t, KindT.Mask(), p.Mask)
	})
}
