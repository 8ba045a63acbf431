package tetris

// Collides reports whether p shifted by (dx, dy) would leave the field
// through a wall or the floor, or overlap a locked block.
func Collides(p Piece, b *Board, dx, dy int) bool {
	collides := false
	p.Blocks(func(x, y int) {
		if b.IsOccupied(x+dx, y+dy) {
			collides = true
		}
	})
	return collides
}

// TryMove shifts p by (dx, dy) unless that collides.
func TryMove(p *Piece, b *Board, dx, dy int) bool {
	if Collides(*p, b, dx, dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// Rotate turns p clockwise in place. A rotation that collides is rejected
// and p keeps its mask; no shifted positions are tried.
func Rotate(p *Piece, b *Board) bool {
	initialMask := p.Mask
	p.Mask = RotateClockwise(p.Mask)
	if Collides(*p, b, 0, 0) {
		p.Mask = initialMask
		return false
	}
	return true
}
