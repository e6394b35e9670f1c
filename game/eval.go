package game

// Evaluate scores a position from White's point of view: higher is better
// for White, lower for Black.
type Evaluate func(b *Board) int

// MaterialBalance is the number of White pieces minus the number of Black pieces.
func MaterialBalance(b *Board) int {
	return b.Count(White) - b.Count(Black)
}
