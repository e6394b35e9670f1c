package searcher

import "math"

// Search values are from White's point of view.

// WinningValue marks a position where the player to move is stuck. It
// outweighs any material count.
const WinningValue = math.MaxInt32 - 1

// Infinity bounds the alpha-beta window.
const Infinity = math.MaxInt32
