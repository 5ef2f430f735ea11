package board

import "chess-zobrist/zobrist"

var _ zobrist.BoardView = (*Board)(nil)

// PieceIndexAt implements zobrist.BoardView.
func (b *Board) PieceIndexAt(sq int) (int, bool) {
	p := b.pieces[sq]
	if p == NoPiece {
		return 0, false
	}
	// Invalid encodings yield -1 and make the hash panic rather than
	// silently folding into another piece.
	return p.ZobristIndex(), true
}

// SecondPlayerToMove implements zobrist.BoardView.
func (b *Board) SecondPlayerToMove() bool { return b.sideToMove == Black }

// CastlingAllowed implements zobrist.BoardView. Slot order is K, Q, k, q,
// matching the CastlingRights bit order.
func (b *Board) CastlingAllowed(right zobrist.CastlingRight) bool {
	return b.castlingRights&(CastlingWhiteK<<uint(right)) != 0
}

// EnPassantFile implements zobrist.BoardView.
func (b *Board) EnPassantFile() (int, bool) {
	sq := b.EnPassantSquare()
	if sq == NoSquare {
		return 0, false
	}
	return sq.File(), true
}

// ComputeZobrist calculates the Zobrist hash for the current board state
// using the default table.
func (b *Board) ComputeZobrist() zobrist.Key {
	return zobrist.Default().Hash(b)
}
