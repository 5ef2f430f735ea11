package zobrist

// BoardView is the read-only position a Table hashes. The piece index mapping
// belongs to the implementation and must be injective over the 12
// piece/color combinations.
type BoardView interface {
	// PieceIndexAt returns the piece index (0..11) on sq, or false if sq is empty.
	PieceIndexAt(sq int) (piece int, ok bool)
	// SecondPlayerToMove reports whether black is to move.
	SecondPlayerToMove() bool
	CastlingAllowed(right CastlingRight) bool
	// EnPassantFile returns the file of the en passant target, if any.
	EnPassantFile() (file int, ok bool)
}

// Hash combines the keys of every feature present in v. The result depends
// only on v; the table and the view are not modified.
//
// Hash panics with *RangeError if v reports a piece index or file outside the
// table.
func (t *Table) Hash(v BoardView) Key {
	var key Key

	// Pieces
	for sq := 0; sq < Squares; sq++ {
		if p, ok := v.PieceIndexAt(sq); ok {
			key ^= t.pieceSquares[checkIndex("piece", p, PieceKinds)][sq]
		}
	}

	if v.SecondPlayerToMove() {
		key ^= t.sideToMove
	}

	for cr := WhiteKingside; cr <= BlackQueenside; cr++ {
		if v.CastlingAllowed(cr) {
			key ^= t.castling[cr]
		}
	}

	if file, ok := v.EnPassantFile(); ok {
		key ^= t.enPassantFiles[checkIndex("en passant file", file, Files)]
	}

	return key
}
