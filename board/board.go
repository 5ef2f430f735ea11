// Package board holds a plain chess position: piece placement, side to move,
// castling rights and en passant target. It has no move generation; it exists
// to be read by the zobrist package and written by FEN parsing and tooling.
package board

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Valid reports whether p is one of the twelve real pieces.
func (p Piece) Valid() bool {
	t := p.Type()
	return t >= PieceTypePawn && t <= PieceTypeKing && p&^15 == 0
}

// ZobristIndex maps the piece to 0..11: white pawn..king, then black pawn..king.
// It returns -1 for NoPiece and other invalid encodings.
func (p Piece) ZobristIndex() int {
	if !p.Valid() {
		return -1
	}
	return int(p.Type()-PieceTypePawn) + 6*int(p.Color())
}

// NewPiece combines a colorless type with a side to produce a concrete Piece.
func NewPiece(color Color, pt PieceType) Piece {
	if pt < PieceTypePawn || pt > PieceTypeKing {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Square represents a board position (0-63), a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// NewSquare returns the square on file (0 = a) and rank (0 = first rank).
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the column of the square (0 = a).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the row of the square (0 = first rank).
func (sq Square) Rank() int { return int(sq) / 8 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// String returns the algebraic name of the square, or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board represents the chess board state.
type Board struct {
	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [64]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square plus one, so the zero value means no target
	enPassant Square

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move; 0 reads as 1)
	fullmoveNumber int
}

// NewEmpty returns a board with no pieces, White to move, no castling rights
// and no en passant target. The zero Board is equivalent.
func NewEmpty() *Board {
	return &Board{fullmoveNumber: 1}
}

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove changes which side is to move.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// CastlingRights returns the castling rights bitmask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// SetCastlingRights replaces the castling rights bitmask.
func (b *Board) SetCastlingRights(cr CastlingRights) { b.castlingRights = cr & CastlingAll }

// EnPassantSquare returns the en passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.enPassant - 1 }

// SetEnPassantSquare sets the en passant target; pass NoSquare to clear it.
func (b *Board) SetEnPassantSquare(sq Square) {
	if !sq.Valid() {
		sq = NoSquare
	}
	b.enPassant = sq + 1
}

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current fullmove number (starting at 1).
func (b *Board) FullmoveNumber() int {
	if b.fullmoveNumber < 1 {
		return 1
	}
	return b.fullmoveNumber
}

// SetPiece sets a piece on a square, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) { b.pieces[int(sq)] = p }

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { b.pieces[int(sq)] = NoPiece }

// MovePiece moves a piece from one square to another. If a piece exists on 'to', it is captured.
func (b *Board) MovePiece(from, to Square) {
	moving := b.pieces[int(from)]
	b.pieces[int(from)] = NoPiece
	b.pieces[int(to)] = moving
}
