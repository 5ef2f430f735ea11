// Package gooseview exposes a GooseEngineMG position as a zobrist.BoardView.
package gooseview

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-zobrist/board"
	"chess-zobrist/zobrist"
)

// pieceIndex maps goosemg piece codes to zobrist piece indices; -1 marks
// codes that are not a piece.
var pieceIndex = func() (idx [16]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i, p := range [...]goosemg.Piece{
		goosemg.WhitePawn, goosemg.WhiteKnight, goosemg.WhiteBishop,
		goosemg.WhiteRook, goosemg.WhiteQueen, goosemg.WhiteKing,
		goosemg.BlackPawn, goosemg.BlackKnight, goosemg.BlackBishop,
		goosemg.BlackRook, goosemg.BlackQueen, goosemg.BlackKing,
	} {
		idx[p] = int8(i)
	}
	return idx
}()

// View is a snapshot of a goosemg.Board taken by New.
type View struct {
	pieces [64]int8 // zobrist piece index, -1 = empty
	state  *board.Board
}

var _ zobrist.BoardView = (*View)(nil)

// New snapshots b.
func New(b *goosemg.Board) (*View, error) {
	state, err := board.ParseFEN(b.ToFEN())
	if err != nil {
		return nil, fmt.Errorf("gooseview: reading board state: %w", err)
	}
	v := &View{state: state}
	for sq := 0; sq < 64; sq++ {
		p := b.PieceAt(goosemg.Square(sq))
		if p == goosemg.NoPiece {
			v.pieces[sq] = -1
			continue
		}
		if int(p) >= len(pieceIndex) || pieceIndex[p] < 0 {
			return nil, fmt.Errorf("gooseview: unknown piece code %d on %v", p, board.Square(sq))
		}
		v.pieces[sq] = pieceIndex[p]
	}
	return v, nil
}

// FromFEN parses fen with goosemg and wraps the result.
func FromFEN(fen string) (*View, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("gooseview: %w", err)
	}
	return New(b)
}

// PieceIndexAt implements zobrist.BoardView.
func (v *View) PieceIndexAt(sq int) (int, bool) {
	p := v.pieces[sq]
	return int(p), p >= 0
}

// SecondPlayerToMove implements zobrist.BoardView.
func (v *View) SecondPlayerToMove() bool { return v.state.SecondPlayerToMove() }

// CastlingAllowed implements zobrist.BoardView.
func (v *View) CastlingAllowed(right zobrist.CastlingRight) bool {
	return v.state.CastlingAllowed(right)
}

// EnPassantFile implements zobrist.BoardView.
func (v *View) EnPassantFile() (int, bool) { return v.state.EnPassantFile() }
