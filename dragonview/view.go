// Package dragonview exposes a dragontoothmg position as a zobrist.BoardView.
package dragonview

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-zobrist/board"
	"chess-zobrist/zobrist"
)

// View is a snapshot of a dragontoothmg.Board taken by New. Later changes to
// the board are not reflected.
type View struct {
	pieces [64]board.Piece
	state  *board.Board // side, castling and en passant parsed from ToFen
}

var _ zobrist.BoardView = (*View)(nil)

// New snapshots b. Placement comes from the per-color bitboards; the rest of
// the state is read back from the board's FEN, since dragontoothmg keeps its
// castling and en passant fields unexported. Only the first four FEN fields
// are read: the move counters are not hashed, and dragontoothmg wraps a
// fullmove number above 65535 to 0.
func New(b *dragontoothmg.Board) (*View, error) {
	fen := b.ToFen()
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	state, err := board.ParseFEN(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("dragonview: reading board state: %w", err)
	}
	return snapshot(b, state)
}

func snapshot(b *dragontoothmg.Board, state *board.Board) (*View, error) {
	if (state.SideToMove() == board.White) != b.Wtomove {
		return nil, fmt.Errorf("dragonview: side to move disagrees with FEN %q", state.ToFEN())
	}

	v := &View{state: state}
	sides := [2]struct {
		color board.Color
		bbs   *dragontoothmg.Bitboards
	}{
		{board.White, &b.White},
		{board.Black, &b.Black},
	}
	for _, side := range sides {
		for _, pb := range []struct {
			pt board.PieceType
			bb uint64
		}{
			{board.PieceTypePawn, side.bbs.Pawns},
			{board.PieceTypeKnight, side.bbs.Knights},
			{board.PieceTypeBishop, side.bbs.Bishops},
			{board.PieceTypeRook, side.bbs.Rooks},
			{board.PieceTypeQueen, side.bbs.Queens},
			{board.PieceTypeKing, side.bbs.Kings},
		} {
			for sq := 0; sq < 64; sq++ {
				if pb.bb&(uint64(1)<<uint(sq)) == 0 {
					continue
				}
				if v.pieces[sq] != board.NoPiece {
					return nil, fmt.Errorf("dragonview: square %v occupied twice", board.Square(sq))
				}
				v.pieces[sq] = board.NewPiece(side.color, pb.pt)
			}
		}
	}
	return v, nil
}

// FromFEN parses fen with dragontoothmg and wraps the result. The FEN is
// validated and normalised to all six fields first because dragontoothmg
// does not report malformed input.
func FromFEN(fen string) (*View, error) {
	nb, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	b := dragontoothmg.ParseFen(nb.ToFEN())
	return snapshot(&b, nb)
}

// PieceIndexAt implements zobrist.BoardView.
func (v *View) PieceIndexAt(sq int) (int, bool) {
	p := v.pieces[sq]
	if p == board.NoPiece {
		return 0, false
	}
	return p.ZobristIndex(), true
}

// SecondPlayerToMove implements zobrist.BoardView.
func (v *View) SecondPlayerToMove() bool { return v.state.SecondPlayerToMove() }

// CastlingAllowed implements zobrist.BoardView.
func (v *View) CastlingAllowed(right zobrist.CastlingRight) bool {
	return v.state.CastlingAllowed(right)
}

// EnPassantFile implements zobrist.BoardView.
func (v *View) EnPassantFile() (int, bool) { return v.state.EnPassantFile() }
