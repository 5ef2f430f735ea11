package gooseview_test

import (
	"testing"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-zobrist/board"
	"chess-zobrist/gooseview"
	"chess-zobrist/zobrist"
)

func TestViewMatchesNativeBoard(t *testing.T) {
	fens := []string{
		board.FENStartPos,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1",
	}
	tbl := zobrist.Default()
	for _, fen := range fens {
		native, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		v, err := gooseview.FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		if got, want := tbl.Hash(v), tbl.Hash(native); got != want {
			t.Errorf("%s\n\tnative:  %#08x\n\tgoosemg: %#08x", fen, want, got)
		}
	}
}

func TestViewTracksPlacementEdits(t *testing.T) {
	b, err := goosemg.ParseFEN(goosemg.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	before, err := gooseview.New(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// e2 -> e4 without touching side to move or en passant
	b.MovePiece(goosemg.Square(12), goosemg.Square(28))
	after, err := gooseview.New(b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tbl := zobrist.Default()
	pawn := board.WhitePawn.ZobristIndex()
	want := tbl.Hash(before) ^ tbl.PieceSquare(pawn, 12) ^ tbl.PieceSquare(pawn, 28)
	if got := tbl.Hash(after); got != want {
		t.Fatalf("after e2e4: expected %#08x, got %#08x", want, got)
	}
	if _, ok := before.PieceIndexAt(28); ok {
		t.Fatalf("snapshot taken before the edit changed")
	}
}

func TestFromFENRejectsMalformed(t *testing.T) {
	if _, err := gooseview.FromFEN("not a fen"); err == nil {
		t.Fatal("expected error for malformed FEN")
	}
}

func TestViewPieceIndicesMatchNative(t *testing.T) {
	native, err := board.ParseFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	v, err := gooseview.FromFEN(board.FENStartPos)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	seen := make(map[int]bool)
	for sq := 0; sq < 64; sq++ {
		want, wantOK := native.PieceIndexAt(sq)
		got, gotOK := v.PieceIndexAt(sq)
		if got != want && wantOK || gotOK != wantOK {
			t.Fatalf("square %v: expected %d (%v), got %d (%v)", board.Square(sq), want, wantOK, got, gotOK)
		}
		if gotOK {
			seen[got] = true
		}
	}
	if len(seen) != zobrist.PieceKinds {
		t.Fatalf("expected all %d piece kinds on the start position, saw %d", zobrist.PieceKinds, len(seen))
	}
}
