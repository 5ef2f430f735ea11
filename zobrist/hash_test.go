package zobrist_test

import (
	"errors"
	"sync"
	"testing"

	"chess-zobrist/board"
	"chess-zobrist/zobrist"
)

// position is a minimal BoardView for exercising Hash directly.
type position struct {
	occupied [64]bool
	pieces   [64]int
	black    bool
	castling [4]bool
	epFile   int // file + 1, 0 = none
}

func (p *position) PieceIndexAt(sq int) (int, bool) {
	return p.pieces[sq], p.occupied[sq]
}

func (p *position) SecondPlayerToMove() bool { return p.black }

func (p *position) CastlingAllowed(right zobrist.CastlingRight) bool { return p.castling[right] }

func (p *position) EnPassantFile() (int, bool) {
	if p.epFile == 0 {
		return 0, false
	}
	return p.epFile - 1, true
}

func (p *position) put(piece, sq int) *position {
	p.occupied[sq] = true
	p.pieces[sq] = piece
	return p
}

func TestHashEmptyBoardIsZero(t *testing.T) {
	if got := zobrist.Default().Hash(&position{}); got != 0 {
		t.Fatalf("empty position: expected 0, got %#08x", got)
	}
	b, err := board.ParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.ComputeZobrist(); got != 0 {
		t.Fatalf("empty FEN: expected 0, got %#08x", got)
	}
}

type hashTest struct {
	fen  string
	hash zobrist.Key
}

var hashTests = []hashTest{
	//starting position
	{board.FENStartPos, 0x0b24507d},
	//position after e2e4
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", 0x264fb022},
	//same placement, no en passant target
	{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", 0xc1b6f88e},
	//rooks and kings, partial castling rights
	{"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1", 0xee345f8d},
}

func TestHashGolden(t *testing.T) {
	for _, test := range hashTests {
		b, err := board.ParseFEN(test.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", test.fen, err)
		}
		if hash := b.ComputeZobrist(); hash != test.hash {
			t.Errorf("%s\n\texp: %#08x\n\tgot: %#08x", test.fen, test.hash, hash)
		}
	}
}

func TestHashIgnoresMoveCounters(t *testing.T) {
	a, _ := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1")
	b, _ := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b Kq - 37 90")
	if a.ComputeZobrist() != b.ComputeZobrist() {
		t.Fatal("halfmove/fullmove counters changed the hash")
	}
}

func TestHashFeatureSensitivity(t *testing.T) {
	tbl := zobrist.Default()
	base, err := board.ParseFEN("r3k2r/pppp1ppp/8/4p3/8/8/PPPPPPPP/R3K2R w KQkq e6 0 1")
	if err != nil {
		t.Fatal(err)
	}
	baseKey := tbl.Hash(base)

	perturbations := map[string]func(b *board.Board){
		"move piece to empty square": func(b *board.Board) { b.MovePiece(board.NewSquare(0, 1), board.NewSquare(0, 2)) },
		"remove piece":               func(b *board.Board) { b.ClearSquare(board.NewSquare(7, 0)) },
		"change piece kind":          func(b *board.Board) { b.SetPiece(board.NewSquare(0, 0), board.WhiteQueen) },
		"change piece color":         func(b *board.Board) { b.SetPiece(board.NewSquare(0, 0), board.BlackRook) },
		"flip side to move":          func(b *board.Board) { b.SetSideToMove(board.Black) },
		"drop white kingside":        func(b *board.Board) { b.SetCastlingRights(b.CastlingRights() &^ board.CastlingWhiteK) },
		"drop white queenside":       func(b *board.Board) { b.SetCastlingRights(b.CastlingRights() &^ board.CastlingWhiteQ) },
		"drop black kingside":        func(b *board.Board) { b.SetCastlingRights(b.CastlingRights() &^ board.CastlingBlackK) },
		"drop black queenside":       func(b *board.Board) { b.SetCastlingRights(b.CastlingRights() &^ board.CastlingBlackQ) },
		"change en passant file":     func(b *board.Board) { b.SetEnPassantSquare(board.NewSquare(3, 5)) },
		"clear en passant":           func(b *board.Board) { b.SetEnPassantSquare(board.NoSquare) },
	}
	for name, perturb := range perturbations {
		t.Run(name, func(t *testing.T) {
			b, _ := board.ParseFEN(base.ToFEN())
			perturb(b)
			if got := tbl.Hash(b); got == baseKey {
				t.Fatalf("hash unchanged (%#08x) after perturbation", got)
			}
		})
	}
}

func TestHashEnPassantUsesFileOnly(t *testing.T) {
	b := board.NewEmpty()
	b.SetEnPassantSquare(board.NewSquare(4, 2)) // e3
	e3 := b.ComputeZobrist()
	b.SetEnPassantSquare(board.NewSquare(4, 5)) // e6
	if e6 := b.ComputeZobrist(); e6 != e3 {
		t.Fatalf("same file, different rank: %#08x vs %#08x", e3, e6)
	}
	if e3 != zobrist.Default().EnPassantFile(4) {
		t.Fatalf("lone en passant feature should equal its key")
	}
}

func TestHashFeatureIndependence(t *testing.T) {
	tbl := zobrist.Default()

	features := map[string]func(p *position){
		"white knight g1": func(p *position) { p.put(1, 6) },
		"black queen d8":  func(p *position) { p.put(10, 59) },
		"black to move":   func(p *position) { p.black = true },
		"castling Q":      func(p *position) { p.castling[zobrist.WhiteQueenside] = true },
		"castling k":      func(p *position) { p.castling[zobrist.BlackKingside] = true },
		"en passant c":    func(p *position) { p.epFile = 3 },
	}
	for nameA, setA := range features {
		for nameB, setB := range features {
			if nameA == nameB {
				continue
			}
			a, b, both := &position{}, &position{}, &position{}
			setA(a)
			setB(b)
			setA(both)
			setB(both)
			if tbl.Hash(a)^tbl.Hash(b) != tbl.Hash(both) {
				t.Errorf("%s + %s: XOR of single-feature hashes differs from combined hash", nameA, nameB)
			}
		}
	}
}

func TestHashSingleFeatureEqualsKey(t *testing.T) {
	tbl := zobrist.Default()
	for piece := 0; piece < zobrist.PieceKinds; piece++ {
		for sq := 0; sq < zobrist.Squares; sq++ {
			p := (&position{}).put(piece, sq)
			if tbl.Hash(p) != tbl.PieceSquare(piece, sq) {
				t.Fatalf("piece %d square %d: hash does not equal its key", piece, sq)
			}
		}
	}
	if tbl.Hash(&position{black: true}) != tbl.SideToMove() {
		t.Fatal("side to move: hash does not equal its key")
	}
	for cr := zobrist.WhiteKingside; cr <= zobrist.BlackQueenside; cr++ {
		p := &position{}
		p.castling[cr] = true
		if tbl.Hash(p) != tbl.Castling(cr) {
			t.Fatalf("castling %d: hash does not equal its key", cr)
		}
	}
	for f := 0; f < zobrist.Files; f++ {
		if tbl.Hash(&position{epFile: f + 1}) != tbl.EnPassantFile(f) {
			t.Fatalf("en passant %d: hash does not equal its key", f)
		}
	}
}

func TestHashPanicsOnContractViolation(t *testing.T) {
	cases := map[string]*position{
		"piece index 12": (&position{}).put(12, 0),
		"piece index -1": (&position{}).put(-1, 5),
		"file 8":         {epFile: 9},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var re *zobrist.RangeError
				if !ok || !errors.As(err, &re) {
					t.Fatalf("expected *RangeError panic, got %v", r)
				}
			}()
			zobrist.Default().Hash(p)
		})
	}
}

func TestHashInvalidBoardPiecePanics(t *testing.T) {
	b := board.NewEmpty()
	b.SetPiece(board.NewSquare(2, 2), board.Piece(7))
	defer func() {
		if _, ok := recover().(*zobrist.RangeError); !ok {
			t.Fatal("expected *RangeError panic for invalid piece encoding")
		}
	}()
	b.ComputeZobrist()
}

func TestHashConcurrentReaders(t *testing.T) {
	tbl := zobrist.Default()

	fens := []string{
		board.FENStartPos,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"8/8/8/8/8/8/8/8 b - - 0 1",
	}
	boards := make([]*board.Board, len(fens))
	want := make([]zobrist.Key, len(fens))
	for i, fen := range fens {
		b, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		boards[i] = b
		want[i] = tbl.Hash(b)
	}

	const workers = 16
	const rounds = 500
	errs := make(chan string, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			i := w % len(boards)
			for r := 0; r < rounds; r++ {
				if got := tbl.Hash(boards[i]); got != want[i] {
					errs <- fens[i]
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for fen := range errs {
		t.Errorf("concurrent hash differs from single-threaded result for %s", fen)
	}
}
