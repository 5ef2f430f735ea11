package zobrist

// Table dimensions.
const (
	PieceKinds     = 12 // 6 piece types x 2 colors
	Squares        = 64
	CastlingRights = 4
	Files          = 8

	// KeyCount is the number of draws made by Build.
	KeyCount = PieceKinds*Squares + 1 + CastlingRights + Files
)

// CastlingRight names a castling slot in the table.
type CastlingRight int

const (
	WhiteKingside CastlingRight = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Table holds one random key per position feature. It is never modified after
// Build returns, so it can be shared between goroutines without locking.
type Table struct {
	pieceSquares   [PieceKinds][Squares]Key // [piece index][square]
	sideToMove     Key                      // XOR when the second player moves
	castling       [CastlingRights]Key
	enPassantFiles [Files]Key
}

var defaultTable *Table

func init() {
	defaultTable = Build()
}

// Default returns the process-wide table built at package initialisation.
func Default() *Table { return defaultTable }

// Build draws KeyCount keys from a stream seeded with Seed.
func Build() *Table {
	return buildFrom(MustGenerator(Seed))
}

// buildFrom fills the table in draw order: piece squares (piece-major, then
// square a1..h8), side to move, castling rights, en passant files.
func buildFrom(g *Generator) *Table {
	t := &Table{}

	for p := 0; p < PieceKinds; p++ {
		for sq := 0; sq < Squares; sq++ {
			t.pieceSquares[p][sq] = g.Next()
		}
	}

	t.sideToMove = g.Next()

	for cr := 0; cr < CastlingRights; cr++ {
		t.castling[cr] = g.Next()
	}

	for f := 0; f < Files; f++ {
		t.enPassantFiles[f] = g.Next()
	}

	return t
}

// PieceSquare returns the key for piece index piece (0..11) on sq (0..63).
func (t *Table) PieceSquare(piece, sq int) Key {
	return t.pieceSquares[checkIndex("piece", piece, PieceKinds)][checkIndex("square", sq, Squares)]
}

// SideToMove returns the key XORed in when the second player is to move.
func (t *Table) SideToMove() Key { return t.sideToMove }

// Castling returns the key for a castling right.
func (t *Table) Castling(right CastlingRight) Key {
	return t.castling[checkIndex("castling right", right, CastlingRights)]
}

// EnPassantFile returns the key for an en passant file (0 = a, 7 = h).
func (t *Table) EnPassantFile(file int) Key {
	return t.enPassantFiles[checkIndex("en passant file", file, Files)]
}

// Keys returns a copy of every key in draw order.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, KeyCount)
	for p := range t.pieceSquares {
		keys = append(keys, t.pieceSquares[p][:]...)
	}
	keys = append(keys, t.sideToMove)
	keys = append(keys, t.castling[:]...)
	keys = append(keys, t.enPassantFiles[:]...)
	return keys
}
