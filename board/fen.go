package board

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENError reports which FEN field could not be parsed.
type FENError struct {
	Field  string
	Reason string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("invalid FEN: %s: %s", e.Field, e.Reason)
}

func fenErr(field, format string, args ...any) error {
	return &FENError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

const pieceChars = " PNBRQK  pnbrqk"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	if i := strings.IndexRune(pieceChars, ch); i > 0 {
		return Piece(i)
	}
	return NoPiece
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) byte {
	if !p.Valid() {
		return '?'
	}
	return pieceChars[p]
}

// ParseFEN parses a FEN string and returns a new Board set up to that position.
// The halfmove clock and fullmove number are optional.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenErr("fields", "expected at least 4, got %d", len(fields))
	}

	board := NewEmpty()

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenErr("placement", "expected 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, fenErr("placement", "empty rank %d", 8-i)
		}
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fenErr("placement", "unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenErr("placement", "too many squares in rank %d", rank+1)
			}
			board.pieces[NewSquare(file, rank)] = piece
			file++
		}
		if file != 8 {
			return nil, fenErr("placement", "rank %d does not have 8 columns", rank+1)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		board.sideToMove = White
	case "b":
		board.sideToMove = Black
	default:
		return nil, fenErr("side to move", "must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				board.castlingRights |= CastlingWhiteK
			case 'Q':
				board.castlingRights |= CastlingWhiteQ
			case 'k':
				board.castlingRights |= CastlingBlackK
			case 'q':
				board.castlingRights |= CastlingBlackQ
			default:
				return nil, fenErr("castling", "invalid character %q", ch)
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenErr("en passant", "%v", err)
		}
		board.enPassant = sq + 1
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return nil, fenErr("halfmove clock", "not a non-negative number: %q", fields[4])
		}
		board.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return nil, fenErr("fullmove number", "not a positive number: %q", fields[5])
		}
		board.fullmoveNumber = fullmove
	}

	return board, nil
}

// ParseSquare parses algebraic notation (e.g. "e3") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// ToFEN produces the FEN string representation of the board's current state.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			p := b.pieces[NewSquare(file, rank)]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if b.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if b.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if b.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if b.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(b.EnPassantSquare().String())
	sb.WriteByte(' ')

	// 5. Halfmove clock
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')

	// 6. Fullmove number
	sb.WriteString(strconv.Itoa(b.FullmoveNumber()))
	return sb.String()
}
