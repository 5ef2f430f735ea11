package main

import (
	"fmt"
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-zobrist/gooseview"
	"chess-zobrist/zobrist"
)

// collision is a pair of distinct positions sharing a key.
type collision struct {
	key    zobrist.Key
	first  string
	second string
}

// sweep hashes every node of a move tree and records key collisions between
// positions that differ in a hashed feature.
type sweep struct {
	table      *zobrist.Table
	owners     map[zobrist.Key]string // first position seen with each key
	positions  map[string]struct{}
	nodes      uint64
	collisions []collision
}

func newSweep(table *zobrist.Table) *sweep {
	return &sweep{
		table:     table,
		owners:    make(map[zobrist.Key]string),
		positions: make(map[string]struct{}),
	}
}

// positionID strips the move counters, which the key does not cover.
func positionID(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func (s *sweep) visit(b *goosemg.Board) error {
	s.nodes++
	id := positionID(b.ToFEN())
	if _, dup := s.positions[id]; dup {
		return nil // transposition
	}
	s.positions[id] = struct{}{}

	v, err := gooseview.New(b)
	if err != nil {
		return err
	}
	key := s.table.Hash(v)
	if prev, ok := s.owners[key]; ok {
		s.collisions = append(s.collisions, collision{key: key, first: prev, second: id})
		return nil
	}
	s.owners[key] = id
	return nil
}

// walk visits b and every position reachable within depth plies.
func (s *sweep) walk(b *goosemg.Board, depth int) error {
	if err := s.visit(b); err != nil {
		return err
	}
	if depth == 0 {
		return nil
	}
	for _, m := range b.GenerateMoves() {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		err := s.walk(b, depth-1)
		b.UnmakeMove(m, st)
		if err != nil {
			return fmt.Errorf("after %v: %w", m, err)
		}
	}
	return nil
}

// distinct returns the number of distinct positions seen.
func (s *sweep) distinct() int { return len(s.positions) }

// expectedCollisions is the birthday estimate for n positions over 32-bit keys.
func expectedCollisions(n int) float64 {
	f := float64(n)
	return f * (f - 1) / 2 / float64(uint64(1)<<32)
}
