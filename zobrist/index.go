package zobrist

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RangeError is the panic value raised when a board view reports an index
// outside the table. It signals a bug in the view, not bad user input.
type RangeError struct {
	Feature string
	Index   int
	Limit   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("zobrist: %s index %d out of range [0, %d)", e.Feature, e.Index, e.Limit)
}

// checkIndex returns i as an int, panicking with *RangeError if it is not in [0, limit).
func checkIndex[T constraints.Integer](feature string, i T, limit int) int {
	if i < 0 || uint64(i) >= uint64(limit) {
		panic(&RangeError{Feature: feature, Index: int(i), Limit: limit})
	}
	return int(i)
}
