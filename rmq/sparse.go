package rmq

import (
	"fmt"
	"math/bits"

	"github.com/dedis/ansv/internal/ordered"
)

// Oracle answers minimum-index queries over a fixed sequence in O(1) after
// an O(n log n) preprocessing pass. The zero value is not usable; build one
// with New.
type Oracle[T ordered.Value] struct {
	s   []T   // the sequence the table was built over, retained for ties
	log []int // log[i] = floor(log2(i)), 1-indexed lookup table
	tbl [][]int
}

// New builds a sparse-table oracle over s. s is retained by reference;
// mutating it after New invalidates the oracle.
func New[T ordered.Value](s []T) *Oracle[T] {
	n := len(s)
	o := &Oracle[T]{s: s}
	if n == 0 {
		return o
	}

	o.log = make([]int, n+1)
	for i := 2; i <= n; i++ {
		o.log[i] = o.log[i/2] + 1
	}

	k := o.log[n] + 1
	o.tbl = make([][]int, k)
	o.tbl[0] = make([]int, n)
	for i := range o.tbl[0] {
		o.tbl[0][i] = i
	}
	for j := 1; j < k; j++ {
		width := 1 << j
		half := width / 2
		row := make([]int, n-width+1)
		for i := range row {
			left, right := o.tbl[j-1][i], o.tbl[j-1][i+half]
			row[i] = o.better(left, right)
		}
		o.tbl[j] = row
	}
	return o
}

// better returns whichever of indices i, j holds the smaller value,
// breaking ties toward the smaller index.
func (o *Oracle[T]) better(i, j int) int {
	switch {
	case o.s[j] < o.s[i]:
		return j
	default:
		return i
	}
}

// QueryIndex returns the index of a minimum value in s[a:b). Querying an
// empty range is a programming error and panics, per the oracle's contract.
func (o *Oracle[T]) QueryIndex(a, b int) int {
	if a >= b || a < 0 || b > len(o.s) {
		panic(fmt.Sprintf("rmq: invalid range [%d, %d) over length %d", a, b, len(o.s)))
	}
	width := b - a
	j := bits.Len(uint(width)) - 1
	left := o.tbl[j][a]
	right := o.tbl[j][b-(1<<j)]
	return o.better(left, right)
}

// Query returns a minimum value in s[a:b) and its index.
func (o *Oracle[T]) Query(a, b int) (value T, index int) {
	index = o.QueryIndex(a, b)
	return o.s[index], index
}
