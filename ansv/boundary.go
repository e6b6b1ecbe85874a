package ansv

import (
	"context"
	"fmt"

	"github.com/dedis/ansv/group"
	"github.com/dedis/ansv/internal/ordered"
)

// boundaryEntry is the wire representation of one residual-stack element,
// carrying (Worker, Local, Value) so the resolver can compare values
// without re-fetching, and can recover which worker (and, untranslated,
// which local index within it) an entry came from before collapsing to a
// single global index. Global is carried alongside Local/Worker rather
// than derived at use time, since the sweep already knows it and carrying
// it avoids every consumer needing every worker's block bounds just to
// read a boundary entry.
type boundaryEntry[T ordered.Value] struct {
	Worker int
	Local  int
	Global int
	Value  T
}

func toBoundaryEntries[T ordered.Value](worker int, lo int, residual []residualEntry[T]) []boundaryEntry[T] {
	out := make([]boundaryEntry[T], len(residual))
	for i, e := range residual {
		out[i] = boundaryEntry[T]{Worker: worker, Local: e.Global - lo, Global: e.Global, Value: e.Value}
	}
	return out
}

// exchangeBoundaries implements the boundary-stack protocol: every member
// all-gathers its left and right residual stacks, in that fixed order, so
// every member observes the identical (T_left(0..P-1), T_right(0..P-1))
// sequence once both collectives complete. A Barrier follows to mark the
// EXCHANGE_BOUNDARIES -> RESOLVE_CROSS transition explicitly, even though
// the second AllGatherV already implies it.
func exchangeBoundaries[T ordered.Value](ctx context.Context, t group.Transport, leftResidual, rightResidual []boundaryEntry[T]) (allLeft, allRight [][]boundaryEntry[T], err error) {
	allLeft, err = group.AllGatherV(ctx, t, leftResidual)
	if err != nil {
		return nil, nil, fmt.Errorf("ansv: exchange left residuals: %w", err)
	}
	allRight, err = group.AllGatherV(ctx, t, rightResidual)
	if err != nil {
		return nil, nil, fmt.Errorf("ansv: exchange right residuals: %w", err)
	}
	if err := t.Barrier(ctx); err != nil {
		return nil, nil, fmt.Errorf("ansv: boundary exchange barrier: %w", err)
	}

	for _, stack := range allLeft {
		if err := checkInvariant(isStrictlyIncreasing(stack),
			fmt.Errorf("%w: left residual stack is not monotone", ErrInvariantViolation)); err != nil {
			return nil, nil, err
		}
	}
	for _, stack := range allRight {
		if err := checkInvariant(isStrictlyIncreasing(stack),
			fmt.Errorf("%w: right residual stack is not monotone", ErrInvariantViolation)); err != nil {
			return nil, nil, err
		}
	}
	return allLeft, allRight, nil
}

// isStrictlyIncreasing reports whether stack's values rise strictly from
// bottom to top, as the monotone-stack sweep guarantees; sort.SliceIsSorted
// would accept equal neighbors, which the sweep's >= pop condition never
// produces but which this check should not silently tolerate either.
func isStrictlyIncreasing[T ordered.Value](stack []boundaryEntry[T]) bool {
	for i := 1; i < len(stack); i++ {
		if !(stack[i-1].Value < stack[i].Value) {
			return false
		}
	}
	return true
}
