// Package group specifies the small set of collective primitives the ANSV
// core requires from a message transport, and ships one concrete,
// in-process implementation (NewLocal/RunLocal, with a *Member per rank)
// built from goroutines and channels in the style of dedis/tlc's
// Peer/Broadcast network layer, used by the test suite and by cmd/ansv,
// since no external MPI-like transport is in scope for the core itself.
//
// The core speaks only in terms of Transport; it never creates an
// in-process group directly except at the outermost harness layer.
package group

import (
	"context"
	"fmt"
)

// Transport is the contract a message layer must satisfy for the ANSV core
// to run distributed across it. It is deliberately small: one rank/size
// pair, a barrier, and a single synchronizing exchange primitive that the
// generic collectives in collectives.go (BlockDistribute, AllGatherV,
// GatherV, AllToAllV, ExclusiveScan) are all expressed in terms of.
//
// Go does not allow generic methods, so Transport itself is untyped in its
// payload; the typed collectives are free functions parameterized over the
// payload type, following the same shape as golang.org/x/sync/errgroup's
// free-function helpers rather than a generic interface method set.
type Transport interface {
	// Rank returns this member's rank in [0, Size()).
	Rank() int
	// Size returns the number of members in the group, P.
	Size() int
	// Barrier blocks until every member has called Barrier for this
	// logical step. It is the synchronous transition point between the
	// protocol's states (LOCAL_SWEEP -> EXCHANGE_BOUNDARIES ->
	// RESOLVE_CROSS -> DONE).
	Barrier(ctx context.Context) error
	// Exchange performs one round of collective data movement: every
	// member contributes payload under round, and once every member has
	// done so, every member receives the full rank->payload map for that
	// round. round names the logical operation being driven (e.g.
	// "all_gather_v") and must be issued in the same order by every
	// member, which is what gives the group its total-ordering guarantee.
	Exchange(ctx context.Context, round string, payload any) (map[int]any, error)
}

// Bounds is a half-open contiguous block [Lo, Hi) of a block-distributed
// sequence, owned by exactly one worker.
type Bounds struct {
	Lo, Hi int
}

// Len reports the size of the block.
func (b Bounds) Len() int { return b.Hi - b.Lo }

// BlockBounds computes the balanced contiguous block assignment for a
// sequence of length n across p workers: lo_0 = 0, hi_{p-1} = n, and block
// sizes differing by at most 1, with the first n%p workers getting the
// extra element. Workers beyond what n supports receive empty blocks.
func BlockBounds(n, p int) []Bounds {
	if p <= 0 {
		panic(fmt.Sprintf("group: invalid group size %d", p))
	}
	bounds := make([]Bounds, p)
	base, rem := n/p, n%p
	lo := 0
	for r := 0; r < p; r++ {
		size := base
		if r < rem {
			size++
		}
		bounds[r] = Bounds{Lo: lo, Hi: lo + size}
		lo += size
	}
	return bounds
}
