package ansv

import (
	"context"
	"fmt"

	"github.com/dedis/ansv/group"
	"github.com/dedis/ansv/internal/ordered"
	"github.com/rs/zerolog"
)

// Logger receives one event per protocol state transition that Parallel
// makes (ansvdebug or not); it defaults to a no-op logger, matching the
// package-level configuration style dist/minnet uses for optional knobs
// (e.g. minnet.MaxSleep). Set it once, before launching any Parallel call,
// from the embedding application; cmd/ansv wires this to a console writer.
var Logger = zerolog.Nop()

// Parallel computes ANSV across a group.Transport: local is this member's
// already-distributed block (e.g. the output of group.BlockDistribute),
// and lo is that block's global starting offset. l and r are local[i]'s
// global NSV answers (sentinel-encoded as in Sequential); every member
// must call Parallel, and every member observes the same result for its
// own block regardless of P (the partition-invariance property).
func Parallel[T ordered.Value](ctx context.Context, t group.Transport, local []T, lo int) (l, r []int, err error) {
	if lo < 0 {
		return nil, nil, fmt.Errorf("%w: negative global offset %d", ErrInconsistentBlocks, lo)
	}
	rank, size := t.Rank(), t.Size()
	log := Logger.With().Int("rank", rank).Int("size", size).Logger()

	// LOCAL_SWEEP
	log.Debug().Str("state", "LOCAL_SWEEP").Int("n", len(local)).Msg("ansv: sweeping local block")
	posL, posR, leftResidual, rightResidual := sweepLocal(local, lo)

	// EXCHANGE_BOUNDARIES
	log.Debug().Str("state", "EXCHANGE_BOUNDARIES").Msg("ansv: exchanging boundary stacks")
	allLeft, allRight, err := exchangeBoundaries(ctx, t,
		toBoundaryEntries(rank, lo, leftResidual),
		toBoundaryEntries(rank, lo, rightResidual))
	if err != nil {
		return nil, nil, err
	}

	// RESOLVE_CROSS
	log.Debug().Str("state", "RESOLVE_CROSS").Msg("ansv: resolving cross-worker queries")
	resolveLeft(local, posL, rank, allLeft)
	resolveRight(local, posR, rank, size, allRight)

	// DONE
	log.Debug().Str("state", "DONE").Msg("ansv: local block resolved")
	return sentinelSlice(posL), sentinelSlice(posR), nil
}
