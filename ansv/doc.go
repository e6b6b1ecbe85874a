// Package ansv computes All Nearest Smaller Values (ANSV): for every
// position i in a sequence S, the nearest position to the left (L[i]) and
// right (R[i]) holding a value strictly smaller than S[i].
//
// ANSV is the algorithmic core beneath parallel suffix-array construction,
// LCP-array construction, Cartesian-tree building, and suffix-tree
// traversal over block-distributed text; this package implements the
// primitive in isolation from any of those consumers.
//
// Two entry points
//
// Sequential runs the classic monotone-stack sweep over an in-memory
// sequence held by a single caller. Parallel runs the distributed protocol
// across a group.Transport: each member owns a contiguous local block of
// the logical sequence (as produced by group.BlockDistribute), runs its own
// local sweep, exchanges the residual "boundary stacks" left unresolved at
// its block's edges with every other member, and then resolves its
// remaining unknowns by searching the merged boundary data. Both entry
// points produce global indices, and both use the sentinel value 0 to mean
// "no smaller value exists", which is also the legal answer for position 0
// itself. Callers needing to disambiguate inspect S[0] directly (see
// Pos, which is how this package avoids the ambiguity internally).
//
// Protocol states
//
// Parallel's distributed members progress through four states in lockstep,
// synchronized by group.Transport.Barrier and the group.AllGatherV calls
// the boundary exchange issues:
//
//	LOCAL_SWEEP -> EXCHANGE_BOUNDARIES -> RESOLVE_CROSS -> DONE
//
// Every member enters EXCHANGE_BOUNDARIES before any member enters
// RESOLVE_CROSS; this is enforced by the collectives themselves rather
// than by any separate coordination the caller must provide.
//
// Failure semantics
//
// Any error (a failed collective, an inconsistent block assignment, or,
// should it ever occur, a violated internal invariant about the shape of
// the exchanged boundary data) aborts the whole call for every member;
// partial L/R output is not meaningful and must be discarded by the
// caller. Parallel never retries.
package ansv
