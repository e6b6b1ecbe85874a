package ansv

import "errors"

// Sentinel errors for the three failure kinds distinguished by the
// protocol: a precondition the caller violated, a merged boundary data set
// that couldn't have arisen from a correct local sweep, and (wrapping
// group.ErrTransport) a failure of the underlying collective calls.
var (
	// ErrEmptyInput is the value Sequential panics with (Sequential has no
	// error in its signature) when the input sequence is empty. Parallel
	// does not return it: a member whose local block is empty takes part in
	// the protocol and gets empty l and r, even when every block is empty.
	ErrEmptyInput = errors.New("ansv: empty input sequence")

	// ErrInconsistentBlocks is returned when a member's local block
	// cannot be a valid piece of any block-distributed sequence, e.g. a
	// negative global offset.
	ErrInconsistentBlocks = errors.New("ansv: inconsistent block distribution")

	// ErrInvariantViolation is returned when the boundary data gathered
	// from the group fails a correctness invariant the local sweep
	// guarantees, e.g. a residual stack that is not strictly increasing
	// in value. This indicates a bug, not bad input.
	ErrInvariantViolation = errors.New("ansv: internal invariant violation")
)
