package ansv

import "github.com/dedis/ansv/internal/ordered"

// bisectBelow finds the entry closest to the top of a residual stack (i.e.
// the rightmost entry in the ascending-by-value array stack represents)
// whose Value is strictly less than x. Because every residual stack is
// strictly increasing in value bottom-to-top, this single binary search
// correctly answers both the "largest surviving index" query T_left
// resolution needs and the "smallest surviving index" query T_right
// resolution needs: which index that corresponds to is baked into how the
// stack was built, not into how this search reads it.
func bisectBelow[T ordered.Value](stack []boundaryEntry[T], x T) (boundaryEntry[T], bool) {
	lo, hi := 0, len(stack)
	for lo < hi {
		mid := (lo + hi) / 2
		if stack[mid].Value < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	idx := lo - 1
	if idx < 0 {
		return boundaryEntry[T]{}, false
	}
	return stack[idx], true
}

// resolveLeft implements cross-worker left-NSV resolution: for every
// position i in the local block still unresolved after the local sweep,
// scan workers rank-1, rank-2, ..., 0 in order, binary-searching each
// one's T_left residual for the nearest qualifying candidate; the first
// worker that yields one gives the correct global answer, by the invariant
// that any index which could ever be an NSV for a later position survives
// in some worker's residual stack.
func resolveLeft[T ordered.Value](s []T, l []Pos, rank int, allLeft [][]boundaryEntry[T]) {
	for i := range l {
		if l[i].Found {
			continue
		}
		x := s[i]
		for q := rank - 1; q >= 0; q-- {
			if entry, ok := bisectBelow(allLeft[q], x); ok {
				l[i] = Pos{Found: true, Index: entry.Global}
				break
			}
		}
	}
}

// resolveRight is resolveLeft's mirror image: scans workers rank+1,
// rank+2, ..., size-1 over their T_right residuals.
func resolveRight[T ordered.Value](s []T, r []Pos, rank, size int, allRight [][]boundaryEntry[T]) {
	for i := range r {
		if r[i].Found {
			continue
		}
		x := s[i]
		for q := rank + 1; q < size; q++ {
			if entry, ok := bisectBelow(allRight[q], x); ok {
				r[i] = Pos{Found: true, Index: entry.Global}
				break
			}
		}
	}
}
