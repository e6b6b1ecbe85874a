// Package ordered names the constraint shared by every sequence the ANSV
// core operates on: anything with a strict, total `<`.
package ordered

import "cmp"

// Value is satisfied by any of Go's built-in ordered types. It exists as a
// named constraint (rather than using cmp.Ordered directly everywhere) so
// the public signatures in rmq, ansv, and group read as domain types, not
// stdlib plumbing.
type Value interface {
	cmp.Ordered
}
