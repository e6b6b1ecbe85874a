//go:build !ansvdebug

package ansv

// checkInvariant returns err when ok is false, and nil otherwise. The
// ansvdebug build tag additionally panics, so internal invariant
// violations assert and terminate in debug builds; release builds always
// just return the error so it is never swallowed.
func checkInvariant(ok bool, err error) error {
	if ok {
		return nil
	}
	return err
}
