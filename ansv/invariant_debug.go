//go:build ansvdebug

package ansv

// checkInvariant panics with err when ok is false, for debug builds (see
// invariant_release.go for the production behavior).
func checkInvariant(ok bool, err error) error {
	if !ok {
		panic(err)
	}
	return nil
}
