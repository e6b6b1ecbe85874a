package ansv

import (
	"fmt"

	"github.com/dedis/ansv/internal/ordered"
	"github.com/dedis/ansv/rmq"
)

// Verify checks a computed (l, r) pair against s for soundness and
// completeness, using an independent rmq.Oracle as the ground truth. It is
// a test/debugging aid, not something Parallel or Sequential consult
// internally.
func Verify[T ordered.Value](s []T, l, r []int) error {
	n := len(s)
	if len(l) != n || len(r) != n {
		return fmt.Errorf("ansv: verify: length mismatch: len(s)=%d len(l)=%d len(r)=%d", n, len(l), len(r))
	}
	if n == 0 {
		return nil
	}
	o := rmq.New(s)

	for i := 0; i < n; i++ {
		if err := verifySide(s, o, i, l[i], -1); err != nil {
			return fmt.Errorf("ansv: verify: L[%d]: %w", i, err)
		}
		if err := verifySide(s, o, i, r[i], +1); err != nil {
			return fmt.Errorf("ansv: verify: R[%d]: %w", i, err)
		}
	}
	return nil
}

// verifySide checks position i's nearest-smaller answer j on one side
// (dir=-1 for left, dir=+1 for right). j==0 is ambiguous: it means either
// "position 0 is the answer" or "no smaller element exists", so
// verifySide accepts either reading.
func verifySide[T ordered.Value](s []T, o *rmq.Oracle[T], i, j, dir int) error {
	if j != 0 {
		return verifyFound(s, o, i, j, dir)
	}
	// j == 0: either position 0 is the genuine answer, or nothing smaller
	// exists on this side. Accept whichever is consistent.
	if err := verifyFound(s, o, i, 0, dir); err == nil {
		return nil
	}
	return verifyNone(s, i, dir)
}

func verifyFound[T ordered.Value](s []T, o *rmq.Oracle[T], i, j, dir int) error {
	if dir < 0 {
		if !(j < i) {
			return fmt.Errorf("candidate %d is not left of %d", j, i)
		}
	} else {
		if !(j > i) {
			return fmt.Errorf("candidate %d is not right of %d", j, i)
		}
	}
	if !(s[j] < s[i]) {
		return fmt.Errorf("s[%d]=%v is not strictly less than s[%d]=%v", j, s[j], i, s[i])
	}
	// Everything strictly between j and i must be >= s[i]: the range
	// minimum over the open interval must not be smaller than s[i]
	// (equality is fine, since it reflects a tie that strict < skips).
	a, b := j+1, i
	if dir > 0 {
		a, b = i+1, j
	}
	if a >= b {
		return nil
	}
	minVal, _ := o.Query(a, b)
	if minVal < s[i] {
		return fmt.Errorf("range minimum %v between %d and %d is smaller than s[%d]=%v", minVal, j, i, i, s[i])
	}
	return nil
}

func verifyNone[T ordered.Value](s []T, i, dir int) error {
	n := len(s)
	if dir < 0 {
		if i == 0 {
			return nil
		}
		minVal, _ := rmqBetween(s, 0, i)
		if minVal < s[i] {
			return fmt.Errorf("no answer claimed but s[0:%d] contains a smaller value", i)
		}
		return nil
	}
	if i == n-1 {
		return nil
	}
	minVal, _ := rmqBetween(s, i+1, n)
	if minVal < s[i] {
		return fmt.Errorf("no answer claimed but s[%d:%d] contains a smaller value", i+1, n)
	}
	return nil
}

func rmqBetween[T ordered.Value](s []T, a, b int) (T, int) {
	o := rmq.New(s[a:b])
	v, idx := o.Query(0, b-a)
	return v, a + idx
}
