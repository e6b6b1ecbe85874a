package ansv

import (
	"context"
	"math/rand"
	"testing"

	"github.com/dedis/ansv/group"
	"github.com/stretchr/testify/require"
)

// runParallel block-distributes s across p in-process workers, runs
// Parallel on each, and gathers the per-worker L/R back into full global
// arrays at rank 0, mirroring how cmd/ansv assembles its final report.
func runParallel(t *testing.T, s []int, p int) (l, r []int) {
	t.Helper()
	ctx := context.Background()

	err := group.RunLocal(ctx, p, func(ctx context.Context, m *group.Member) error {
		local, lo, err := group.BlockDistribute(ctx, m, 0, s)
		if err != nil {
			return err
		}
		myL, myR, err := Parallel(ctx, m, local, lo)
		if err != nil {
			return err
		}
		gl, err := group.GatherV(ctx, m, myL, 0)
		if err != nil {
			return err
		}
		gr, err := group.GatherV(ctx, m, myR, 0)
		if err != nil {
			return err
		}
		if m.Rank() == 0 {
			l, r = gl, gr
		}
		return nil
	})
	require.NoError(t, err)
	return l, r
}

func TestParallelMatchesSequentialScenarios(t *testing.T) {
	cases := []struct {
		name string
		s    []int
	}{
		{"mixed", []int{4, 2, 5, 3, 1, 6}},
		{"all equal", []int{1, 1, 1, 1}},
		{"strictly decreasing", []int{5, 4, 3, 2, 1}},
		{"strictly increasing", []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		for _, p := range []int{1, 2, 4, 7} {
			t.Run(tc.name, func(t *testing.T) {
				wantL, wantR := Sequential(tc.s)
				gotL, gotR := runParallel(t, tc.s, p)
				require.Equal(t, wantL, gotL, "p=%d", p)
				require.Equal(t, wantR, gotR, "p=%d", p)
			})
		}
	}
}

func TestParallelRandomMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	sizes := []int{137, 1000, 4200, 13790}
	for _, n := range sizes {
		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(997)
		}
		wantL, wantR := Sequential(s)
		for _, p := range []int{1, 2, 4, 7, 16} {
			gotL, gotR := runParallel(t, s, p)
			require.Equal(t, wantL, gotL, "n=%d p=%d", n, p)
			require.Equal(t, wantR, gotR, "n=%d p=%d", n, p)
		}
	}
}

func TestParallelMoreWorkersThanElements(t *testing.T) {
	s := []int{3, 1, 2}
	wantL, wantR := Sequential(s)
	gotL, gotR := runParallel(t, s, 7)
	require.Equal(t, wantL, gotL)
	require.Equal(t, wantR, gotR)
}

func TestParallelBoundaryStress(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, n := range []int{66666, 137900} {
		s := make([]int, n)
		for i := range s {
			s[i] = r.Intn(10000)
		}
		wantL, wantR := Sequential(s)
		for _, p := range []int{16, 32} {
			gotL, gotR := runParallel(t, s, p)
			require.Equal(t, wantL, gotL, "n=%d p=%d", n, p)
			require.Equal(t, wantR, gotR, "n=%d p=%d", n, p)
		}
	}
}
