package ansv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialScenarios(t *testing.T) {
	cases := []struct {
		name  string
		s     []int
		wantL []int
		wantR []int
	}{
		{
			name:  "mixed",
			s:     []int{4, 2, 5, 3, 1, 6},
			wantL: []int{0, 0, 1, 1, 0, 4},
			wantR: []int{1, 4, 3, 4, 0, 0},
		},
		{
			name:  "all equal",
			s:     []int{1, 1, 1, 1},
			wantL: []int{0, 0, 0, 0},
			wantR: []int{0, 0, 0, 0},
		},
		{
			name:  "strictly decreasing",
			s:     []int{5, 4, 3, 2, 1},
			wantL: []int{0, 0, 0, 0, 0},
			wantR: []int{1, 2, 3, 4, 0},
		},
		{
			name:  "strictly increasing",
			s:     []int{1, 2, 3, 4, 5},
			wantL: []int{0, 0, 1, 2, 3},
			wantR: []int{0, 0, 0, 0, 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, r := Sequential(tc.s)
			assert.Equal(t, tc.wantL, l)
			assert.Equal(t, tc.wantR, r)
		})
	}
}

func TestSequentialSingleton(t *testing.T) {
	l, r := Sequential([]int{7})
	assert.Equal(t, []int{0}, l)
	assert.Equal(t, []int{0}, r)
}

func TestSequentialEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Sequential([]int{}) })
}

func TestSequentialProperties(t *testing.T) {
	for _, s := range [][]int{
		{4, 2, 5, 3, 1, 6},
		{9, 1, 9, 1, 9, 1},
		{1, 2, 1, 2, 1, 2},
		{3, 3, 3, 1, 3, 3},
	} {
		l, r := Sequential(s)
		assert.NoError(t, Verify(s, l, r))
	}
}
