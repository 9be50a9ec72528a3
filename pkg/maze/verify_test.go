package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	build := func(t *testing.T, right, bottom []int) *Maze {
		t.Helper()
		m, err := New(2, 3)
		require.NoError(t, err)
		for _, c := range right {
			require.True(t, m.RemoveRightWall(c))
		}
		for _, c := range bottom {
			require.True(t, m.RemoveBottomWall(c))
		}
		return m
	}

	tests := []struct {
		name          string
		right, bottom []int
		wantMsg       string
	}{
		{"spanning tree", []int{0, 1}, []int{0, 1, 2}, ""},
		{"too few", []int{0, 1}, []int{0}, "3 open walls, want 5"},
		{"too many", []int{0, 1, 3, 4}, []int{0, 2}, "6 open walls, want 5"},
		{"cycle", []int{0, 3}, []int{0, 1, 2}, "cycle through (0,1)-(1,1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := build(t, tt.right, tt.bottom).Verify()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrNotPerfect), "error = %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestVerifyDecoded(t *testing.T) {
	m, _, err := NewGenerator(WithSeed(99)).Generate(20, 20)
	require.NoError(t, err)
	require.NoError(t, m.Verify())

	broken := m.Clone()
	// 再拆一面墙必然成环
	for c := 0; c < broken.NumCells(); c++ {
		if broken.HasRightWall(c) && broken.RemoveRightWall(c) {
			break
		}
	}
	assert.ErrorIs(t, broken.Verify(), ErrNotPerfect)
	assert.NoError(t, m.Verify(), "clone must not share walls")
}
