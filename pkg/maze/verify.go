package maze

import (
	"errors"
	"fmt"

	"mazegen/pkg/unionfind"
)

// ErrNotPerfect 打通的墙不构成生成树
var ErrNotPerfect = errors.New("maze is not perfect")

// Verify 检查迷宫是否是完美迷宫: 任意两个格子之间有且只有一条路径
// 等价于打通的墙正好 rows*cols-1 面，并且用它们合并时不出现环
func (m *Maze) Verify() error {
	n := m.NumCells()
	if open := m.OpenWalls(); open != n-1 {
		return fmt.Errorf("%w: %d open walls, want %d", ErrNotPerfect, open, n-1)
	}

	uf := unionfind.NewUnionFind(n)
	for _, p := range m.Passages() {
		if !uf.Union(p[0], p[1]) {
			r0, c0 := m.RowCol(p[0])
			r1, c1 := m.RowCol(p[1])
			return fmt.Errorf("%w: cycle through (%d,%d)-(%d,%d)", ErrNotPerfect, r0, c0, r1, c1)
		}
	}
	if uf.NumSets() != 1 {
		return fmt.Errorf("%w: %d disconnected regions", ErrNotPerfect, uf.NumSets())
	}
	return nil
}
