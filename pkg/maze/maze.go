package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/btree"
)

// ErrInvalidSize 行数或者列数小于 1，或者格子总数溢出
var ErrInvalidSize = errors.New("invalid maze size")

// btree 的度数，墙的集合只做插入和查询，取一个中等值即可
const wallSetDegree = 32

// Maze 是 rows × cols 的网格迷宫，格子编号按行优先: cell = row*cols + col
// 只记录被拆掉的墙，边界墙永远存在
type Maze struct {
	Rows int
	Cols int

	right  *btree.BTreeG[int] // 东墙已拆除的格子
	bottom *btree.BTreeG[int] // 南墙已拆除的格子
}

// CheckSize 校验迷宫尺寸，返回格子总数
func CheckSize(rows, cols int) (int, error) {
	if rows < 1 || cols < 1 {
		return 0, fmt.Errorf("%w: %d x %d", ErrInvalidSize, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %d x %d overflows", ErrInvalidSize, rows, cols)
	}
	return rows * cols, nil
}

// New 创建一个所有墙都存在的迷宫
func New(rows, cols int) (*Maze, error) {
	if _, err := CheckSize(rows, cols); err != nil {
		return nil, err
	}
	return &Maze{
		Rows:   rows,
		Cols:   cols,
		right:  btree.NewOrderedG[int](wallSetDegree),
		bottom: btree.NewOrderedG[int](wallSetDegree),
	}, nil
}

// NumCells 格子总数
func (m *Maze) NumCells() int {
	return m.Rows * m.Cols
}

// Cell 行列转换为格子编号
func (m *Maze) Cell(row, col int) int {
	return row*m.Cols + col
}

// RowCol 格子编号转换为行列
func (m *Maze) RowCol(cell int) (row, col int) {
	return cell / m.Cols, cell % m.Cols
}

// OnEastBoundary 格子位于最后一列，东墙是边界
func (m *Maze) OnEastBoundary(cell int) bool {
	return (cell+1)%m.Cols == 0
}

// OnSouthBoundary 格子位于最后一行，南墙是边界
func (m *Maze) OnSouthBoundary(cell int) bool {
	return cell >= m.NumCells()-m.Cols
}

func (m *Maze) inRange(cell int) bool {
	return cell >= 0 && cell < m.NumCells()
}

// RemoveRightWall 拆掉格子的东墙，边界墙或越界返回 false
func (m *Maze) RemoveRightWall(cell int) bool {
	if !m.inRange(cell) || m.OnEastBoundary(cell) {
		return false
	}
	m.right.ReplaceOrInsert(cell)
	return true
}

// RemoveBottomWall 拆掉格子的南墙，边界墙或越界返回 false
func (m *Maze) RemoveBottomWall(cell int) bool {
	if !m.inRange(cell) || m.OnSouthBoundary(cell) {
		return false
	}
	m.bottom.ReplaceOrInsert(cell)
	return true
}

// HasRightWall 格子东侧是否有墙
func (m *Maze) HasRightWall(cell int) bool {
	return m.OnEastBoundary(cell) || !m.right.Has(cell)
}

// HasBottomWall 格子南侧是否有墙
func (m *Maze) HasBottomWall(cell int) bool {
	return m.OnSouthBoundary(cell) || !m.bottom.Has(cell)
}

// OpenWalls 已拆除的墙的总数
func (m *Maze) OpenWalls() int {
	return m.right.Len() + m.bottom.Len()
}

// OpenRight 东墙已拆除的格子，升序
func (m *Maze) OpenRight() []int {
	return ascend(m.right)
}

// OpenBottom 南墙已拆除的格子，升序
func (m *Maze) OpenBottom() []int {
	return ascend(m.bottom)
}

// Passages 所有打通的相邻格子对，先东后南，各自按格子升序
func (m *Maze) Passages() [][2]int {
	out := make([][2]int, 0, m.OpenWalls())
	for _, c := range m.OpenRight() {
		out = append(out, [2]int{c, c + 1})
	}
	for _, c := range m.OpenBottom() {
		out = append(out, [2]int{c, c + m.Cols})
	}
	return out
}

// Clone 深拷贝迷宫
func (m *Maze) Clone() *Maze {
	return &Maze{
		Rows:   m.Rows,
		Cols:   m.Cols,
		right:  m.right.Clone(),
		bottom: m.bottom.Clone(),
	}
}

func ascend(t *btree.BTreeG[int]) []int {
	out := make([]int, 0, t.Len())
	t.Ascend(func(c int) bool {
		out = append(out, c)
		return true
	})
	return out
}
