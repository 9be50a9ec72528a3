package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// 迷宫文本格式:
//
//	maze <rows> <cols>
//	<r0> <b0>
//	...
//
// 每个格子一行，按行优先排列，非 0 表示有墙，0 表示墙已拆除

const formatTag = "maze"

var (
	ErrBadHeader     = errors.New("invalid maze header")
	ErrBadDimensions = errors.New("invalid maze dimensions")
	ErrBadCell       = errors.New("bad cell description")
	ErrMissingCells  = errors.New("missing cell descriptions")
)

func bit(wall bool) int {
	if wall {
		return 1
	}
	return 0
}

// Encode 按文本格式输出迷宫，最后一列的东墙和最后一行的南墙总是 1
func (m *Maze) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %d %d\n", formatTag, m.Rows, m.Cols)
	for cell := 0; cell < m.NumCells(); cell++ {
		fmt.Fprintf(bw, "%d %d\n", bit(m.HasRightWall(cell)), bit(m.HasBottomWall(cell)))
	}
	return bw.Flush()
}

// String 文本格式
func (m *Maze) String() string {
	var b strings.Builder
	_ = m.Encode(&b)
	return b.String()
}

// parseDimensions 解析并校验行列，用于文本和 JSON 两种格式
func parseDimensions(rowsTok, colsTok string) (int, int, error) {
	rows, errR := strconv.Atoi(rowsTok)
	cols, errC := strconv.Atoi(colsTok)
	if errR != nil || errC != nil {
		return 0, 0, fmt.Errorf("%w: non-integer [%q x %q]", ErrBadDimensions, rowsTok, colsTok)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: nonpositive %d x %d", ErrBadDimensions, rows, cols)
	}
	if _, err := CheckSize(rows, cols); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadDimensions, err)
	}
	return rows, cols, nil
}

// applyCell 按文件中的墙值更新迷宫，边界墙忽略文件内容，总是存在
func (m *Maze) applyCell(cell, right, bottom int) {
	if right == 0 {
		m.RemoveRightWall(cell)
	}
	if bottom == 0 {
		m.RemoveBottomWall(cell)
	}
}

// Decode 读取文本格式的迷宫
// 头部至少 3 个字段且第一个是 maze，行列必须是正整数，
// 之后至少要有 rows*cols 对整数，以空白分隔，不要求一行一对
func Decode(r io.Reader) (*Maze, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if strings.TrimSpace(header) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}

	fields := strings.Fields(header)
	if len(fields) < 3 || fields[0] != formatTag {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, strings.TrimSpace(header))
	}
	rows, cols, err := parseDimensions(fields[1], fields[2])
	if err != nil {
		return nil, err
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(br)
	sc.Split(bufio.ScanWords)
	next := func(cell int) (int, error) {
		row, col := m.RowCol(cell)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w starting at row=%d, col=%d", ErrMissingCells, row, col)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w at row=%d, col=%d: %q", ErrBadCell, row, col, sc.Text())
		}
		return v, nil
	}

	for cell := 0; cell < m.NumCells(); cell++ {
		right, err := next(cell)
		if err != nil {
			return nil, err
		}
		bottom, err := next(cell)
		if err != nil {
			return nil, err
		}
		m.applyCell(cell, right, bottom)
	}
	return m, nil
}
