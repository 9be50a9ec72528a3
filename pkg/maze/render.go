package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Style 字符画风格，实现了 pflag.Value 接口
type Style string

const (
	StyleASCII   Style = "ascii"
	StyleUnicode Style = "unicode"
)

func (s *Style) String() string { return string(*s) }

func (s *Style) Set(val string) error {
	switch Style(val) {
	case StyleASCII, StyleUnicode:
		*s = Style(val)
		return nil
	default:
		return fmt.Errorf("无效的 style 值: %s (ascii|unicode)", val)
	}
}

func (s *Style) Type() string {
	return "style"
}

// 交叉点的四个方向
const (
	armUp = 1 << iota
	armDown
	armLeft
	armRight
)

// 按 armUp|armDown|armLeft|armRight 组合取框线字符
var boxJunctions = [16]string{
	" ", "╵", "╷", "│",
	"╴", "┘", "┐", "┤",
	"╶", "└", "┌", "├",
	"─", "┴", "┬", "┼",
}

// hWall 第 r 条横线(0..Rows)上第 c 段是否有墙
func (m *Maze) hWall(r, c int) bool {
	if r == 0 || r == m.Rows {
		return true
	}
	return m.HasBottomWall(m.Cell(r-1, c))
}

// vWall 第 r 行第 c 条竖线(0..Cols)是否有墙
// 和查看器一致: 左上角格子的西侧是入口，右下角格子的东侧是出口
func (m *Maze) vWall(r, c int) bool {
	switch c {
	case 0:
		return r != 0
	case m.Cols:
		return r != m.Rows-1
	}
	return m.HasRightWall(m.Cell(r, c-1))
}

func (m *Maze) junction(r, c int, style Style) string {
	if style != StyleUnicode {
		return "+"
	}
	arms := 0
	if r > 0 && m.vWall(r-1, c) {
		arms |= armUp
	}
	if r < m.Rows && m.vWall(r, c) {
		arms |= armDown
	}
	if c > 0 && m.hWall(r, c-1) {
		arms |= armLeft
	}
	if c < m.Cols && m.hWall(r, c) {
		arms |= armRight
	}
	return boxJunctions[arms]
}

// Render 把迷宫画成字符画，每个格子占两列，行尾空白会被去掉
func (m *Maze) Render(w io.Writer, style Style) error {
	hSeg, vSeg := "--", "|"
	if style == StyleUnicode {
		hSeg, vSeg = "──", "│"
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	flush := func() {
		fmt.Fprintln(bw, strings.TrimRight(line.String(), " "))
		line.Reset()
	}

	for r := 0; r <= m.Rows; r++ {
		// 横线
		for c := 0; c <= m.Cols; c++ {
			line.WriteString(m.junction(r, c, style))
			if c == m.Cols {
				break
			}
			if m.hWall(r, c) {
				line.WriteString(hSeg)
			} else {
				line.WriteString("  ")
			}
		}
		flush()
		if r == m.Rows {
			break
		}

		// 竖线和格子内部
		for c := 0; c <= m.Cols; c++ {
			if m.vWall(r, c) {
				line.WriteString(vSeg)
			} else {
				line.WriteString(" ")
			}
			if c < m.Cols {
				line.WriteString("  ")
			}
		}
		flush()
	}
	return bw.Flush()
}

// RenderString 字符画
func (m *Maze) RenderString(style Style) string {
	var b strings.Builder
	_ = m.Render(&b, style)
	return b.String()
}
