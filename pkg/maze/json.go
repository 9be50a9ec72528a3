package maze

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// JSON 格式: {"rows":R,"cols":C,"cells":[[r0,b0],[r1,b1],...]}
// 墙值的含义和文本格式一致

// MarshalJSON 输出紧凑的 JSON
func (m *Maze) MarshalJSON() ([]byte, error) {
	cells := make([][2]int, m.NumCells())
	for cell := range cells {
		cells[cell] = [2]int{bit(m.HasRightWall(cell)), bit(m.HasBottomWall(cell))}
	}

	data := []byte("{}")
	var err error
	if data, err = sjson.SetBytes(data, "rows", m.Rows); err != nil {
		return nil, err
	}
	if data, err = sjson.SetBytes(data, "cols", m.Cols); err != nil {
		return nil, err
	}
	if data, err = sjson.SetBytes(data, "cells", cells); err != nil {
		return nil, err
	}
	return data, nil
}

// EncodeJSON 输出 JSON，pretty 为 true 时多行缩进
func (m *Maze) EncodeJSON(w io.Writer, indent bool) error {
	data, err := m.MarshalJSON()
	if err != nil {
		return err
	}
	if indent {
		data = pretty.PrettyOptions(data, &pretty.Options{Width: 80, Indent: "    "})
	} else {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// DecodeJSON 读取 JSON 格式的迷宫，校验规则同文本格式
func DecodeJSON(data []byte) (*Maze, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: input is not valid JSON", ErrBadHeader)
	}

	rowsRes := gjson.GetBytes(data, "rows")
	colsRes := gjson.GetBytes(data, "cols")
	if !rowsRes.Exists() || !colsRes.Exists() {
		return nil, fmt.Errorf("%w: rows/cols missing", ErrBadHeader)
	}
	// 用原始文本解析，浮点数和字符串都会被当成非整数拒绝
	rows, cols, err := parseDimensions(rowsRes.Raw, colsRes.Raw)
	if err != nil {
		return nil, err
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	cells := gjson.GetBytes(data, "cells").Array()
	if len(cells) < m.NumCells() {
		row, col := m.RowCol(len(cells))
		return nil, fmt.Errorf("%w starting at row=%d, col=%d", ErrMissingCells, row, col)
	}
	for cell := 0; cell < m.NumCells(); cell++ {
		pair := cells[cell].Array()
		if len(pair) < 2 || !isInt(pair[0]) || !isInt(pair[1]) {
			row, col := m.RowCol(cell)
			return nil, fmt.Errorf("%w at row=%d, col=%d: %s", ErrBadCell, row, col, cells[cell].Raw)
		}
		m.applyCell(cell, int(pair[0].Int()), int(pair[1].Int()))
	}
	return m, nil
}

func isInt(r gjson.Result) bool {
	return r.Type == gjson.Number && r.Num == float64(r.Int())
}
