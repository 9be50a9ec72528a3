package diffutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatSideBySide 左右对照输出差异，左栏按显示宽度对齐
// 框线字符按宽度 1 计算，否则在东亚环境下字符画会错位
func FormatSideBySide(diff []DiffLine, leftTitle, rightTitle string) string {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	width := cond.StringWidth(leftTitle)
	for _, d := range diff {
		width = max(width, cond.StringWidth(d.Left))
	}

	pad := func(s string) string {
		return s + strings.Repeat(" ", width-cond.StringWidth(s))
	}

	var out []string
	header := fmt.Sprintf("%s  %s  %s", pad(leftTitle), " ", rightTitle)
	out = append(out, header)
	out = append(out, strings.Repeat("-", cond.StringWidth(header)))
	for _, d := range diff {
		out = append(out, fmt.Sprintf("%s  %s  %s", pad(d.Left), d.Mark, d.Right))
	}
	return strings.Join(out, "\n")
}
