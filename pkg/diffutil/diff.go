package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 行标记
const (
	MarkEqual   = "|"
	MarkDelete  = "-"
	MarkInsert  = "+"
	MarkReplace = "~"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  string // "|", "+", "-", "~"
}

// splitLines 按行切分，去掉末尾换行产生的空行
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// CompareMultiline 按行比较两段文本，删除紧跟插入的块会配对成替换行
// 空白行也保留，迷宫字符画里整行空白是有意义的
func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {

			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for j := 0; j < max(len(delLines), len(insLines)); j++ {
				l, r := "", ""
				mark := MarkReplace
				switch {
				case j >= len(delLines):
					mark = MarkInsert
					r = insLines[j]
				case j >= len(insLines):
					mark = MarkDelete
					l = delLines[j]
				default:
					l, r = delLines[j], insLines[j]
				}
				result = append(result, DiffLine{Left: l, Right: r, Mark: mark})
			}
			i++
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: MarkEqual})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: MarkDelete})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: MarkInsert})
			}
		}
	}
	return result
}

// Changed 是否存在不相等的行
func Changed(diff []DiffLine) bool {
	for _, d := range diff {
		if d.Mark != MarkEqual {
			return true
		}
	}
	return false
}
