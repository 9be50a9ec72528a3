package diffutil

import (
	"strings"
	"testing"
)

func TestCompareMultilineEqual(t *testing.T) {
	text := "╶─────┐\n      │\n"
	diff := CompareMultiline(text, text)
	if Changed(diff) {
		t.Fatalf("identical text reported as changed: %+v", diff)
	}
	if len(diff) != 2 {
		t.Errorf("got %d lines, want 2", len(diff))
	}
}

func TestCompareMultilineReplace(t *testing.T) {
	before := "+--+--+\n      |\n+  +  +\n"
	after := "+--+--+\n   |  |\n+  +  +\n"

	diff := CompareMultiline(before, after)
	if !Changed(diff) {
		t.Fatal("expected a change")
	}

	var marks []string
	for _, d := range diff {
		marks = append(marks, d.Mark)
	}
	if got := strings.Join(marks, ""); got != "|~|" {
		t.Errorf("marks = %q, want %q", got, "|~|")
	}
	if diff[1].Left != "      |" || diff[1].Right != "   |  |" {
		t.Errorf("replace line = %+v", diff[1])
	}
}

func TestCompareMultilineInsertDelete(t *testing.T) {
	diff := CompareMultiline("a\nb\n", "a\nb\nc\n")
	last := diff[len(diff)-1]
	if last.Mark != MarkInsert || last.Right != "c" {
		t.Errorf("last line = %+v, want insert of c", last)
	}

	diff = CompareMultiline("a\nb\nc\n", "a\nc\n")
	found := false
	for _, d := range diff {
		if d.Mark == MarkDelete && d.Left == "b" {
			found = true
		}
	}
	if !found {
		t.Errorf("delete of b not reported: %+v", diff)
	}
}

func TestFormatSideBySideAlignsBoxDrawing(t *testing.T) {
	diff := []DiffLine{
		{Left: "└──┴──╴", Right: "└──┴──╴", Mark: MarkEqual},
		{Left: "│", Right: "│  │", Mark: MarkReplace},
	}
	out := FormatSideBySide(diff, "want", "got")
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	// 标记列在同一显示位置
	if !strings.HasPrefix(lines[3], "│        ~") {
		t.Errorf("misaligned line %q\n%s", lines[3], out)
	}
	t.Log("\n" + out)
}
