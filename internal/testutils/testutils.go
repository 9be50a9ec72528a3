package testutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"mazegen/pkg/diffutil"
)

// ScriptedSource 按给定顺序返回随机数，用来让生成过程完全确定
// 序列用完或者值越界时 panic，测试脚本写错时能立刻发现
type ScriptedSource struct {
	vals []int
	pos  int
}

func NewScriptedSource(vals ...int) *ScriptedSource {
	return &ScriptedSource{vals: vals}
}

func (s *ScriptedSource) IntN(n int) int {
	if s.pos >= len(s.vals) {
		panic(fmt.Sprintf("scripted source exhausted after %d values", s.pos))
	}
	v := s.vals[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scripted value %d at #%d out of range [0, %d)", v, s.pos, n))
	}
	s.pos++
	return v
}

// Remaining 还没有被消费的值的个数
func (s *ScriptedSource) Remaining() int {
	return len(s.vals) - s.pos
}

// AssertGolden 比较多行文本，不一致时输出左右对照的差异
func AssertGolden(t testing.TB, got, want string) {
	t.Helper()
	diff := diffutil.CompareMultiline(want, got)
	if diffutil.Changed(diff) {
		t.Errorf("output mismatch:\n%s", diffutil.FormatSideBySide(diff, "* want", "* got"))
	}
}

// FindGoModRoot 从 dir 向上查找 go.mod 所在目录
func FindGoModRoot(dir string) (string, error) {
	dir = filepath.Clean(dir)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}
