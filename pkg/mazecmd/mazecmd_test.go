package mazecmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/errorutil"
	"mazegen/pkg/graph"
	"mazegen/pkg/maze"
)

// run 执行一个子命令，返回标准输出、标准错误和错误
func run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func seededMaze(t *testing.T, rows, cols int, seed uint64) *maze.Maze {
	t.Helper()
	m, _, err := maze.NewGenerator(maze.WithSeed(seed)).Generate(rows, cols)
	require.NoError(t, err)
	return m
}

func TestGenerateToStdout(t *testing.T) {
	out, _, err := run(t, GenerateCmd(), "", "3", "4", "-s", "9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+12)
	assert.Equal(t, "maze 3 4", lines[0])

	m, err := maze.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.NoError(t, m.Verify())

	// 同一个种子结果相同，"-" 同样表示标准输出
	again, _, err := run(t, GenerateCmd(), "", "3", "4", "-", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Equal(t, seededMaze(t, 3, 4, 9).String(), out)
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	out, _, err := run(t, GenerateCmd(), "", "5", "5", path, "-s", "1")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "maze 5 5\n"))
	assert.Equal(t, 25-1, strings.Count(strings.SplitN(string(data), "\n", 2)[1], "0"))
}

func TestGenerateJSONAndRender(t *testing.T) {
	out, errOut, err := run(t, GenerateCmd(), "", "2", "3", "-s", "4", "-f", "json", "-r")
	require.NoError(t, err)

	m, err := maze.DecodeJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows)
	assert.Equal(t, 3, m.Cols)
	assert.Equal(t, m.RenderString(maze.StyleUnicode), errOut)
}

func TestGenerateExitCodes(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "no", "such", "dir", "maze.txt")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, errorutil.CodeInvalidUsage},
		{"one arg", []string{"3"}, errorutil.CodeInvalidUsage},
		{"too many", []string{"3", "3", "a", "b"}, errorutil.CodeInvalidUsage},
		{"non-integer rows", []string{"x", "3"}, errorutil.CodeInvalidUsage},
		{"non-integer cols", []string{"3", "3.5"}, errorutil.CodeInvalidUsage},
		{"zero", []string{"0", "3"}, errorutil.CodeInvalidUsage},
		{"unopenable output", []string{"2", "2", missingDir}, errorutil.CodeOutputOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, GenerateCmd(), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, errorutil.ExitCodeFromError(err), "err = %v", err)
		})
	}
}

func TestGenerateRejectsBadFormat(t *testing.T) {
	_, _, err := run(t, GenerateCmd(), "", "2", "2", "-f", "xml")
	assert.ErrorContains(t, err, "format")
}

func TestRender(t *testing.T) {
	m := seededMaze(t, 4, 6, 12)
	path := writeFile(t, "maze.txt", m.String())

	out, _, err := run(t, RenderCmd(), "", path, "--style", "ascii")
	require.NoError(t, err)
	assert.Equal(t, m.RenderString(maze.StyleASCII), out)

	// 从标准输入读 JSON
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	out, _, err = run(t, RenderCmd(), string(data))
	require.NoError(t, err)
	assert.Equal(t, m.RenderString(maze.StyleUnicode), out)
}

func TestCheck(t *testing.T) {
	m := seededMaze(t, 10, 120, 2)

	out, _, err := run(t, CheckCmd(), m.String())
	require.NoError(t, err)
	assert.Equal(t, "maze 10 x 120: 1,200 cells, 1,199 passages, perfect\n", out)

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"garbage", "hello world\n", errorutil.CodeInvalidData},
		{"truncated", "maze 2 2\n1 1\n", errorutil.CodeInvalidData},
		{"all walls", "maze 1 2\n1 1\n1 1\n", errorutil.CodeInvalidData},
		{"bad json", `{"rows":1}`, errorutil.CodeInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, CheckCmd(), tt.input)
			assert.Equal(t, tt.want, errorutil.ExitCodeFromError(err), "err = %v", err)
		})
	}

	_, _, err = run(t, CheckCmd(), "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, errorutil.CodeIOError, errorutil.ExitCodeFromError(err))
}

func TestDot(t *testing.T) {
	m := seededMaze(t, 3, 3, 6)

	out, _, err := run(t, DotCmd(), m.String())
	require.NoError(t, err)

	g, err := graph.ParseDOT([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, graph.GraphName, g.Name)
	assert.Len(t, g.Nodes.Nodes, 9)
	ok, where := graph.IsTree(g)
	assert.True(t, ok, "offending: %s", where)
}

func TestDiff(t *testing.T) {
	a := writeFile(t, "a.txt", seededMaze(t, 3, 3, 1).String())
	b := writeFile(t, "b.txt", seededMaze(t, 3, 3, 1).String())

	out, _, err := run(t, DiffCmd(), "", a, b)
	require.NoError(t, err)
	assert.NotContains(t, out, "~")

	// 找一个和种子 1 不同的迷宫
	var c string
	for seed := uint64(2); seed < 50; seed++ {
		if other := seededMaze(t, 3, 3, seed); other.String() != seededMaze(t, 3, 3, 1).String() {
			c = writeFile(t, "c.txt", other.String())
			break
		}
	}
	require.NotEmpty(t, c)

	out, _, err = run(t, DiffCmd(), "", a, c)
	assert.Equal(t, errorutil.CodeDiffFound, errorutil.ExitCodeFromError(err))
	assert.Contains(t, out, filepath.Base(c))

	_, _, err = run(t, DiffCmd(), "", a)
	assert.Equal(t, errorutil.CodeInvalidUsage, errorutil.ExitCodeFromError(err))
}

func TestDotCheck(t *testing.T) {
	m := seededMaze(t, 4, 4, 13)
	dot, _, err := run(t, DotCmd(), m.String())
	require.NoError(t, err)

	// 导出的通路图再检查一遍
	out, _, err := run(t, DotCmd(), dot, "--check")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "maze: 16 nodes, 15 edges, "), out)
	assert.True(t, strings.HasSuffix(out, ", tree\n"), out)

	tests := []struct {
		name  string
		input string
	}{
		{"cycle", `graph G { a -- b; b -- c; c -- a; }`},
		{"disconnected", `graph G { a -- b; c; }`},
		{"empty", `graph G { }`},
		{"not dot", "maze 2 2\n1 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, DotCmd(), tt.input, "-c")
			assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err), "err = %v", err)
		})
	}

	out, _, err = run(t, DotCmd(), `graph G { a -- b; b -- c; c -- a; }`, "--check")
	assert.ErrorIs(t, err, graph.ErrNotTree)
	assert.Equal(t, "G: 3 nodes, 3 edges, 0 dead ends, not a tree at c--a\n", out)
}
