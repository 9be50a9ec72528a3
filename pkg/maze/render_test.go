package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/internal/testutils"
)

func TestRenderASCII(t *testing.T) {
	want := "" +
		"+--+--+\n" +
		"      |\n" +
		"+  +  +\n" +
		"|  |\n" +
		"+--+--+\n"
	testutils.AssertGolden(t, scripted2x2(t).RenderString(StyleASCII), want)
}

func TestRenderUnicode(t *testing.T) {
	want := "" +
		"╶─────┐\n" +
		"      │\n" +
		"╷  ╷  ╵\n" +
		"│  │\n" +
		"└──┴──╴\n"
	testutils.AssertGolden(t, scripted2x2(t).RenderString(StyleUnicode), want)
}

func TestRenderSingleCell(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)
	testutils.AssertGolden(t, m.RenderString(StyleUnicode), "╶──╴\n\n╶──╴\n")
	testutils.AssertGolden(t, m.RenderString(StyleASCII), "+--+\n\n+--+\n")
}

func TestRenderDimensions(t *testing.T) {
	m, _, err := NewGenerator(WithSeed(11)).Generate(5, 8)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(m.RenderString(StyleASCII), "\n"), "\n")
	assert.Len(t, lines, 2*5+1)
	// 横线行是完整的，每个格子 3 个字符加最后一个角
	assert.Len(t, lines[0], 3*8+1)
	assert.Equal(t, "+"+strings.Repeat("--+", 8), lines[len(lines)-1])
}

func TestStyleFlagValue(t *testing.T) {
	var s Style
	require.NoError(t, s.Set("ascii"))
	assert.Equal(t, StyleASCII, s)
	assert.Equal(t, "ascii", s.String())
	assert.Equal(t, "style", s.Type())
	assert.Error(t, s.Set("braille"))
}
