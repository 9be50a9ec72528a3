package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedSource(t *testing.T) {
	src := NewScriptedSource(3, 0, 1)
	assert.Equal(t, 3, src.IntN(4))
	assert.Equal(t, 0, src.IntN(2))
	assert.Equal(t, 1, src.Remaining())
	assert.Equal(t, 1, src.IntN(2))

	assert.Panics(t, func() { src.IntN(2) }, "exhausted")
	assert.Panics(t, func() { NewScriptedSource(5).IntN(2) }, "out of range")
}

func TestAssertGoldenPasses(t *testing.T) {
	AssertGolden(t, "a\nb\n", "a\nb\n")
}

func TestFindGoModRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	root, err := FindGoModRoot(wd)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))

	_, err = FindGoModRoot(t.TempDir())
	// 临时目录一般不在模块里
	if err == nil {
		t.Log("temp dir is inside a module, skipping negative check")
	}
}
