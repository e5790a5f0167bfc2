package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Mod(15, 12))
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(int8(5), Mod(int8(-2), int8(7)))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[uint8]bool{67: true, 60: true, 64: true}
	assert.Equal(t, []uint8{60, 64, 67}, GetKeysSorted(m))
	assert.Empty(t, GetKeysSorted(map[string]int{}))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
}
