package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopies(t *testing.T) {
	ints := []int{1, 2}
	ci := CopyIntSlice(ints)
	ci[0] = 9
	assert.Equal(t, []int{1, 2}, ints)

	m := [][]float64{{1, 2}, {3}}
	cm := CopyFloatMatrix(m)
	cm[1][0] = 0
	assert.Equal(t, [][]float64{{1, 2}, {3}}, m)
	assert.Equal(t, [][]float64{{1, 2}, {0}}, cm)
}

func TestSaveJsonCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	require.NoError(t, SaveJson(path, map[string]int{"runs": 3}))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]int
	require.NoError(t, json.Unmarshal(bs, &out))
	assert.Equal(t, 3, out["runs"])
}

func TestProgressWriterNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "progress")
	require.NoError(t, err)
	defer f.Close()

	p := NewProgressWriter(f)
	assert.False(t, p.Live())
	p.Start()
	_, err = p.Write([]byte("Run 1\n"))
	require.NoError(t, err)
	p.Stop()

	bs, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "Run 1\n", string(bs))

	discard := NewProgressWriter(nil)
	_, err = discard.Write([]byte("ignored"))
	assert.NoError(t, err)
}
