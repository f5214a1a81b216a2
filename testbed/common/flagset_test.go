package common

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFlags(t *testing.T) {
	f := DefaultFlags()
	assert.Equal(t, 10, f.Arms)
	assert.Equal(t, 2000, f.Runs)
	assert.Equal(t, 1000, f.Timesteps)
	assert.Equal(t, 0.01, f.Epsilon)
	assert.Equal(t, 2.0, f.UCBConstant)
	assert.Equal(t, 0.1, f.StepSize)
}

func TestRecord(t *testing.T) {
	f := DefaultFlags()
	f.SavePath = filepath.Join(t.TempDir(), "out")
	f.Runs = 7
	require.NoError(t, f.Record())

	bs, err := os.ReadFile(filepath.Join(f.SavePath, "config.json"))
	require.NoError(t, err)
	var out Flags
	require.NoError(t, json.Unmarshal(bs, &out))
	assert.Equal(t, 7, out.Runs)
	assert.Equal(t, f.Policies, out.Policies)
}
