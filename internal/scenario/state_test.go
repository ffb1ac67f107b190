package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStateFile(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, StateFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoadStateFile(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, `{
		"objects": {"0": [0.5, 0.5, 0], "1": [0.55, 0.5, 0.05]},
		"relationships": ["On(1,0)"]
	}`)

	sf, err := LoadStateFile(dir)
	require.NoError(t, err)
	assert.Len(t, sf.Objects, 2)
	assert.Equal(t, []string{"On(1,0)"}, sf.Relationships)
}

func TestLoadStateFileBadCoordinates(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, `{"objects": {"0": [0.5, 0.5]}, "relationships": []}`)

	_, err := LoadStateFile(dir)
	assert.Error(t, err)
}

func TestLoadStateFileInitialObjectsMustCoverAll(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, `{
		"objects": {"0": [0, 0, 0], "1": [0.05, 0, 0.05]},
		"initial_objects": {"0": [0, 0, 0]},
		"relationships": []
	}`)

	_, err := LoadStateFile(dir)
	assert.Error(t, err)
}

func TestToWorldWithInitialObjects(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, `{
		"objects": {"0": [0, 0, 0], "1": [0.05, 0, 0.05]},
		"initial_objects": {"0": [0, 0, 0], "1": [0, 0, 0.05]},
		"relationships": ["On(1,0)"]
	}`)

	sf, err := LoadStateFile(dir)
	require.NoError(t, err)

	st, err := sf.ToWorld("0")
	require.NoError(t, err)

	report := st.Evaluate(0.005)
	assert.False(t, report.AllAligned(), "observed drift from the original configuration should register")
	assert.Equal(t, []string{"1"}, report.Misaligned())
}

func TestToWorldWithoutInitialObjects(t *testing.T) {
	dir := t.TempDir()
	writeStateFile(t, dir, `{
		"objects": {"0": [0, 0, 0], "1": [0.05, 0, 0.05]},
		"relationships": []
	}`)

	sf, err := LoadStateFile(dir)
	require.NoError(t, err)

	st, err := sf.ToWorld("0")
	require.NoError(t, err)
	assert.True(t, st.Evaluate(0.005).AllAligned(),
		"without an original configuration the observed offsets are the baseline")
}
