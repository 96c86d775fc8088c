package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidJSONYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "mockup.json")
	want := Prefs{
		WindowWidth:        1920,
		WindowHeight:       1080,
		OutputPath:         "shots/render.webp",
		AssetBaseURL:       "https://assets.example.com/mockups",
		EnvironmentVisible: true,
		ShowFPS:            true,
	}
	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRepairsNonsenseValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mockup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"window_width":-4,"output_path":""}`), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().WindowWidth, p.WindowWidth)
	assert.Equal(t, Default().WindowHeight, p.WindowHeight)
	assert.Equal(t, "mockup-render.png", p.OutputPath)
}
