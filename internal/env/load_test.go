package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `
# comment
MOCKUP_ASSET_BASE_URL=https://assets.example.com
QUOTED="hello world"
SINGLE='x=y'
  SPACED =  value
NOEQUALS
=novalue
`
	pairs, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MOCKUP_ASSET_BASE_URL": "https://assets.example.com",
		"QUOTED":                "hello world",
		"SINGLE":                "x=y",
		"SPACED":                "value",
	}, pairs)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MOCKUP_TEST_KEY=abc\n"), 0644))
	t.Setenv("MOCKUP_TEST_KEY", "")
	require.NoError(t, Load(path))
	assert.Equal(t, "abc", os.Getenv("MOCKUP_TEST_KEY"))
}
