package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		in       string
		expected Config
		err      string
	}{
		{name: `empty`, in: ``, expected: DefaultConfig()},
		{name: `prompt only`, in: "prompt: \"lox> \"\n", expected: Config{Prompt: "lox> ", Echo: true}},
		{name: `all keys`, in: "prompt: \">> \"\nhistory_file: /tmp/h\necho: false\n", expected: Config{Prompt: ">> ", HistoryFile: "/tmp/h"}},
		{name: `unknown key`, in: "color: red\n", err: "field color not found"},
		{name: `bad type`, in: "echo: [1]\n", err: "cannot unmarshal"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "golox.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.in), 0o600))

			config, err := LoadConfig(path)
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, config)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Config{Prompt: "> ", Echo: true}, config)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
