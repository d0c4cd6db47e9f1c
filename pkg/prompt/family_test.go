package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultFamily(t *testing.T) {
	f := MustDefault()
	require.Equal(t, DefaultFamilyName, f.Name())

	text := f.AutoAgentInstructions()
	require.NotEmpty(t, text)
	require.Contains(t, text, `"server"`)
	require.Contains(t, text, `"agent_role_prompt"`)
	require.NotEmpty(t, f.Digest())
}

func TestNewFamily(t *testing.T) {
	t.Run("blank name means default", func(t *testing.T) {
		f, err := NewFamily("  ", "")
		require.NoError(t, err)
		require.Equal(t, DefaultFamilyName, f.Name())
	})

	t.Run("unknown family", func(t *testing.T) {
		_, err := NewFamily("granite", "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown prompt family")
	})

	t.Run("template override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agent.tmpl")
		require.NoError(t, os.WriteFile(path, []byte("  Pick a dental agent. {{ trim \"  ok \" }}\n"), 0o600))

		f, err := NewFamily("dental", path)
		require.NoError(t, err)
		require.Equal(t, "dental", f.Name())
		require.Equal(t, "Pick a dental agent. ok", f.AutoAgentInstructions())
	})

	t.Run("template override missing", func(t *testing.T) {
		_, err := NewFamily("default", filepath.Join(t.TempDir(), "nope.tmpl"))
		require.Error(t, err)
	})
}
