package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	l.Info("discarded", "k", "v")
	l.Sync()
}

func TestNew_WritesToFile(t *testing.T) {
	for _, mode := range []string{"dev", "prod"} {
		t.Run(mode, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "edusmart.log")
			l, err := New(mode, path)
			require.NoError(t, err)

			l.With("user", "alex").Info("lesson completed", "lesson_id", "js-variables")
			l.Sync()

			b, err := os.ReadFile(path)
			require.NoError(t, err)
			out := string(b)
			assert.True(t, strings.Contains(out, "lesson completed"))
			assert.True(t, strings.Contains(out, "js-variables"))
			assert.True(t, strings.Contains(out, "alex"))
		})
	}
}

func TestNew_ProdDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edusmart.log")
	l, err := New("production", path)
	require.NoError(t, err)

	l.Debug("hidden detail")
	l.Warn("visible warning")
	l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden detail")
	assert.Contains(t, string(b), "visible warning")
}
