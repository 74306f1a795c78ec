package operation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGlobPattern(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "plain_path", path: "src/app.ts", want: false},
		{name: "star", path: "src/*.ts", want: true},
		{name: "doublestar", path: "src/**/*.ts", want: true},
		{name: "question_mark", path: "file?.ts", want: true},
		{name: "char_class", path: "file[ab].ts", want: true},
		{name: "brace_set", path: "file.{ts,js}", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isGlobPattern(tt.path))
		})
	}
}

func TestResolveTargets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "sub"), 0o755))
	for _, name := range []string{"src/a.ts", "src/b.ts", "src/sub/c.ts", "src/d.js"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	o := &operator{baseDir: dir}

	t.Run("plain_path_passes_through", func(t *testing.T) {
		targets, err := o.resolveTargets("src/missing.ts")
		require.NoError(t, err, "existence is a run-time concern")
		assert.Equal(t, []string{"src/missing.ts"}, targets)
	})

	t.Run("glob_matches", func(t *testing.T) {
		targets, err := o.resolveTargets("src/*.ts")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"src/a.ts", "src/b.ts"}, targets)
	})

	t.Run("doublestar_recurses", func(t *testing.T) {
		targets, err := o.resolveTargets("src/**/*.ts")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"src/a.ts", "src/b.ts", "src/sub/c.ts"}, targets)
	})

	t.Run("glob_matching_nothing", func(t *testing.T) {
		targets, err := o.resolveTargets("*.go")
		require.NoError(t, err)
		assert.Empty(t, targets)
	})
}
