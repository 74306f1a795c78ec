package operation

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔍 resolveTargets expands a patch file field into concrete paths. A plain
// path passes through untouched (existence is checked at run time, so a
// missing file is a per-file failure, not a config error); a glob pattern is
// matched against the working tree and may legitimately match nothing.
func (o *operator) resolveTargets(pattern string) ([]string, error) {
	if !isGlobPattern(pattern) {
		return []string{pattern}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(o.baseDir), pattern)
	if err != nil {
		return nil, errors.Errorf("expanding glob %q: %w", pattern, err)
	}

	return matches, nil
}

// isGlobPattern reports whether the path contains glob metacharacters
func isGlobPattern(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
