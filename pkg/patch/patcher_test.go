package patch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// 🔧 fakeFiles is an in-memory FileManager for patcher tests
type fakeFiles struct {
	files     map[string][]byte
	writes    int
	backups   int
	failWrite bool
}

func newFakeFiles(files map[string][]byte) *fakeFiles {
	return &fakeFiles{files: files}
}

func (f *fakeFiles) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, errors.Errorf("reading file: no such file %s", path)
	}
	return content, nil
}

func (f *fakeFiles) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	if f.failWrite {
		return errors.Errorf("writing file: disk full")
	}
	f.writes++
	f.files[path] = content
	return nil
}

func (f *fakeFiles) BackupFile(ctx context.Context, path string) error {
	f.backups++
	return nil
}

func TestPatcher_Apply_BestEffort(t *testing.T) {
	files := newFakeFiles(map[string][]byte{
		"target.ts": []byte("alpha\nbeta\ngamma\n"),
	})
	patcher, err := New(files, Options{})
	require.NoError(t, err)

	// The middle operation fails; the ones around it succeed.
	ops := []Operation{
		Replace{Old: "alpha", New: "ALPHA"},
		Insert{Anchor: "no such anchor", Content: "x\n", Position: PositionBefore},
		Replace{Old: "gamma", New: "GAMMA"},
	}

	report, err := patcher.Apply(context.Background(), "target.ts", ops)
	require.NoError(t, err, "operation failures must not abort the run")

	require.Len(t, report, 3)
	assert.Equal(t, OutcomeApplied, report[0].Outcome)
	assert.Equal(t, OutcomeFailed, report[1].Outcome)
	assert.Equal(t, OutcomeApplied, report[2].Outcome)

	// The write still happens and carries the successful edits.
	assert.Equal(t, 1, files.writes, "exactly one write per run")
	assert.Equal(t, "ALPHA\nbeta\nGAMMA\n", string(files.files["target.ts"]))
}

func TestPatcher_Apply_OperationsCompose(t *testing.T) {
	files := newFakeFiles(map[string][]byte{
		"f.txt": []byte("a\nTODO: x\nb\n"),
	})
	patcher, err := New(files, Options{Marker: "TODO"})
	require.NoError(t, err)

	// The deletion sees the buffer the insertion produced, not the file on
	// disk: line 3 is the TODO line only after the insert above it.
	ops := []Operation{
		Insert{Anchor: `a\n`, Content: "a2\n", Position: PositionAfter},
		DeleteLines{Targets: []LineTarget{{Line: 3, Fragment: "TODO"}}},
	}

	report, err := patcher.Apply(context.Background(), "f.txt", ops)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Applied())
	assert.Equal(t, "a\na2\nb\n", string(files.files["f.txt"]))
}

func TestPatcher_Apply_ReadErrorIsFatal(t *testing.T) {
	files := newFakeFiles(map[string][]byte{})
	patcher, err := New(files, Options{})
	require.NoError(t, err)

	report, err := patcher.Apply(context.Background(), "missing.ts", []Operation{
		Replace{Old: "a", New: "b"},
	})

	require.Error(t, err)
	assert.Nil(t, report, "no report on a fatal I/O error")
	assert.Zero(t, files.writes, "nothing may be written")
}

func TestPatcher_Apply_WriteErrorIsFatal(t *testing.T) {
	files := newFakeFiles(map[string][]byte{
		"f.txt": []byte("content\n"),
	})
	files.failWrite = true
	patcher, err := New(files, Options{})
	require.NoError(t, err)

	_, err = patcher.Apply(context.Background(), "f.txt", []Operation{
		Replace{Old: "content", New: "patched"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing f.txt")
}

func TestPatcher_Apply_Backup(t *testing.T) {
	files := newFakeFiles(map[string][]byte{
		"f.txt": []byte("content\n"),
	})
	patcher, err := New(files, Options{Backup: true})
	require.NoError(t, err)

	_, err = patcher.Apply(context.Background(), "f.txt", []Operation{
		Replace{Old: "content", New: "patched"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, files.backups, "backup should run before the write")
}

func TestPatcher_Plan_DoesNotWrite(t *testing.T) {
	files := newFakeFiles(map[string][]byte{
		"f.txt": []byte("content\n"),
	})
	patcher, err := New(files, Options{})
	require.NoError(t, err)

	report, err := patcher.Plan(context.Background(), "f.txt", []Operation{
		Replace{Old: "content", New: "patched"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied(), "plan reports what apply would do")
	assert.Zero(t, files.writes, "plan never writes")
	assert.Equal(t, "content\n", string(files.files["f.txt"]), "file is untouched")
}

func TestNew_RequiresFileManager(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file manager is required")
}
