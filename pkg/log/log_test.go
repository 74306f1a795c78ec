package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()

	// Plain output so assertions don't fight ANSI escapes
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return New(&buf, zerolog.Disabled), &buf
}

func TestLogger_FileRun(t *testing.T) {
	ctx := context.Background()
	logger, buf := newTestLogger(t)

	logger.StartFileRun(ctx, FileRun{Path: "src/app.ts", Operations: 2})
	logger.LogOperation(ctx, OperationLine{
		Op:      `insert before "// end"`,
		Outcome: "applied",
	})
	logger.LogOperation(ctx, OperationLine{
		Op:      "delete line 3",
		Outcome: "skipped",
		Reason:  "content mismatch",
	})
	logger.EndFileRun(ctx)

	out := buf.String()
	assert.Contains(t, out, "[patching src/app.ts]")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "content mismatch")
}

func TestLogger_FileRun_DryRun(t *testing.T) {
	ctx := context.Background()
	logger, buf := newTestLogger(t)

	logger.StartFileRun(ctx, FileRun{Path: "src/app.ts", DryRun: true})

	assert.Contains(t, buf.String(), "[planning src/app.ts]")
}

func TestLogger_FormatOperationLine(t *testing.T) {
	logger, _ := newTestLogger(t)

	tests := []struct {
		name string
		line OperationLine
		want []string
	}{
		{
			name: "applied_with_replacements",
			line: OperationLine{Op: `replace "a"`, Outcome: "applied", Replacements: 3},
			want: []string{"✓", "applied", "3 replacement(s)"},
		},
		{
			name: "failed_with_reason",
			line: OperationLine{Op: "insert", Outcome: "failed", Reason: "anchor not found"},
			want: []string{"✗", "failed", "anchor not found"},
		},
		{
			name: "skipped",
			line: OperationLine{Op: "delete line 9", Outcome: "skipped", Reason: "out of range"},
			want: []string{"-", "skipped", "out of range"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logger.formatOperationLine(tt.line)
			for _, fragment := range tt.want {
				assert.Contains(t, got, fragment)
			}
		})
	}
}

func TestLogger_Messages(t *testing.T) {
	logger, buf := newTestLogger(t)

	logger.Header("applying patches")
	logger.Success("done")
	logger.Warningf("%d file(s) skipped", 2)
	logger.Error("run failed")

	out := buf.String()
	assert.Contains(t, out, "patchrc")
	assert.Contains(t, out, "applying patches")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "2 file(s) skipped")
	assert.Contains(t, out, "run failed")
}

func TestLogger_Context(t *testing.T) {
	logger, _ := newTestLogger(t)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	require.Panics(t, func() {
		FromContext(context.Background())
	})
}
