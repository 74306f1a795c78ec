package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert_Apply(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		op          Insert
		want        string
		wantOutcome Outcome
		wantReason  string
	}{
		{
			name:    "before_closing_brace_marker",
			content: "class X {\n  f() {}\n}\n\n// end",
			op: Insert{
				Anchor:   `\}\n\n// end`,
				Content:  "  g() {}\n",
				Position: PositionBefore,
			},
			want:        "class X {\n  f() {}\n  g() {}\n}\n\n// end",
			wantOutcome: OutcomeApplied,
		},
		{
			name:    "after_anchor",
			content: "// header\nbody\n",
			op: Insert{
				Anchor:   `// header\n`,
				Content:  "inserted\n",
				Position: PositionAfter,
			},
			want:        "// header\ninserted\nbody\n",
			wantOutcome: OutcomeApplied,
		},
		{
			name:    "trailing_newline_is_ensured",
			content: "one\ntwo\n",
			op: Insert{
				Anchor:   `two`,
				Content:  "mid", // no trailing newline supplied
				Position: PositionBefore,
			},
			want:        "one\nmid\ntwo\n",
			wantOutcome: OutcomeApplied,
		},
		{
			name:    "anchor_not_found",
			content: "unrelated content",
			op: Insert{
				Anchor:   `\}\n\n// end`,
				Content:  "x\n",
				Position: PositionBefore,
			},
			want:        "unrelated content",
			wantOutcome: OutcomeFailed,
			wantReason:  "anchor not found",
		},
		{
			name:    "invalid_anchor_pattern",
			content: "content",
			op: Insert{
				Anchor:   "[unclosed",
				Content:  "x\n",
				Position: PositionBefore,
			},
			want:        "content",
			wantOutcome: OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer([]byte(tt.content))

			results := tt.op.apply(buf, Options{})

			require.Len(t, results, 1)
			assert.Equal(t, tt.want, buf.String(), "buffer content should match")
			assert.Equal(t, tt.wantOutcome, results[0].Outcome, "outcome should match")
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, results[0].Reason, "reason should match")
			}
		})
	}
}

func TestInsert_NotIdempotent(t *testing.T) {
	// Re-running an insertion whose anchor still matches duplicates the
	// content. Callers own at-most-once application; this pins the behavior.
	buf := NewBuffer([]byte("body\n// end\n"))
	op := Insert{Anchor: `// end`, Content: "added\n", Position: PositionBefore}

	op.apply(buf, Options{})
	op.apply(buf, Options{})

	assert.Equal(t, 2, buf.Count("added\n"), "second run inserts a duplicate copy")
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Position
		wantErr bool
	}{
		{name: "before", input: "before", want: PositionBefore},
		{name: "after", input: "after", want: PositionAfter},
		{name: "empty_defaults_to_before", input: "", want: PositionBefore},
		{name: "case_insensitive", input: "After", want: PositionAfter},
		{name: "invalid", input: "around", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReport_Counts(t *testing.T) {
	report := Report{
		{Outcome: OutcomeApplied},
		{Outcome: OutcomeSkipped},
		{Outcome: OutcomeApplied},
		{Outcome: OutcomeFailed},
	}

	assert.Equal(t, 2, report.Applied())
	assert.Equal(t, 1, report.Skipped())
	assert.Equal(t, 1, report.Failed())
	assert.False(t, report.Ok())
	assert.True(t, Report{{Outcome: OutcomeSkipped}}.Ok(), "skips alone are ok")
}
