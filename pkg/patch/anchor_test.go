package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestResolver_Locate(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		pattern   string
		wantStart int
		wantEnd   int
		wantErr   error
	}{
		{
			name:      "single_match",
			content:   "class X {\n  f() {}\n}\n\n// end",
			pattern:   `\}\n\n// end`,
			wantStart: 19,
			wantEnd:   28,
		},
		{
			name:    "no_match",
			content: "hello world",
			pattern: `\}\n\n// end`,
			wantErr: ErrAnchorNotFound,
		},
		{
			name:      "multiple_matches_first_wins",
			content:   "aXbXc",
			pattern:   "X",
			wantStart: 1,
			wantEnd:   2,
		},
		{
			name:      "match_at_start",
			content:   "marker rest",
			pattern:   "marker",
			wantStart: 0,
			wantEnd:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver()
			start, end, err := resolver.Locate(NewBuffer([]byte(tt.content)), tt.pattern)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should match sentinel")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start, "start offset should match")
			assert.Equal(t, tt.wantEnd, end, "end offset should match")
		})
	}
}

func TestResolver_Locate_InvalidPattern(t *testing.T) {
	resolver := NewResolver()
	_, _, err := resolver.Locate(NewBuffer([]byte("content")), "[unclosed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling anchor pattern")
	assert.False(t, errors.Is(err, ErrAnchorNotFound), "compile failure is not a missing anchor")
}
