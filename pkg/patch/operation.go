package patch

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📍 Position selects which side of a resolved anchor new content goes on
type Position int

const (
	PositionBefore Position = iota // Insert at the start of the anchor match
	PositionAfter                  // Insert past the end of the anchor match
)

// String returns a string representation of Position
func (p Position) String() string {
	if p == PositionAfter {
		return "after"
	}
	return "before"
}

// 🔍 ParsePosition parses "before" or "after"
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "before":
		return PositionBefore, nil
	case "after":
		return PositionAfter, nil
	default:
		return PositionBefore, errors.Errorf("invalid position %q (want before or after)", s)
	}
}

// 🔧 Options carries settings shared by all operations in one run
type Options struct {
	// Marker is a substring that always satisfies a line deletion's content
	// guard (e.g. "TODO"), in addition to the per-target expected fragment.
	Marker string
	// Backup writes a .bak copy of each file before the final write.
	Backup bool
}

// 🎯 Operation is one declarative, immutable edit instruction. Operations are
// supplied by the caller and applied in submission order against a shared
// buffer; each produces one or more results for the report.
type Operation interface {
	// Describe returns a short label for the report
	Describe() string

	apply(buf *Buffer, opts Options) []Result
}

// ➕ Insert adds content at an anchor located by a regular expression.
// Re-applying an Insert whose anchor still matches inserts a duplicate copy;
// the original patch scripts were written for single manual execution and
// callers are responsible for at-most-once application per buffer.
type Insert struct {
	Anchor   string   // Anchor pattern (regexp semantics, first match wins)
	Content  string   // Content to insert
	Position Position // Before or After the anchor match
}

// Describe implements Operation.Describe
func (op Insert) Describe() string {
	return fmt.Sprintf("insert %s %q", op.Position, truncate(op.Anchor, 40))
}

func (op Insert) apply(buf *Buffer, opts Options) []Result {
	resolver := NewResolver()

	start, end, err := resolver.Locate(buf, op.Anchor)
	if err != nil {
		reason := "anchor not found"
		if !errors.Is(err, ErrAnchorNotFound) {
			reason = err.Error()
		}
		return []Result{{Op: op.Describe(), Outcome: OutcomeFailed, Reason: reason}}
	}

	offset := start
	if op.Position == PositionAfter {
		offset = end
	}

	// A trailing newline keeps the inserted content from gluing onto the
	// original text that follows it.
	content := op.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	buf.InsertAt(offset, content)
	return []Result{{Op: op.Describe(), Outcome: OutcomeApplied}}
}

// 🗑️ LineTarget identifies one line to delete and the content it must hold
type LineTarget struct {
	Line     int    // 1-based line number
	Fragment string // Expected substring of the line's content
}

// 🗑️ DeleteLines removes a batch of lines identified by line number, each
// guarded by its expected content. Targets may arrive in any order; they are
// processed in descending line order so earlier removals never shift the
// line numbers of targets still to be processed.
type DeleteLines struct {
	Targets []LineTarget
}

// Describe implements Operation.Describe
func (op DeleteLines) Describe() string {
	return fmt.Sprintf("delete %d line(s)", len(op.Targets))
}

// 🔄 Replace substitutes every non-overlapping occurrence of a literal
// search string in one pass over the whole buffer
type Replace struct {
	Old string // Literal search string
	New string // Replacement string
}

// Describe implements Operation.Describe
func (op Replace) Describe() string {
	return fmt.Sprintf("replace %q", truncate(op.Old, 40))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
