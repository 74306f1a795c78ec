package patch

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🚫 ErrAnchorNotFound is returned when an anchor pattern has no match
var ErrAnchorNotFound = errors.New("anchor not found")

// 🔍 Resolver locates insertion anchors inside a buffer. Patterns use regular
// expression syntax and are expected to match at most once in a well-formed
// target file; if a pattern is ambiguous the first match in document order
// wins. That is a deliberate policy, not an error, because patch scripts
// construct their anchors to be unique.
type Resolver struct{}

// 🏭 NewResolver creates a new Resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// 🎯 Locate returns the byte range [start, end) of the first match of
// pattern in the buffer. Returns ErrAnchorNotFound if there is no match.
func (r *Resolver) Locate(buf *Buffer, pattern string) (start int, end int, err error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, 0, errors.Errorf("compiling anchor pattern: %w", err)
	}

	loc := re.FindStringIndex(buf.String())
	if loc == nil {
		return 0, 0, ErrAnchorNotFound
	}

	return loc[0], loc[1], nil
}
