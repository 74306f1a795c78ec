package patch

import (
	"strings"
)

// 📄 Buffer holds the full text of one file while it is being patched. The
// content is exposed both as a single string and as a 1-based sequence of
// lines; every mutation goes through methods that keep the two views
// consistent, so an operation always sees the output of the previous one.
type Buffer struct {
	content string
}

// 🏭 NewBuffer creates a buffer from raw file content
func NewBuffer(content []byte) *Buffer {
	return &Buffer{content: string(content)}
}

// 📝 String returns the current content as a string
func (b *Buffer) String() string {
	return b.content
}

// 📝 Bytes returns the current content as bytes
func (b *Buffer) Bytes() []byte {
	return []byte(b.content)
}

// Lines returns the 1-based line view. Each line keeps its trailing newline,
// so joining the slice back together reproduces the content exactly.
func (b *Buffer) Lines() []string {
	if b.content == "" {
		return nil
	}
	lines := strings.SplitAfter(b.content, "\n")
	// A trailing newline produces an empty final element that is not a line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// LineCount returns the number of lines in the buffer
func (b *Buffer) LineCount() int {
	return len(b.Lines())
}

// Line returns the content of the given 1-based line number
func (b *Buffer) Line(n int) (string, bool) {
	lines := b.Lines()
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// 🔄 SetLines replaces the content from a line slice, restoring the
// character view from the line view
func (b *Buffer) SetLines(lines []string) {
	b.content = strings.Join(lines, "")
}

// 🔄 InsertAt splices content into the buffer at the given byte offset
func (b *Buffer) InsertAt(offset int, content string) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(b.content) {
		offset = len(b.content)
	}
	b.content = b.content[:offset] + content + b.content[offset:]
}

// 🔍 Count returns the number of non-overlapping occurrences of s
func (b *Buffer) Count(s string) int {
	return strings.Count(b.content, s)
}

// 🔄 ReplaceAll replaces every non-overlapping occurrence of old with new
func (b *Buffer) ReplaceAll(old, new string) {
	b.content = strings.ReplaceAll(b.content, old, new)
}
