package config

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/patchrc/pkg/patch"
)

// 📖 FileReader reads companion content files for content_from insertions
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// 🔄 Operations converts a patch block into the ordered operation sequence
// the engine consumes: insertions first, then all line deletions as one
// batch, then substitutions. content_from insertions resolve their content
// here, so a missing companion file surfaces before any edit runs.
func (p *Patch) Operations(ctx context.Context, files FileReader) ([]patch.Operation, error) {
	ops := make([]patch.Operation, 0, len(p.Inserts)+len(p.Replaces)+1)

	for i, ins := range p.Inserts {
		content := ins.Content
		if ins.ContentFrom != "" {
			data, err := files.ReadFile(ctx, ins.ContentFrom)
			if err != nil {
				return nil, errors.Errorf("insert %d: reading content_from: %w", i, err)
			}
			content = dropLeadingLines(string(data), ins.SkipLines)
		}

		pos, err := patch.ParsePosition(ins.Position)
		if err != nil {
			return nil, errors.Errorf("insert %d: %w", i, err)
		}

		ops = append(ops, patch.Insert{
			Anchor:   ins.Anchor,
			Content:  content,
			Position: pos,
		})
	}

	if len(p.Deletes) > 0 {
		targets := make([]patch.LineTarget, 0, len(p.Deletes))
		for _, del := range p.Deletes {
			targets = append(targets, patch.LineTarget{
				Line:     del.Line,
				Fragment: del.Fragment,
			})
		}
		ops = append(ops, patch.DeleteLines{Targets: targets})
	}

	for _, sub := range p.Replaces {
		ops = append(ops, patch.Replace{Old: sub.Old, New: sub.New})
	}

	return ops, nil
}

// dropLeadingLines removes the first n lines of s
func dropLeadingLines(s string, n int) string {
	if n <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if n >= len(lines) {
		return ""
	}
	return strings.Join(lines[n:], "\n")
}
