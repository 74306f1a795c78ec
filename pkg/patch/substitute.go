package patch

// apply performs a literal global replacement in one pass over the whole
// buffer. A search string that never occurs is a skip, not an error: the
// patch scripts use substitutions opportunistically.
func (op Replace) apply(buf *Buffer, opts Options) []Result {
	if op.Old == "" {
		return []Result{{Op: op.Describe(), Outcome: OutcomeSkipped, Reason: "empty literal"}}
	}

	count := buf.Count(op.Old)
	if count == 0 {
		return []Result{{Op: op.Describe(), Outcome: OutcomeSkipped, Reason: "literal not found"}}
	}

	buf.ReplaceAll(op.Old, op.New)
	return []Result{{Op: op.Describe(), Outcome: OutcomeApplied, Replacements: count}}
}
