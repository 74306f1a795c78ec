/*
Package operation implements the run-level logic for applying patch scripts.

	+-------------+
	|  Operation  |
	| (Run Logic) |
	+------+------+
	       |
	+------+------+
	|    Patch    |
	|  (Engine)   |
	+------+------+

🎯 Purpose:
- Expands patch blocks into concrete per-file runs (glob targets included)
- Drives the patch engine over each target file
- Records per-file outcomes and folds failures into the run result

🔄 Flow:
1. expand resolves operations and target paths for every patch block
2. Each file is read, patched and written back by pkg/patch
3. Outcomes are tracked in pkg/status and rendered through pkg/log
4. A file failing on I/O is recorded and the run continues

🤝 Interfaces:
- Files: target file access and outcome tracking (pkg/status)
- Config: the parsed patch script (pkg/config)

📝 Design Philosophy:
The operation package is orchestration glue: it owns which files get
patched and what happens around a run, while every real edit decision
lives in pkg/patch. Runs are best-effort across files the same way the
engine is best-effort across operations.
*/
package operation
