/*
Package patch implements the core patch-application engine for patchrc.

	+-----------+     +-----------+
	|  Buffer   | --> | Operation |
	| (content) |     |  (edits)  |
	+-----+-----+     +-----+-----+
	      |                 |
	      +-------+---------+
	              |
	       +------+------+
	       |   Patcher   |
	       | (apply/plan)|
	       +-------------+

🎯 Purpose:
- Locates insertion anchors with regular expression patterns
- Deletes lines by number, guarded by expected content
- Substitutes literal strings across a whole buffer
- Sequences operations over one buffer and reports each outcome

🔄 Flow:
1. Patcher reads the target file into a Buffer
2. Each Operation consumes and mutates the Buffer in submission order
3. Per-operation Results accumulate into a Report
4. The final buffer is written back atomically, once, best-effort

📝 Design Philosophy:
The buffer is an explicit, passable value so every operation is a pure
function over it and unit tests never touch a filesystem. Operation-level
problems (missing anchor, shifted line, absent literal) are values in the
Report, never errors; only file I/O escalates and aborts a run.
*/
package patch
