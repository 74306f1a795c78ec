/*
Package status manages file storage and per-file outcome tracking for patchrc.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Tracker |
	| (Storage) |           | (Sums)  |
	+-----------+           +---------+

🎯 Purpose:
- Reads target files and writes patched content atomically
- Keeps .bak backups and restores them on demand
- Records per-file applied/skipped/failed counts for the end-of-run summary

📝 Design Philosophy:
All file system access for the engine funnels through FileManager so the
patch package stays a pure transform and tests can swap in a fake. Writes
are temp-file + rename so a crashed run never leaves a half-written target.
*/
package status
