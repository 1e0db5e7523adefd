/*
Package walker copies a project directory tree to a new location, renaming
every entry and rewriting every text occurrence of the project name on the
way through.

	 source/                      destination/
	 ├── test-dir-1          →    ├── test-dir-1
	 │   └── test-project.md →    │   └── copied-project.md
	 └── logo.png            →    └── logo.png  (raw copy)

🎯 Purpose:
- Walks the source tree recursively
- Renames files and directories through the casing transformer
- Rewrites UTF-8 file content; copies everything else byte-for-byte
- Skips entries matching ignore globs

🔄 Flow:
1. Validate source and destination
2. For each directory: create the renamed directory, process entries
3. For each file: transform text content or raw-copy binary content
4. Report a Summary of what happened

⚡ Notes:
- Existing destination files are never overwritten
- DryRun logs every planned operation without touching the filesystem
- Async fans file work out per directory; the transformer is stateless, so
  files are independent
*/
package walker
