/*
Package config loads and validates patchrc configuration files.

🎯 Purpose:
- Parses patch scripts from YAML, JSON or HCL (.patchrc tries YAML then HCL)
- Validates the patch blocks before any file is touched
- Converts patch blocks into the engine's operation sequence

🔄 Flow:
1. Load reads the file and picks a parser by extension
2. The parser decodes into PatchrcConfig and validates
3. Patch.Operations resolves content_from companions and yields the
   ordered []patch.Operation for one target file

📝 Design Philosophy:
The config file is the only "configuration" patchrc has: it is literally the
operation list, made explicit as data instead of literals inlined in a
script. Parsers are registered so new formats slot in without touching Load.
*/
package config
