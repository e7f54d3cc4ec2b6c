// Package remap models keyboard remap rules and the settings document that
// stores them.
//
// # Rules
//
// A KeysRule maps one key sequence to another. Both sides are stored as ';'
// separated virtual-key codes (see package keys). An AppRule adds a target
// field: for app-specific shortcuts it names the application the rule is
// limited to, for run-program shortcuts it is a composite field carrying the
// program, its arguments and its working directory (see package targetspec).
//
// # Document
//
// Settings mirrors the JSON document written by the settings editor:
//
//	{
//	  "remapKeys":      { "inProcess":   [ {"originalKeys": "65", "newRemapKeys": "66"} ] },
//	  "remapShortcuts": {
//	    "global":      [ ... ],
//	    "appSpecific": [ {"originalKeys": "...", "newRemapKeys": "...", "targetApp": "msedge.exe"} ],
//	    "runProgram":  [ {"originalKeys": "162;65", "targetApp": "C:\\app.exe<|||>-x<|||>C:\\"} ]
//	  }
//	}
//
// Target fields are read and written verbatim; the document layer never
// re-encodes them.
//
// # Equality
//
// Rules compare byte for byte on original keys, new keys and target. Two
// rules that differ only in letter case are different rules. Comparing
// against a nil rule is an error (ErrNilRule), not false.
package remap
