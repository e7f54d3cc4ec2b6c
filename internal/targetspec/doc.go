// Package targetspec encodes and decodes the composite target field of a
// remap rule.
//
// A remap rule that launches a program stores everything about that program
// in a single string so that the settings document keeps one "targetApp"
// value per rule. Up to three parts are packed into that string, separated by
// the reserved token "<|||>":
//
//	C:\tools\app.exe<|||>--profile work<|||>C:\work
//	^ primary (program)  ^ secondary (args)  ^ tertiary (working directory)
//
// # Rules
//
//   - The delimiter is matched literally. There is no escaping, so a part can
//     never contain "<|||>".
//   - Decoding is total. Empty input, delimiter-only input, leading or
//     trailing delimiters and empty parts are all accepted.
//   - Parts beyond the third are dropped. Overflow reports them.
//   - A value without any delimiter is a bare legacy path and decodes to
//     itself as the primary part.
//   - Presence checks count parts, not non-empty parts: "app<|||><|||>dir"
//     has an empty secondary and a tertiary of "dir".
//
// Nothing in this package touches the filesystem; PrimaryBaseName is a pure
// string operation.
package targetspec
