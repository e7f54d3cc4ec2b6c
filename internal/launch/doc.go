// Package launch turns the target of a run-program rule into a process
// description.
//
// The arguments part of a target is a single string. It is split on
// whitespace with shell-style quoting in non-POSIX mode, so backslashes in
// Windows paths are kept as written and a token wrapped in quotes loses the
// outer pair. A target whose program is RefreshConfig does not start a
// process; it asks the runner to reload its settings.
package launch
