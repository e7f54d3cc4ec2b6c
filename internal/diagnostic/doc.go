// Package diagnostic collects structured errors, warnings and notes produced
// while checking remap settings.
//
// Validation never stops at the first problem. Every finding is recorded with
// a stable code (e.g. "duplicate_rule") and the rule and field it concerns,
// so a caller can show all of them at once or filter by code.
package diagnostic
