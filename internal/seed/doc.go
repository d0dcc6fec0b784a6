// Package seed converts user-supplied seed strings into hash seeds of a fixed
// width.
//
// Strings are parsed with [cast] (decimal, or 0x-prefixed hex) and narrowed
// with [safemath], so a seed that does not fit the requested width is
// reported instead of silently truncated.
package seed
