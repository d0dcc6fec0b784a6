// Package match filters input paths by regular expression.
//
// Patterns compile with coregex (RE2-compatible, accelerated) unless they use
// PCRE/Perl-only constructs such as lookarounds or backreferences, in which
// case [regexp2] is used instead.
package match
