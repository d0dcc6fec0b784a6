package match

import "strings"

// pcreOnly lists constructs that RE2 rejects but PCRE accepts. Only the
// forms plausible in path filters are checked.
var pcreOnly = []string{
	// Lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	// Atomic, branch-reset, conditional and comment groups
	"(?>", "(?|", "(?(", "(?#",
	// Recursion and named calls
	"(?R)", "(?P>", "(?&",
	// Possessive-style and PCRE-only escapes
	`\h`, `\H`, `\R`, `\K`, `\G`, `\Z`,
	// Named backreferences
	`\k<`, `\k'`, `\k{`, `(?P=`,
}

// needsPCRE reports whether expr uses features only regexp2 can execute.
func needsPCRE(expr string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(expr, tok) {
			return true
		}
	}

	// Numbered backreferences \1 .. \9.
	escaped := false
	for i := 0; i < len(expr); i++ {
		if expr[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(expr) && expr[i+1] >= '1' && expr[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// Go only understands (?P<name>...) for named groups.
	if !strings.Contains(expr, "(?P<") &&
		(strings.Contains(expr, "(?<") || strings.Contains(expr, "(?'")) {
		return true
	}

	return false
}
