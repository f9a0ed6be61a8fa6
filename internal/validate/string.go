package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxStringLength is the default upper bound applied by [CheckLength] when
// the caller passes maxLength <= 0.
const MaxStringLength = 10000

// dangerousPatterns is the ordered, case-insensitive denylist scanned by
// [CheckFormat]. The first matching pattern determines the rejection message,
// so more specific entries come before the generic comment tokens.
var dangerousPatterns = []string{
	"<script",      // XSS
	"</script",     // XSS
	"javascript:",  // XSS
	"onerror=",     // XSS
	"onload=",      // XSS
	"';",           // SQL injection
	"\";",          // SQL injection
	"--",           // SQL comment
	"/*",           // SQL comment
	"*/",           // SQL comment
	"xp_",          // SQL Server extended procedure
	"sp_",          // SQL Server stored procedure
	"union select", // SQL injection
	"drop table",   // SQL injection
	"delete from",  // SQL injection
}

// sqlKeywords combined with a semicolon anywhere in the value trigger the
// secondary rejection rule of [CheckFormat]. This catches obfuscated variants
// that dodge the exact denylist substrings.
var sqlKeywords = []string{"drop", "delete", "insert"}

// CheckLength verifies that the length of value, measured in characters
// rather than bytes, lies between minLength and maxLength. A maxLength <= 0
// falls back to [MaxStringLength].
//
// Both bounds are inclusive: a value of exactly minLength or maxLength
// passes.
func CheckLength(value string, minLength, maxLength int) Outcome {
	if maxLength <= 0 {
		maxLength = MaxStringLength
	}

	length := utf8.RuneCountInString(value)
	if length < minLength {
		return Reject(fmt.Sprintf("string length %d is below minimum %d", length, minLength))
	}
	if length > maxLength {
		return Reject(fmt.Sprintf("string length %d exceeds maximum %d", length, maxLength))
	}

	return Accept()
}

// CheckFormat scans value for substrings associated with injection classes
// (XSS script fragments and SQL artifacts) and rejects on the first match.
//
// A secondary rule rejects any value containing a semicolon together with one
// of the keywords drop/delete/insert, independent of the denylist scan.
//
// The scan is substring-based, not a parser; it is deliberately conservative
// and may reject legitimate text containing these tokens.
func CheckFormat(value string) Outcome {
	lower := strings.ToLower(value)

	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return Reject(fmt.Sprintf("string contains dangerous pattern: %s", pattern))
		}
	}

	if strings.Contains(value, ";") {
		for _, keyword := range sqlKeywords {
			if strings.Contains(lower, keyword) {
				return Reject("string contains dangerous pattern: semicolon with SQL keywords")
			}
		}
	}

	return Accept()
}
