// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Semenov

// Package secrets scrubs credential-shaped substrings from text before it is
// written to any log line.
package secrets

import (
	"regexp"
	"strings"
)

// MaskToken replaces every matched secret value. It must never itself match a
// value pattern in a way that changes on a second pass; Redact is idempotent.
const MaskToken = "***MASKED***"

// maskedBearer is the fingerprint left behind once the Bearer rule has fired.
const maskedBearer = "Bearer " + MaskToken

// redactRule is a single key/value masking pattern. The pattern must capture
// the key prefix in group 1; the value is replaced with MaskToken.
type redactRule struct {
	pattern *regexp.Regexp

	// genericAuthorization marks the catch-all authorization rule, which is
	// suppressed once a Bearer value has already been masked so the mask
	// token is not processed a second time.
	genericAuthorization bool
}

// redactRules is an explicitly ordered pipeline. Ordering is a contract:
// the Bearer-specific rule runs before the generic authorization rule, and
// its effect is checked before the generic rule is applied. Values are
// matched up to the next whitespace, ampersand, or quote character.
var redactRules = []redactRule{
	{pattern: regexp.MustCompile(`(?i)(authorization\s*:\s*Bearer\s+)([^\s"']+)`)},
	{pattern: regexp.MustCompile(`(?i)(authorization\s*:\s*)([^\s"']+)`), genericAuthorization: true},
	{pattern: regexp.MustCompile(`(?i)(password\s*[=:]\s*)([^\s&"']+)`)},
	{pattern: regexp.MustCompile(`(?i)(token\s*[=:]\s*)([^\s&"']+)`)},
	{pattern: regexp.MustCompile(`(?i)(api[_-]?key\s*[=:]\s*)([^\s&"']+)`)},
	{pattern: regexp.MustCompile(`(?i)(secret\s*[=:]\s*)([^\s&"']+)`)},
}

// Redact masks credential-shaped substrings in text so the result is safe to
// log. It is a pure function and idempotent: applying it twice yields the
// same result as applying it once.
func Redact(text string) string {
	result := text
	hasBearerMasked := strings.Contains(result, maskedBearer)

	for _, rule := range redactRules {
		if rule.genericAuthorization && hasBearerMasked {
			continue
		}

		result = rule.pattern.ReplaceAllString(result, "${1}"+MaskToken)

		if !hasBearerMasked && strings.Contains(result, maskedBearer) {
			hasBearerMasked = true
		}
	}

	return result
}
