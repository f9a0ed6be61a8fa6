// Package validate implements the structural and semantic input checks that
// guard the trust boundary: string length and dangerous-pattern scanning plus
// bounded integer range checks.
//
// All checks are pure functions over their arguments and safe to call from
// any number of concurrent request handlers. Expected rejections are reported
// as an [Outcome] value, never as an error.
package validate

// Outcome is the result of a single validation check.
//
// Message is populated iff OK is false; a rejection always carries a
// non-empty human-readable message.
type Outcome struct {
	OK      bool
	Message string
}

// Accept returns a passing outcome.
func Accept() Outcome {
	return Outcome{OK: true}
}

// Reject returns a failing outcome carrying msg.
func Reject(msg string) Outcome {
	return Outcome{OK: false, Message: msg}
}
