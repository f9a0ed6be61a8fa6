// Package filecheck implements binary content inspection and upload path
// containment for file uploads crossing the trust boundary.
//
// Content classification relies on magic-byte sniffing only; the MIME type a
// client declares is treated as a claim to verify, never as a source of
// truth. Disagreement between the declared type and the detected one is
// itself rejected, because that disagreement is the signal of an attack.
package filecheck

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/dsemenov/go-shield/internal/validate"
)

// MaxFileSize is the upload size limit. Files of exactly this size are
// accepted, anything above is rejected.
const MaxFileSize = 10 * 1024 * 1024 // 10 MiB

// textProbeSize is how many leading bytes must decode as UTF-8 for content
// with no known signature to classify as plain text.
const textProbeSize = 512

// signature maps a fixed byte prefix to the MIME type it identifies.
type signature struct {
	magic []byte
	mime  string
}

// magicTable is checked in order; the first matching prefix wins.
var magicTable = []signature{
	{[]byte{0xFF, 0xD8, 0xFF}, "image/jpeg"},
	{[]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "image/png"},
	{[]byte("%PDF"), "application/pdf"},
}

// allowedMIMETypes is the fixed allow-list of types an upload may resolve to.
var allowedMIMETypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
	"text/plain":      {},
}

// Inspection is the result of a content inspection.
//
// DetectedType is populated whenever a signature matched, even when the
// overall outcome is a rejection (e.g. a disallowed type); it is diagnostic,
// not a pass signal. Message is non-empty iff OK is false.
type Inspection struct {
	OK           bool
	DetectedType string
	Message      string
}

// DetectType classifies content by its leading bytes against the magic-byte
// table. Content with no known signature whose first 512 bytes decode as
// UTF-8 classifies as "text/plain". Returns "" when no classification is
// possible.
func DetectType(content []byte) string {
	for _, sig := range magicTable {
		if bytes.HasPrefix(content, sig.magic) {
			return sig.mime
		}
	}

	probe := content
	if len(probe) > textProbeSize {
		probe = probe[:textProbeSize]
	}
	if utf8.Valid(probe) {
		return "text/plain"
	}

	return ""
}

// Inspect validates file content against the magic-byte table and the fixed
// MIME allow-list.
//
// Rejections, in evaluation order:
//   - empty content;
//   - no detectable type;
//   - declaredMIMEType supplied and different from the detected type — this
//     fires even when the declared type would itself be acceptable;
//   - detected type outside the allow-list.
//
// Pass declaredMIMEType == "" to skip the declared-vs-detected comparison.
func Inspect(content []byte, declaredMIMEType string) Inspection {
	if len(content) == 0 {
		return Inspection{Message: "file is empty"}
	}

	detected := DetectType(content)
	if detected == "" {
		return Inspection{Message: "unknown file type or invalid content"}
	}

	if declaredMIMEType != "" && declaredMIMEType != detected {
		return Inspection{
			DetectedType: detected,
			Message:      fmt.Sprintf("MIME type mismatch: declared %s, detected %s", declaredMIMEType, detected),
		}
	}

	if _, ok := allowedMIMETypes[detected]; !ok {
		return Inspection{
			DetectedType: detected,
			Message:      fmt.Sprintf("file type %s is not allowed", detected),
		}
	}

	return Inspection{OK: true, DetectedType: detected}
}

// CheckSize verifies an upload size against maxSize. A maxSize <= 0 falls
// back to [MaxFileSize]. Equality to the limit is accepted.
//
// The size check is independent of content inspection and in practice runs
// before it, so oversized payloads are rejected without being read.
func CheckSize(size int64, maxSize int64) validate.Outcome {
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}

	if size > maxSize {
		return validate.Reject(fmt.Sprintf("file size exceeds maximum allowed size of %d bytes", maxSize))
	}

	return validate.Accept()
}
