package filecheck

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxExtensionLength bounds the extension carried over from a client-supplied
// filename into a generated storage name. Longer suffixes are dropped to
// avoid smuggling crafted extensions.
const maxExtensionLength = 10

// Resolution is the result of a containment check. ResolvedPath is only
// meaningful when OK is true and is guaranteed to lie within the base
// directory the check was performed against. Message is non-empty iff OK is
// false.
type Resolution struct {
	OK           bool
	ResolvedPath string
	Message      string
}

// SanitizeName strips any directory components and dangerous characters from
// a client-supplied filename, leaving only a bare name.
func SanitizeName(rawName string) string {
	name := filepath.Base(rawName)
	for _, dangerous := range []string{"/", "\\", "..", "\x00"} {
		name = strings.ReplaceAll(name, dangerous, "")
	}
	return name
}

// GenerateStorageName issues a fresh random token to use as the stored
// filename, ignoring the caller-supplied name for identity purposes. The
// original extension is preserved only when present and at most 10
// characters long.
func GenerateStorageName(rawName string) string {
	fileID := uuid.NewString()

	if rawName != "" {
		ext := filepath.Ext(rawName)
		if ext != "" && len(ext) <= maxExtensionLength {
			return fileID + ext
		}
	}

	return fileID
}

// Resolve is the containment proof for upload targets.
//
// The candidate is normalized, joined with the base directory and
// canonicalized to an absolute path; the result must lie inside the canonical
// base directory component-wise, not merely as a string prefix. Candidates
// escaping the base (traversal segments or absolute paths) are rejected.
//
// If the canonical target is a symbolic link the resolution is rejected
// unconditionally rather than validating the link target: a false positive
// costs a retry, following an attacker-controlled link costs the host.
func Resolve(candidateName, baseDirectory string) Resolution {
	baseAbs, err := filepath.Abs(baseDirectory)
	if err != nil {
		return Resolution{Message: "invalid path"}
	}

	normalized := filepath.Clean(candidateName)

	var targetAbs string
	if filepath.IsAbs(normalized) {
		targetAbs = normalized
	} else {
		targetAbs = filepath.Join(baseAbs, normalized)
	}

	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Resolution{Message: "path traversal detected: file outside upload directory"}
	}

	if info, err := os.Lstat(targetAbs); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return Resolution{Message: "symbolic links are not allowed"}
	}

	return Resolution{OK: true, ResolvedPath: targetAbs}
}
