package recipe

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// IdentityFromPath derives the record identity from a document path:
// the base name with its extension stripped.
func IdentityFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NormalizeIdentity produces the canonical form used for collision
// detection. Two documents whose identities agree after NFC normalization
// and case folding would write the same output artifact on common
// filesystems, so they are treated as duplicates.
func NormalizeIdentity(identity string) string {
	return cases.Fold().String(norm.NFC.String(identity))
}
