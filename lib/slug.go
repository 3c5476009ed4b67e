package lib

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// MakeSlug converts a display name into a URL-safe slug.
// Output contains only lowercase letters, digits, hyphens and underscores,
// with no leading, trailing or consecutive hyphens.
func MakeSlug(name string) string {
	return slug.Make(name)
}

// MakeUniqueSlug appends a suffix to the base slug so that concurrently
// generated slugs never collide
func MakeUniqueSlug(name, suffix string) string {
	return slug.Make(name) + "-" + suffix
}

// ProductNameFromFilename derives a human-readable product name from an
// uploaded image filename: the extension is stripped, hyphens and
// underscores become spaces, and each word is title-cased.
// "blue_leather-bag.JPG" becomes "Blue Leather Bag".
func ProductNameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	return titleCaser.String(base)
}
