package catalog

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify derives the stable catalog identifier for a product:
// "<manufacturer>-<name>" lowercased with runs of non-alphanumerics
// collapsed into single hyphens.
func Slugify(manufacturer, name string) string {
	slug := strings.ToLower(manufacturer + "-" + name)
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
