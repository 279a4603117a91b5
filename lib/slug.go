package lib

import (
	"github.com/gosimple/slug"
)

// Slugify derives a URL-safe slug from a display name.
// "Sillas de Jardín" -> "sillas-de-jardin".
func Slugify(name string) string {
	return slug.Make(name)
}
