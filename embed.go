// Package ridgeline embeds the site's templates, assets, locales and authored content
// so every binary ships a complete copy.
package ridgeline

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl templates/partials/*.tmpl
var templates embed.FS

//go:embed public/assets
var assets embed.FS

//go:embed locales/*.json
var locales embed.FS

//go:embed content/pages
var pages embed.FS

func TemplatesFS() (fs.FS, error) {
	return fs.Sub(templates, "templates")
}

func AssetsFS() (fs.FS, error) {
	return fs.Sub(assets, "public/assets")
}

func LocalesFS() (fs.FS, error) {
	return fs.Sub(locales, "locales")
}

// ContentFS exposes markdown pages laid out as <lang>/<slug>.md.
func ContentFS() (fs.FS, error) {
	return fs.Sub(pages, "content/pages")
}
