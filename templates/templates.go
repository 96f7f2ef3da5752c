// Package templates embeds the HTML views rendered by the controllers.
package templates

import "embed"

// FS holds the layout and page templates
//
//go:embed *.html
var FS embed.FS
