// Package templates embeds the HTML views rendered by the web front
// controller.
package templates

import "embed"

//go:embed *.html layouts auth
var FS embed.FS
