// Package templates embeds the HTML pages so the web binary ships as a
// single file with no on-disk template directory to locate.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
