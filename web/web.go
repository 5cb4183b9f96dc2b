// Package web embeds the static assets served under /static/.
package web

import "embed"

//go:embed static
var Assets embed.FS

// Root is the directory inside Assets that maps to /static/.
const Root = "static"
