// Package emails embeds the notification email templates.
//
// Each template is a name.txt file with YAML frontmatter (the Subject, itself
// a text template) and a plain-text body, plus an optional name.html body
// that is wrapped in layouts/base.html.
package emails

import "embed"

//go:embed *.txt *.html layouts/*.html
var FS embed.FS
