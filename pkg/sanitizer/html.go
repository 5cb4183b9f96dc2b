package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  *bluemonday.Policy
	contentPolicy *bluemonday.Policy
	initOnce      sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Page content is authored markdown with a little layout markup.
		contentPolicy = bluemonday.UGCPolicy()
		contentPolicy.AllowAttrs("class").Globally()
		contentPolicy.AllowElements("section", "article", "figure", "figcaption")
		contentPolicy.AddTargetBlankToFullyQualifiedLinks(true)
	})
}

// StripHTML removes every tag and returns the text content.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeContent keeps the formatting rendered from markdown (headings,
// lists, links, quotes, class attributes) and removes scripts, event
// handlers, inline styles and unsafe URL schemes.
func SanitizeContent(s string) string {
	initPolicies()
	return contentPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a caller-supplied policy.
// A nil policy returns s unchanged.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
