// Package views renders the single-page site and its error page.
package views

import (
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/khorlingling/site/content"
)

const (
	stylesheet   = "/static/css/site.css"
	contactJS    = "/static/js/contact.js"
	contactRoute = "/api/contact"
)

// Layout wraps body in the HTML document shell with the site metadata.
func Layout(info content.Info, title string, body templ.Component) templ.Component {
	if title == "" {
		title = info.Title
	}
	return component(func(o *out) {
		o.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		o.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		o.raw(`<title>`)
		o.text(title)
		o.raw(`</title>`)
		meta(o, "name", "description", info.Description)
		meta(o, "name", "keywords", strings.Join(info.Keywords, ", "))
		meta(o, "name", "author", info.Name)
		meta(o, "property", "og:title", title)
		meta(o, "property", "og:description", info.Description)
		meta(o, "property", "og:url", info.URL)
		meta(o, "property", "og:type", "website")
		meta(o, "property", "og:locale", "en_SG")
		o.raw(`<meta name="robots" content="index, follow">`)
		o.raw(`<link rel="stylesheet"`)
		o.attr("href", stylesheet)
		o.raw(`></head><body>`)
		o.render(body)
		o.raw(`</body></html>`)
	})
}

func meta(o *out, key, name, value string) {
	if value == "" {
		return
	}
	o.raw(`<meta`)
	o.attr(key, name)
	o.attr("content", value)
	o.raw(`>`)
}

// Page is the full home page.
func Page(site *content.Site) templ.Component {
	nav := append(site.Nav(), content.NavItem{Label: "Contact", Anchor: "contact"})

	body := component(func(o *out) {
		o.render(Nav(site.Info.Name, nav))
		o.raw(`<main class="container">`)
		for _, sec := range site.Sections {
			o.render(Section(sec))
		}
		o.render(ContactSection(site.Info))
		o.raw(`</main>`)
		o.render(Footer(site.Info, nav))
		o.raw(`<script`)
		o.attr("src", contactJS)
		o.raw(` defer></script>`)
	})

	return Layout(site.Info, "", body)
}

// Nav renders the sticky top navigation.
func Nav(name string, items []content.NavItem) templ.Component {
	return component(func(o *out) {
		o.raw(`<nav class="topnav"><div class="container topnav-inner">`)
		o.raw(`<a class="brand" href="#home"><span class="brand-mark">`)
		if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
			o.text(string(r))
		}
		o.raw(`</span>`)
		o.text(name)
		o.raw(`</a><ul class="topnav-links">`)
		for _, item := range items {
			o.raw(`<li><a`)
			o.attr("href", "#"+item.Anchor)
			o.raw(`>`)
			o.text(item.Label)
			o.raw(`</a></li>`)
		}
		o.raw(`</ul></div></nav>`)
	})
}

// Section renders one content section. Its HTML was sanitized on load.
func Section(sec content.Section) templ.Component {
	return component(func(o *out) {
		o.raw(`<section class="section"`)
		o.attr("id", sec.Anchor)
		o.raw(`>`)
		if sec.Title != "" {
			o.raw(`<h2 class="section-heading">`)
			o.text(sec.Title)
			o.raw(`</h2>`)
		}
		o.render(templ.Raw(sec.HTML))
		o.raw(`</section>`)
	})
}

// Footer renders the page footer.
func Footer(info content.Info, items []content.NavItem) templ.Component {
	return component(func(o *out) {
		o.raw(`<footer class="footer"><div class="container footer-inner"><div><h3>`)
		o.text(info.Name)
		o.raw(`</h3><p>`)
		o.text(info.Tagline)
		o.raw(`</p></div><ul class="footer-links">`)
		for _, item := range items {
			o.raw(`<li><a`)
			o.attr("href", "#"+item.Anchor)
			o.raw(`>`)
			o.text(item.Label)
			o.raw(`</a></li>`)
		}
		o.raw(`</ul><p class="copyright">`)
		o.text(info.Copyright)
		o.raw(`</p></div></footer>`)
	})
}
