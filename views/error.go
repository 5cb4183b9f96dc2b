package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/khorlingling/site/content"
)

// ErrorPage is the HTML response for failed page requests.
func ErrorPage(info content.Info, code int, message string) templ.Component {
	status := http.StatusText(code)
	if message == "" {
		message = status
	}
	body := component(func(o *out) {
		o.raw(`<main class="container error-page"><p class="error-code">`)
		o.text(strconv.Itoa(code))
		o.raw(`</p><h1>`)
		o.text(status)
		o.raw(`</h1><p>`)
		o.text(message)
		o.raw(`</p><a class="btn btn-dark" href="/">Back to home</a></main>`)
	})
	title := status
	if info.Name != "" {
		title = status + " | " + info.Name
	}
	return Layout(info, title, body)
}
