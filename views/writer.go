package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// out writes markup and keeps the first error, so components can write
// straight through and check once at the end.
type out struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (o *out) raw(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *out) text(s string) {
	o.raw(templ.EscapeString(s))
}

func (o *out) attr(name, value string) {
	o.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (o *out) render(c templ.Component) {
	if o.err != nil || c == nil {
		return
	}
	o.err = c.Render(o.ctx, o.w)
}

func component(fn func(o *out)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		o := &out{ctx: ctx, w: w}
		fn(o)
		return o.err
	})
}
