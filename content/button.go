package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ButtonNode is a call-to-action link.
type ButtonNode struct {
	ast.BaseInline
	URL     []byte
	Label   []byte
	Variant []byte
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":     string(n.URL),
		"Variant": string(n.Variant),
	}, nil)
}

// KindButton is the node kind for ButtonNode.
var KindButton = ast.NewNodeKind("Button")

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

const buttonPrefix = "[!button"

// buttonParser parses [!button|Label](url) and [!button:variant|Label](url).
type buttonParser struct{}

func (p *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (p *buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(buttonPrefix)) {
		return nil
	}
	rest := line[len(buttonPrefix):]

	var variant []byte
	if len(rest) > 0 && rest[0] == ':' {
		bar := bytes.IndexByte(rest, '|')
		if bar < 2 {
			return nil
		}
		variant = rest[1:bar]
		rest = rest[bar:]
	}
	if len(rest) == 0 || rest[0] != '|' {
		return nil
	}
	rest = rest[1:]

	labelEnd := bytes.IndexByte(rest, ']')
	if labelEnd < 1 || labelEnd+1 >= len(rest) || rest[labelEnd+1] != '(' {
		return nil
	}
	label := rest[:labelEnd]

	urlPart := rest[labelEnd+2:]
	urlEnd := bytes.IndexByte(urlPart, ')')
	if urlEnd < 1 {
		return nil
	}
	url := urlPart[:urlEnd]

	consumed := len(line) - len(urlPart) + urlEnd + 1
	block.Advance(consumed)

	return &ButtonNode{URL: url, Label: label, Variant: variant}
}

type buttonRenderer struct {
	html.Config
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (r *buttonRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ButtonNode)

	variant := n.Variant
	if len(variant) == 0 {
		variant = []byte("primary")
	}

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, false)))
	_, _ = w.WriteString(`" class="btn btn-`)
	_, _ = w.Write(util.EscapeHTML(variant))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

type buttonExtension struct{}

func (e *buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&buttonRenderer{Config: html.NewConfig()}, 50),
	))
}

// Buttons is a goldmark extension for call-to-action links.
var Buttons goldmark.Extender = &buttonExtension{}
