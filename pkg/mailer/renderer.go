package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/khorlingling/site/pkg/frontmatter"
)

const (
	textExt = ".txt"
	htmlExt = ".html"
)

// Renderer renders text and HTML email bodies from an fs.FS.
// Parsed templates are cached; rendered output never is.
type Renderer struct {
	fs fs.FS

	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
	templateDir   string
	layoutDir     string

	mu sync.RWMutex
}

type cachedTemplate struct {
	metadata map[string]any
	text     *texttemplate.Template
	html     *template.Template // nil when the template has no HTML part
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(filesystem fs.FS, opts RendererConfig) *Renderer {
	if opts.TemplateDir == "" {
		opts.TemplateDir = "."
	}
	if opts.LayoutDir == "" {
		opts.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:            filesystem,
		templateDir:   opts.TemplateDir,
		layoutDir:     opts.LayoutDir,
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*template.Template),
	}
}

// RenderResult holds rendered bodies and the template's frontmatter.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Render executes template name with data. The HTML part, when present, is
// wrapped in layout; an empty layout leaves it unwrapped.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}

	var text bytes.Buffer
	if err := cached.text.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("%w: execute text %s: %v", ErrRenderFailed, name, err)
	}

	result := &RenderResult{
		Text:     text.String(),
		Metadata: cached.metadata,
	}
	if cached.html == nil {
		return result, nil
	}

	var body bytes.Buffer
	if err := cached.html.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("%w: execute html %s: %v", ErrRenderFailed, name, err)
	}
	if layout == "" {
		result.HTML = body.String()
		return result, nil
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var final bytes.Buffer
	// body was produced by html/template, so it is already escaped.
	if err := layoutTmpl.Execute(&final, map[string]any{
		"Content":  template.HTML(body.String()),
		"Metadata": cached.metadata,
	}); err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}
	result.HTML = final.String()
	return result, nil
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	if cached, ok := r.templateCache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	base := path.Join(r.templateDir, name)

	content, err := fs.ReadFile(r.fs, base+textExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}
	doc, err := frontmatter.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}
	text, err := texttemplate.New(name + textExt).Parse(string(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s%s: %v", ErrRenderFailed, name, textExt, err)
	}

	cached := &cachedTemplate{metadata: doc.Metadata, text: text}

	htmlContent, err := fs.ReadFile(r.fs, base+htmlExt)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("%w: %s%s: %v", ErrTemplateNotFound, name, htmlExt, err)
	default:
		cached.html, err = template.New(name + htmlExt).Parse(string(htmlContent))
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s%s: %v", ErrRenderFailed, name, htmlExt, err)
		}
	}

	r.templateCache[name] = cached
	return cached, nil
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	r.mu.RLock()
	if cached, ok := r.layoutCache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	layoutTmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layoutCache[name] = layoutTmpl
	return layoutTmpl, nil
}
