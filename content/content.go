// Package content loads the page's sections from markdown files with YAML
// frontmatter and the site metadata from site.yaml.
package content

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/khorlingling/site/pkg/frontmatter"
	"github.com/khorlingling/site/pkg/sanitizer"
)

//go:embed site.yaml sections/*.md
var Files embed.FS

var (
	ErrNoSections = errors.New("content: no sections found")
	ErrSection    = errors.New("content: invalid section")
	ErrSiteInfo   = errors.New("content: invalid site.yaml")
)

// Info is the site-wide metadata.
type Info struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Keywords    []string `yaml:"keywords"`
	Tagline     string   `yaml:"tagline"`
	Copyright   string   `yaml:"copyright"`
	LinkedIn    string   `yaml:"linkedin"`
	Email       string   `yaml:"email"`
}

// Section is one rendered page section.
type Section struct {
	Anchor string `yaml:"anchor"`
	Title  string `yaml:"title"`
	Nav    string `yaml:"nav"` // empty keeps the section out of the navigation
	Order  int    `yaml:"order"`
	HTML   string `yaml:"-"`
}

// Site is everything the page needs.
type Site struct {
	Info     Info
	Sections []Section
}

// NavItem is a navigation link.
type NavItem struct {
	Label  string
	Anchor string
}

// Nav lists sections that have a nav label, in page order.
func (s *Site) Nav() []NavItem {
	items := make([]NavItem, 0, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.Nav != "" {
			items = append(items, NavItem{Label: sec.Nav, Anchor: sec.Anchor})
		}
	}
	return items
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, Buttons),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Load reads site.yaml and sections/*.md from fsys. Sections are rendered
// concurrently, sanitized, and sorted by their order field.
func Load(ctx context.Context, fsys fs.FS) (*Site, error) {
	info, err := loadInfo(fsys)
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(fsys, "sections/*.md")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSections
	}

	var (
		mu       sync.Mutex
		sections = make([]Section, 0, len(files))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sec, err := loadSection(fsys, name)
			if err != nil {
				return err
			}
			mu.Lock()
			sections = append(sections, sec)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(sections, func(a, b Section) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Anchor, b.Anchor)
	})

	for i := 1; i < len(sections); i++ {
		if sections[i].Anchor == sections[i-1].Anchor {
			return nil, fmt.Errorf("%w: duplicate anchor %q", ErrSection, sections[i].Anchor)
		}
	}

	return &Site{Info: info, Sections: sections}, nil
}

func loadInfo(fsys fs.FS) (Info, error) {
	raw, err := fs.ReadFile(fsys, "site.yaml")
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrSiteInfo, err)
	}
	var info Info
	if err := yaml.Unmarshal(raw, &info); err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrSiteInfo, err)
	}
	if info.Title == "" {
		return Info{}, fmt.Errorf("%w: title is required", ErrSiteInfo)
	}
	return info, nil
}

func loadSection(fsys fs.FS, name string) (Section, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Section{}, err
	}

	var sec Section
	body, err := frontmatter.Decode(raw, &sec)
	if err != nil {
		return Section{}, fmt.Errorf("%w: %s: %v", ErrSection, name, err)
	}
	if sec.Anchor == "" {
		sec.Anchor = strings.TrimSuffix(path.Base(name), ".md")
	}

	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return Section{}, fmt.Errorf("%w: %s: %v", ErrSection, name, err)
	}
	sec.HTML = sanitizer.SanitizeContent(buf.String())
	return sec, nil
}
