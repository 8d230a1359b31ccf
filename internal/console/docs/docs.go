// Package docs compiles the embedded Markdown documentation into HTML pages
// with navigation and per-page tables of contents. Content is read once at
// startup; pages are immutable afterwards.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed content/*.md
var contentFS embed.FS

// Heading is one table-of-contents entry extracted from a rendered page.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Page is one compiled documentation page.
type Page struct {
	Slug        string
	Title       string
	Description string
	Order       int
	HTML        string
	TOC         []Heading
}

// NavEntry is one link in the documentation sidebar.
type NavEntry struct {
	Slug  string
	Title string
}

// Site holds all compiled pages keyed by slug.
type Site struct {
	pages map[string]Page
	nav   []NavEntry
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, meta.Meta),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Load compiles the embedded documentation content.
func Load() (*Site, error) {
	return LoadFromFS(contentFS, "content")
}

// LoadFromFS compiles Markdown files under dir in the provided filesystem.
func LoadFromFS(fsys fs.FS, dir string) (*Site, error) {
	paths, err := fs.Glob(fsys, dir+"/*.md")
	if err != nil {
		return nil, fmt.Errorf("glob docs content: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no documentation pages found under %s", dir)
	}
	sort.Strings(paths)

	site := &Site{pages: make(map[string]Page, len(paths))}
	for _, path := range paths {
		source, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		page, err := compilePage(slugFromPath(path), source)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", path, err)
		}
		if _, exists := site.pages[page.Slug]; exists {
			return nil, fmt.Errorf("duplicate docs slug %q", page.Slug)
		}
		site.pages[page.Slug] = page
	}

	ordered := make([]Page, 0, len(site.pages))
	for _, page := range site.pages {
		ordered = append(ordered, page)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].Title < ordered[j].Title
	})
	site.nav = make([]NavEntry, 0, len(ordered))
	for _, page := range ordered {
		site.nav = append(site.nav, NavEntry{Slug: page.Slug, Title: page.Title})
	}
	return site, nil
}

// Page returns the page for a slug. The empty slug resolves to "index".
func (s *Site) Page(slug string) (Page, bool) {
	normalized := strings.Trim(strings.TrimSpace(slug), "/")
	if normalized == "" {
		normalized = "index"
	}
	page, ok := s.pages[normalized]
	return page, ok
}

// Nav returns sidebar entries ordered by front-matter order, then title.
func (s *Site) Nav() []NavEntry {
	nav := make([]NavEntry, len(s.nav))
	copy(nav, s.nav)
	return nav
}

func slugFromPath(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	return strings.TrimSuffix(base, ".md")
}

func compilePage(slug string, source []byte) (Page, error) {
	var rendered bytes.Buffer
	ctx := parser.NewContext()
	if err := markdown.Convert(source, &rendered, parser.WithContext(ctx)); err != nil {
		return Page{}, fmt.Errorf("render markdown: %w", err)
	}

	page := Page{Slug: slug, HTML: rendered.String()}
	for key, value := range meta.Get(ctx) {
		switch strings.ToLower(fmt.Sprintf("%v", key)) {
		case "title":
			page.Title = strings.TrimSpace(fmt.Sprintf("%v", value))
		case "description":
			page.Description = strings.TrimSpace(fmt.Sprintf("%v", value))
		case "order":
			if order, ok := value.(int); ok {
				page.Order = order
			}
		}
	}
	if page.Title == "" {
		return Page{}, fmt.Errorf("page %q: front-matter title is required", slug)
	}

	toc, err := extractHeadings(page.HTML)
	if err != nil {
		return Page{}, fmt.Errorf("extract headings: %w", err)
	}
	page.TOC = toc
	return page, nil
}

// extractHeadings walks the rendered fragment and collects h2/h3 headings.
func extractHeadings(fragment string) ([]Heading, error) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}

	var headings []Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "h2" || n.Data == "h3") {
			level := 2
			if n.Data == "h3" {
				level = 3
			}
			headings = append(headings, Heading{
				ID:    attrValue(n, "id"),
				Text:  strings.TrimSpace(nodeText(n)),
				Level: level,
			})
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return headings, nil
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var builder strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		builder.WriteString(nodeText(child))
	}
	return builder.String()
}
