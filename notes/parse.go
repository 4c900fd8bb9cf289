package notes

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"golang.org/x/net/html"
)

// Heading is one ATX or setext heading. Text is the rendered heading text
// the slug is derived from.
type Heading struct {
	Level int    `yaml:"level"`
	Text  string `yaml:"text"`
	Slug  string `yaml:"slug"`
	Line  int    `yaml:"line"`
}

// Link is a link or image reference found in a document.
type Link struct {
	Target string `yaml:"target"`
	Text   string `yaml:"text,omitempty"`
	Line   int    `yaml:"line"`
}

// Document is the checkable surface of one markdown file.
type Document struct {
	Path     string
	Headings []Heading
	Links    []Link
	Images   []Link

	anchors map[string]int // anchor -> first line defining it
}

// HasAnchor reports whether fragment (without '#') names a heading slug or
// an HTML name/id in d. Percent-encoding is decoded, and a fragment that
// differs from an anchor only by case still matches.
func (d *Document) HasAnchor(fragment string) bool {
	if f, err := url.PathUnescape(fragment); err == nil {
		fragment = f
	}
	if _, ok := d.anchors[fragment]; ok {
		return true
	}
	_, ok := d.anchors[strings.ToLower(fragment)]

	return ok
}

// Anchors returns every anchor of d, sorted.
func (d *Document) Anchors() []string {
	out := make([]string, 0, len(d.anchors))
	for a := range d.anchors {
		out = append(out, a)
	}
	slices.Sort(out)

	return out
}

// markdown parses GitHub-flavoured markdown: tables, strikethrough, task
// lists, bare-URL autolinks and footnotes.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))

type parser struct {
	doc   *Document
	src   []byte
	lines []int // byte offset of each line start
	slugs *Slugger
}

// Parse extracts the headings, anchors, links and images of a markdown
// source. path is recorded in the Document and used to resolve relative
// references later; it is not read.
//
// Reference-style links and images are reported where they are used.
// Code blocks, code spans and footnote markers never yield links.
//
// Complexity: O(len(src)).
func Parse(path string, src []byte) *Document {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	p := &parser{
		doc:   &Document{Path: path, anchors: make(map[string]int)},
		src:   src,
		lines: lineStarts(src),
		slugs: NewSlugger(),
	}
	root := markdown.Parser().Parse(text.NewReader(src))
	_ = ast.Walk(root, p.visit)

	byLine := func(a, b Link) int { return a.Line - b.Line }
	slices.SortStableFunc(p.doc.Links, byLine)
	slices.SortStableFunc(p.doc.Images, byLine)

	return p.doc
}

// ParseFile reads and parses the markdown file at path.
func ParseFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("notes: read %s: %w", path, err)
	}

	return Parse(path, src), nil
}

func (p *parser) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	switch n := n.(type) {
	case *ast.Heading:
		plain := p.plainText(n)
		slug := p.slugs.Slug(plain)
		line := p.line(n)
		p.doc.Headings = append(p.doc.Headings, Heading{Level: n.Level, Text: plain, Slug: slug, Line: line})
		p.anchor(slug, line)
	case *ast.Link:
		p.doc.Links = append(p.doc.Links, Link{Target: string(n.Destination), Text: p.plainText(n), Line: p.line(n)})
	case *ast.Image:
		p.doc.Images = append(p.doc.Images, Link{Target: string(n.Destination), Text: p.plainText(n), Line: p.line(n)})
	case *ast.AutoLink:
		if n.AutoLinkType != ast.AutoLinkURL {
			break
		}
		target := string(n.URL(p.src))
		if !strings.Contains(target, "://") {
			target = "http://" + target // linkified "www." host
		}
		p.doc.Links = append(p.doc.Links, Link{Target: target, Line: p.line(n)})
	case *ast.RawHTML:
		if n.Segments.Len() == 0 {
			break
		}
		var b strings.Builder
		for i := range n.Segments.Len() {
			seg := n.Segments.At(i)
			b.Write(seg.Value(p.src))
		}
		p.html(b.String(), p.lineOf(n.Segments.At(0).Start))
	case *ast.HTMLBlock:
		segs := n.Lines()
		for i := range segs.Len() {
			seg := segs.At(i)
			p.html(string(seg.Value(p.src)), p.lineOf(seg.Start))
		}
		if n.HasClosure() {
			p.html(string(n.ClosureLine.Value(p.src)), p.lineOf(n.ClosureLine.Start))
		}
	}

	return ast.WalkContinue, nil
}

func (p *parser) anchor(name string, n int) {
	if _, ok := p.doc.anchors[name]; !ok {
		p.doc.anchors[name] = n
	}
}

// html scans inline tags for a[href], a[name], img[src] and any id.
func (p *parser) html(s string, n int) {
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			name, more := z.TagName()
			tag := string(name)
			for more {
				var k, v []byte
				k, v, more = z.TagAttr()
				key, val := string(k), string(v)
				switch {
				case key == "id", key == "name" && tag == "a":
					p.anchor(val, n)
				case key == "href" && tag == "a":
					p.doc.Links = append(p.doc.Links, Link{Target: val, Line: n})
				case key == "src" && tag == "img":
					p.doc.Images = append(p.doc.Images, Link{Target: val, Line: n})
				}
			}
		}
	}
}

// plainText renders the inline content of n as the text a reader sees:
// emphasis and link markup dropped, escapes and entities resolved, image
// alt text kept, raw HTML tags skipped.
func (p *parser) plainText(n ast.Node) string {
	var b bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			v := t.Segment.Value(p.src)
			if _, code := t.Parent().(*ast.CodeSpan); !code {
				v = util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(v)))
			}
			b.Write(v)
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(p.src))
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// line returns the 1-based source line n starts on. Inline nodes carry no
// position of their own, so the first text inside them is used, then the
// text just before them, then the enclosing block.
func (p *parser) line(n ast.Node) int {
	for c := n; c != nil; c = c.Parent() {
		if c.Type() == ast.TypeBlock {
			if segs := c.Lines(); segs != nil && segs.Len() > 0 {
				return p.lineOf(segs.At(0).Start)
			}
			continue
		}
		if off, ok := firstOffset(c); ok {
			return p.lineOf(off)
		}
		for s := c.PreviousSibling(); s != nil; s = s.PreviousSibling() {
			if line, ok := p.lineAfter(s); ok {
				return line
			}
		}
	}

	return 1
}

// firstOffset finds the start of the first text or raw HTML inside n.
func firstOffset(n ast.Node) (int, bool) {
	off, found := 0, false
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			off, found = t.Segment.Start, true
		case *ast.RawHTML:
			if t.Segments.Len() > 0 {
				off, found = t.Segments.At(0).Start, true
			}
		}
		if found {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return off, found
}

// lineAfter reports the line on which the node following n starts, judged
// from the last text inside n.
func (p *parser) lineAfter(n ast.Node) (int, bool) {
	var last *ast.Text
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			last = t
		}
		return ast.WalkContinue, nil
	})
	if last == nil {
		return 0, false
	}
	line := p.lineOf(last.Segment.Stop)
	if last.SoftLineBreak() || last.HardLineBreak() {
		line++
	}

	return line, true
}

func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// lineOf maps a byte offset to its 1-based line.
func (p *parser) lineOf(off int) int {
	return sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > off })
}
