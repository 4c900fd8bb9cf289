package notes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algonotes/notes"
)

const sample = "# Big O Notation\n" + // 1
	"\n" +
	"<a name=\"top\"></a>\n" + // 3
	"Contents: [classes](#complexity-classes), [P vs NP](#p-vs-np).\n" +
	"\n" +
	"Complexity Classes\n" + // 6
	"==================\n" +
	"\n" +
	"![chart](assets/complexity_chart.PNG \"Chart\")\n" + // 9
	"\n" +
	"```go\n" + // 11
	"// [not a link](nowhere.md)\n" +
	"## not a heading\n" +
	"```\n" +
	"\n" +
	"Use `[x](y.md)` literally. See <https://www.bigocheatsheet.com/>.\n" + // 16
	"\n" +
	"## P vs NP ##\n" + // 18
	"\n" +
	"<img src=\"assets/np.png\" alt=\"np\"> and <a href=\"../sorting/\">sorting</a>\n" + // 20
	"<span id=\"custom-anchor\">x</span>\n" +
	"\n" +
	"[![badge](assets/badge.svg)](https://example.com/ci)\n" + // 23
	"\n" +
	"## P vs NP\n" + // 25
	"\n" +
	"Ref image ![logo][logo] and [ref link][docs].\n" + // 27
	"\n" +
	"[logo]: assets/logo.png\n" + // 29
	"[docs]: ../docs/readme.md \"Docs\"\n" +
	"[^1]: a footnote\n" +
	"Wikipedia [Big O](https://en.wikipedia.org/wiki/Big_O_(notation)).\n" // 32

type at struct {
	target string
	line   int
}

func targets(ls []notes.Link) []at {
	out := make([]at, len(ls))
	for i, l := range ls {
		out[i] = at{l.Target, l.Line}
	}
	return out
}

func TestParse_Headings(t *testing.T) {
	doc := notes.Parse("notes.md", []byte(sample))
	assert.Equal(t, "notes.md", doc.Path)
	assert.Equal(t, []notes.Heading{
		{Level: 1, Text: "Big O Notation", Slug: "big-o-notation", Line: 1},
		{Level: 1, Text: "Complexity Classes", Slug: "complexity-classes", Line: 6},
		{Level: 2, Text: "P vs NP", Slug: "p-vs-np", Line: 18},
		{Level: 2, Text: "P vs NP", Slug: "p-vs-np-1", Line: 25},
	}, doc.Headings)
}

func TestParse_LinksAndImages(t *testing.T) {
	doc := notes.Parse("notes.md", []byte(sample))

	assert.Equal(t, []at{
		{"#complexity-classes", 4},
		{"#p-vs-np", 4},
		{"https://www.bigocheatsheet.com/", 16},
		{"../sorting/", 20},
		{"https://example.com/ci", 23},
		{"../docs/readme.md", 27},
		{"https://en.wikipedia.org/wiki/Big_O_(notation)", 32},
	}, targets(doc.Links))

	assert.Equal(t, []at{
		{"assets/complexity_chart.PNG", 9},
		{"assets/np.png", 20},
		{"assets/badge.svg", 23},
		{"assets/logo.png", 27},
	}, targets(doc.Images))

	assert.Equal(t, "classes", doc.Links[0].Text)
	assert.Equal(t, "badge", doc.Links[4].Text)
	assert.Equal(t, "ref link", doc.Links[5].Text, "reference links are reported where they are used")
	assert.Equal(t, "Big O", doc.Links[6].Text)
}

func TestParse_Anchors(t *testing.T) {
	doc := notes.Parse("notes.md", []byte(sample))
	assert.Equal(t, []string{
		"big-o-notation", "complexity-classes", "custom-anchor", "p-vs-np", "p-vs-np-1", "top",
	}, doc.Anchors())

	assert.True(t, doc.HasAnchor("P-vs-NP"), "case-insensitive fallback")
	assert.True(t, doc.HasAnchor("custom%2Danchor"), "percent-decoded")
	assert.False(t, doc.HasAnchor("not-a-heading"), "headings inside fences are ignored")
}

func TestParse_SetextNeedsParagraph(t *testing.T) {
	src := "- item\n---\n\n---\n\nTwo line\nheading\n---\n"
	doc := notes.Parse("x.md", []byte(src))
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, notes.Heading{Level: 2, Text: "Two line heading", Slug: "two-line-heading", Line: 6}, doc.Headings[0])
}

func TestParse_HeadingMarkup(t *testing.T) {
	src := "## The `sort` package\n" +
		"### [Linked](https://example.com) *title*\n" +
		"#### <a name=\"legacy\"></a>HTML heading\n" +
		"#5 is not a heading\n" +
		"## C#\n" +
		"## _Emphasis_ heading\n" +
		"## __Strong__ and snake_case\n" +
		"## Escaped \\*star\\* &amp; co\n" +
		"[emphasis](#emphasis-heading)\n"
	doc := notes.Parse("x.md", []byte(src))
	require.Len(t, doc.Headings, 7)
	assert.Equal(t, "the-sort-package", doc.Headings[0].Slug)
	assert.Equal(t, "Linked title", doc.Headings[1].Text)
	assert.Equal(t, "linked-title", doc.Headings[1].Slug)
	assert.Equal(t, "html-heading", doc.Headings[2].Slug)
	assert.Equal(t, "c", doc.Headings[3].Slug)
	assert.Equal(t, "Emphasis heading", doc.Headings[4].Text)
	assert.Equal(t, "emphasis-heading", doc.Headings[4].Slug)
	assert.Equal(t, "strong-and-snake_case", doc.Headings[5].Slug, "intraword underscores are kept")
	assert.Equal(t, "Escaped *star* & co", doc.Headings[6].Text)
	assert.Equal(t, "escaped-star--co", doc.Headings[6].Slug)
	assert.True(t, doc.HasAnchor("legacy"))
	assert.True(t, doc.HasAnchor("emphasis-heading"))
	assert.False(t, doc.HasAnchor("_emphasis_-heading"))
	assert.Equal(t, []at{{"https://example.com", 2}, {"#emphasis-heading", 9}}, targets(doc.Links))
}

func TestParse_IndentedCodeIsIgnored(t *testing.T) {
	src := "Para\n" +
		"\n" +
		"    [x](#nope)\n" +
		"    ## not a heading\n" +
		"\n" +
		"[y](#para)\n"
	doc := notes.Parse("x.md", []byte(src))
	assert.Empty(t, doc.Headings)
	assert.Equal(t, []at{{"#para", 6}}, targets(doc.Links))
}

func TestParse_BareURLsAndFootnotes(t *testing.T) {
	src := "See https://example.com/a and www.example.org for more.[^1]\n" +
		"\n" +
		"Mail me@example.com.\n" +
		"\n" +
		"[^1]: Footnote with [a link](other.md).\n"
	doc := notes.Parse("x.md", []byte(src))
	assert.Equal(t, []at{
		{"https://example.com/a", 1},
		{"http://www.example.org", 1},
		{"other.md", 5},
	}, targets(doc.Links))
}

func TestParse_FenceVariants(t *testing.T) {
	src := "~~~~\n" +
		"```\n" + // shorter, different fence char: still inside
		"[a](a.md)\n" +
		"~~~~\n" +
		"[b](b.md)\n" +
		"``` `not a fence`\n" +
		"[c](c.md)\n"
	doc := notes.Parse("x.md", []byte(src))
	assert.Equal(t, []at{{"b.md", 5}, {"c.md", 7}}, targets(doc.Links))
}

func TestParse_CRLF(t *testing.T) {
	doc := notes.Parse("x.md", []byte("# One\r\n\r\n[x](#one)\r\n"))
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, "one", doc.Headings[0].Slug)
	assert.Equal(t, []at{{"#one", 3}}, targets(doc.Links))
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := notes.ParseFile("does/not/exist.md")
	assert.ErrorIs(t, err, notes.ErrNotFound)
}
