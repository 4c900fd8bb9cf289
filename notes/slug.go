package notes

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Slug returns the GitHub-style anchor for a heading text, without
// de-duplication.
func Slug(text string) string {
	return slugify(cases.Lower(language.Und), text)
}

func slugify(lower cases.Caser, text string) string {
	s := lower.String(norm.NFC.String(strings.TrimSpace(text)))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsLetter(r), unicode.IsNumber(r), unicode.IsMark(r):
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Slugger hands out unique slugs for the headings of one document.
// A Slugger is not safe for concurrent use.
type Slugger struct {
	lower cases.Caser
	seen  map[string]int
}

// NewSlugger returns an empty Slugger.
func NewSlugger() *Slugger {
	return &Slugger{lower: cases.Lower(language.Und), seen: make(map[string]int)}
}

// Slug returns the slug for text, suffixed "-1", "-2", ... when an earlier
// heading already produced it.
func (s *Slugger) Slug(text string) string {
	base := slugify(s.lower, text)
	slug := base
	if n, dup := s.seen[base]; dup {
		for {
			n++
			slug = base + "-" + strconv.Itoa(n)
			if _, taken := s.seen[slug]; !taken {
				break
			}
		}
		s.seen[base] = n
	}
	if _, ok := s.seen[slug]; !ok {
		s.seen[slug] = 0
	}

	return slug
}
