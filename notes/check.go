package notes

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algonotes/internal/logging"
)

var (
	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("notes: invalid option supplied")

	// ErrNotFound indicates that the document to check does not exist.
	ErrNotFound = errors.New("notes: document not found")
)

// Kind classifies a Problem.
type Kind int

const (
	// BrokenAnchor is a fragment that names no heading or HTML anchor.
	BrokenAnchor Kind = iota + 1
	// MissingFile is a relative link to a path that does not exist.
	MissingFile
	// MissingImage is an image whose file does not exist.
	MissingImage
	// BadExternal is an http(s) link that failed or answered with an error status.
	BadExternal
)

func (k Kind) String() string {
	switch k {
	case BrokenAnchor:
		return "broken-anchor"
	case MissingFile:
		return "missing-file"
	case MissingImage:
		return "missing-image"
	case BadExternal:
		return "bad-external"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes k by name, for YAML and JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Problem is one broken reference.
type Problem struct {
	Kind   Kind   `yaml:"kind"`
	Target string `yaml:"target"`
	Line   int    `yaml:"line"`
	Detail string `yaml:"detail,omitempty"`
}

func (p Problem) String() string {
	if p.Detail == "" {
		return fmt.Sprintf("%d: %s %s", p.Line, p.Kind, p.Target)
	}

	return fmt.Sprintf("%d: %s %s (%s)", p.Line, p.Kind, p.Target, p.Detail)
}

// Option configures a Checker.
type Option func(*Options)

// Options holds Checker settings.
type Options struct {
	// External enables probing of http(s) links.
	External bool

	// Client performs external requests.
	Client *http.Client

	// Workers bounds concurrent external requests.
	Workers int

	// Timeout bounds each request.
	Timeout time.Duration

	UserAgent string

	// Root resolves site-absolute references ("/docs/x.md"). Empty means
	// the directory of the checked document.
	Root string

	// Debounce is the quiet period Watch waits for before re-checking.
	Debounce time.Duration

	Logger logging.Logger

	err error
}

// DefaultOptions returns offline checking with 8 workers, a 10s request
// timeout and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Client:    http.DefaultClient,
		Workers:   8,
		Timeout:   10 * time.Second,
		UserAgent: "algonotes-check/1.0",
		Debounce:  100 * time.Millisecond,
		Logger:    logging.Nop(),
	}
}

// WithExternal enables or disables probing of http(s) links.
func WithExternal(on bool) Option {
	return func(o *Options) { o.External = on }
}

// WithHTTPClient sets the client used for external requests; nil is an ErrOptionViolation.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil http client", ErrOptionViolation)
			return
		}
		o.Client = c
	}
}

// WithWorkers bounds concurrent requests; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTimeout bounds each request; d <= 0 is an ErrOptionViolation.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: timeout must be positive, got %s", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header of requests. Empty is ignored.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		if ua != "" {
			o.UserAgent = ua
		}
	}
}

// WithRoot sets the directory that site-absolute references resolve against.
func WithRoot(dir string) Option {
	return func(o *Options) { o.Root = dir }
}

// WithDebounce sets the quiet period of Watch; d < 0 is an ErrOptionViolation.
func WithDebounce(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: debounce must not be negative, got %s", ErrOptionViolation, d)
			return
		}
		o.Debounce = d
	}
}

// WithLogger sets the progress logger. nil is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Checker verifies the references of markdown documents.
// A Checker is safe for concurrent use.
type Checker struct {
	opts Options
}

// NewChecker applies opts over DefaultOptions.
func NewChecker(opts ...Option) (*Checker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Checker{opts: o}, nil
}

// Check parses the file at path and returns its problems sorted by line.
// The error is non-nil only when the file cannot be read or ctx ends.
func (c *Checker) Check(ctx context.Context, path string) ([]Problem, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	return c.CheckDocument(ctx, doc)
}

// CheckDocument checks an already parsed document. Relative references
// resolve against the directory of doc.Path.
//
// Complexity: O(L) file-system lookups for L references, plus one request per
// distinct external URL when enabled.
func (c *Checker) CheckDocument(ctx context.Context, doc *Document) ([]Problem, error) {
	run := &checkRun{
		c:     c,
		doc:   doc,
		dir:   filepath.Dir(doc.Path),
		docs:  map[string]*Document{filepath.Clean(doc.Path): doc},
		links: make(map[string][]Link),
	}
	for _, l := range doc.Links {
		run.ref(l, MissingFile)
	}
	for _, l := range doc.Images {
		run.ref(l, MissingImage)
	}
	if err := run.external(ctx); err != nil {
		return nil, err
	}

	slices.SortStableFunc(run.problems, func(a, b Problem) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.Target, b.Target))
	})
	c.opts.Logger.Debug(ctx, "checked", "path", doc.Path,
		"links", len(doc.Links), "images", len(doc.Images), "problems", len(run.problems))

	return run.problems, nil
}

// checkRun is the state of one CheckDocument call.
type checkRun struct {
	c        *Checker
	doc      *Document
	dir      string
	docs     map[string]*Document // parsed .md targets by cleaned path
	links    map[string][]Link    // external URL -> occurrences
	order    []string             // external URLs in first-seen order
	problems []Problem
}

func (r *checkRun) report(kind Kind, l Link, detail string) {
	r.problems = append(r.problems, Problem{Kind: kind, Target: l.Target, Line: l.Line, Detail: detail})
}

// ref classifies one reference; missing is the Kind for an absent file.
func (r *checkRun) ref(l Link, missing Kind) {
	target := strings.TrimSpace(l.Target)
	if target == "" {
		return
	}
	if frag, ok := strings.CutPrefix(target, "#"); ok {
		if !r.doc.HasAnchor(frag) {
			r.report(BrokenAnchor, l, "no heading or anchor with this name")
		}
		return
	}

	u, err := url.Parse(target)
	if err != nil {
		r.report(missing, l, "unparsable reference")
		return
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if r.c.opts.External {
			key := u.String()
			if u.Fragment != "" {
				stripped := *u
				stripped.Fragment = ""
				key = stripped.String()
			}
			if _, seen := r.links[key]; !seen {
				r.order = append(r.order, key)
			}
			r.links[key] = append(r.links[key], l)
		}
		return
	case "":
	default:
		return
	}
	if u.Host != "" {
		return
	}

	path := r.resolve(u.Path)
	info, err := os.Stat(path)
	if err != nil {
		r.report(missing, l, "no such file")
		return
	}
	if u.Fragment == "" || info.IsDir() || !isMarkdown(path) {
		return
	}
	other, err := r.parsed(path)
	if err != nil {
		r.report(missing, l, err.Error())
		return
	}
	if !other.HasAnchor(u.Fragment) {
		r.report(BrokenAnchor, l, "no heading or anchor with this name in "+filepath.Base(path))
	}
}

func (r *checkRun) resolve(p string) string {
	if strings.HasPrefix(p, "/") {
		root := r.c.opts.Root
		if root == "" {
			root = r.dir
		}
		return filepath.Join(root, filepath.FromSlash(p))
	}

	return filepath.Join(r.dir, filepath.FromSlash(p))
}

func (r *checkRun) parsed(path string) (*Document, error) {
	key := filepath.Clean(path)
	if d, ok := r.docs[key]; ok {
		return d, nil
	}
	d, err := ParseFile(key)
	if err != nil {
		return nil, err
	}
	r.docs[key] = d

	return d, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}

	return false
}

// external requests every collected URL once on a bounded pool.
func (r *checkRun) external(ctx context.Context) error {
	if len(r.order) == 0 {
		return nil
	}
	details := make([]string, len(r.order))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.c.opts.Workers)
	for i, u := range r.order {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			details[i] = r.c.fetch(gctx, u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, u := range r.order {
		if details[i] == "" {
			continue
		}
		for _, l := range r.links[u] {
			r.report(BadExternal, l, details[i])
		}
	}

	return nil
}

// fetch returns "" when u answers with a status below 400, else a short
// description of the failure. HEAD is tried first; servers that refuse or
// mishandle it get a GET.
func (c *Checker) fetch(ctx context.Context, u string) string {
	status, err := c.request(ctx, http.MethodHead, u)
	if err == nil && status < http.StatusBadRequest {
		c.opts.Logger.Debug(ctx, "external link ok", "url", u, "method", "HEAD", "status", status)
		return ""
	}
	status, err = c.request(ctx, http.MethodGet, u)
	if err != nil {
		c.opts.Logger.Warn(ctx, err, "external link failed", "url", u)
		return err.Error()
	}
	if status >= http.StatusBadRequest {
		c.opts.Logger.Debug(ctx, "external link bad status", "url", u, "status", status)
		return fmt.Sprintf("status %d", status)
	}
	c.opts.Logger.Debug(ctx, "external link ok", "url", u, "method", "GET", "status", status)

	return ""
}

func (c *Checker) request(ctx context.Context, method, u string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.opts.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	return resp.StatusCode, nil
}
