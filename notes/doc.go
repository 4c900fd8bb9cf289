// Package notes checks the markdown notes that ship with this module.
//
// A rendered note is only ever observed through its headings, anchors,
// images and hyperlinks, so those are the things this package verifies:
//
//   - every "#fragment" resolves to a heading slug or an HTML name/id,
//   - every relative file or image reference exists on disk (and a fragment
//     into another .md file resolves inside that file),
//   - every absolute http(s) link answers with a non-error status
//     (opt-in with WithExternal).
//
// Parsing
//
//	Parse builds a goldmark AST with the GitHub extensions (tables,
//	strikethrough, bare-URL autolinks) and footnotes, then walks it for
//	headings, links, images and autolinks. Raw HTML is tokenised with
//	golang.org/x/net/html for <a href>, <a name>, id="..." and <img src>.
//	Code blocks and code spans never yield links, and reference-style links
//	are reported on the line that uses them.
//
// Slugs
//
//	Headings get GitHub-style anchors computed from the rendered heading
//	text, so emphasis, link markup and escapes are gone before slugging.
//	The text is NFC-normalised and lower-cased with golang.org/x/text/cases,
//	punctuation is dropped and each space becomes "-".
//	Repeated headings get "-1", "-2", ... suffixes in document order.
//
// Concurrency
//
//	External links are de-duplicated and requested on a bounded errgroup pool
//	(WithWorkers): HEAD first, GET when HEAD fails or is refused.
//
// Watching
//
//	Checker.Watch re-runs the check whenever the file is written, using
//	fsnotify on the parent directory so editors that replace the file on
//	save are followed too.
//
// Errors
//
//   - ErrOptionViolation  an Option was invalid.
//   - ErrNotFound         Check on a file that does not exist.
//
// Problems found in a document are values, not errors: Check returns a nil
// error together with the list of Problems.
package notes
