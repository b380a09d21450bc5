// Package mdbuild assembles Markdown documents through chained calls.
//
// A Builder accumulates text in an append-only buffer. Every structural
// operation writes its lines followed by a blank separator line and returns
// the same Builder, so documents read top to bottom:
//
//	md := mdbuild.New().
//		Heading1("Release notes").
//		Paragraph("Highlights of this release.").
//		BulletedList([]string{"Faster startup", "Smaller binary"}).
//		Markdown()
//
// The builder trusts its caller. Inputs are not validated or escaped: pipes
// inside table cells, fences inside code blocks and mismatched row lengths are
// written as given.
//
// A Builder is not safe for concurrent use.
package mdbuild

import "strings"

// Builder accumulates Markdown text.
// The zero value is an empty builder ready to use.
type Builder struct {
	buf strings.Builder
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Write appends text verbatim.
func (b *Builder) Write(text string) *Builder {
	b.buf.WriteString(text)
	return b
}

// WriteLine appends text followed by a newline.
func (b *Builder) WriteLine(text string) *Builder {
	return b.Write(text).Write("\n")
}

// LineBreak appends a single newline. Most blocks end with one to leave an
// empty line before the next block.
func (b *Builder) LineBreak() *Builder {
	return b.Write("\n")
}

// Len returns the size of the raw buffer in bytes, before trimming.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Markdown returns the accumulated document with leading and trailing
// whitespace removed. It does not modify the buffer and may be called at any
// point during construction.
func (b *Builder) Markdown() string {
	return strings.TrimSpace(b.buf.String())
}

// String implements fmt.Stringer. It is equivalent to Markdown.
func (b *Builder) String() string {
	return b.Markdown()
}
