// Package docspec describes Markdown documents as data.
// A Document is a list of blocks, usually loaded from YAML, that Render turns
// into Markdown with mdbuild.
package docspec

import (
	"errors"
	"fmt"
	"strings"
)

// Document is the root of a document description.
type Document struct {
	// Title, when set, is written as a level one heading before the blocks.
	Title string `yaml:"title,omitempty"`

	Blocks []Block `yaml:"blocks"`
}

// Block is one structural element. Which fields apply depends on Type.
type Block struct {
	Type string `yaml:"type"`

	// Text is used by paragraphs, headings, blockquotes and raw blocks.
	Text string `yaml:"text,omitempty"`

	// Items are the entries of bulleted and numbered lists.
	Items []string `yaml:"items,omitempty"`

	// Code is the literal body of a code block. Source names a file to read
	// the body from instead; the two are mutually exclusive.
	Code     string `yaml:"code,omitempty"`
	Source   string `yaml:"source,omitempty"`
	Language string `yaml:"language,omitempty"`

	// Table fields. Align holds "left", "center" or "right" per column.
	Columns []string   `yaml:"columns,omitempty"`
	Rows    [][]string `yaml:"rows,omitempty"`
	Align   []string   `yaml:"align,omitempty"`

	// Collapsible section fields.
	Title  string  `yaml:"title,omitempty"`
	Open   bool    `yaml:"open,omitempty"`
	Blocks []Block `yaml:"blocks,omitempty"`
}

// Kind identifies a block type after alias resolution.
type Kind string

const (
	KindParagraph  Kind = "paragraph"
	KindHeading1   Kind = "heading1"
	KindHeading2   Kind = "heading2"
	KindHeading3   Kind = "heading3"
	KindHeading4   Kind = "heading4"
	KindBlockquote Kind = "blockquote"
	KindBullets    Kind = "bullets"
	KindNumbered   Kind = "numbered"
	KindRule       Kind = "rule"
	KindCode       Kind = "code"
	KindTable      Kind = "table"
	KindDetails    Kind = "details"
	KindRaw        Kind = "raw"
)

// kindAliases maps accepted type names to kinds.
//
//nolint:gochecknoglobals // Read-only lookup table.
var kindAliases = map[string]Kind{
	"paragraph":   KindParagraph,
	"p":           KindParagraph,
	"heading1":    KindHeading1,
	"h1":          KindHeading1,
	"heading2":    KindHeading2,
	"h2":          KindHeading2,
	"heading3":    KindHeading3,
	"h3":          KindHeading3,
	"heading4":    KindHeading4,
	"h4":          KindHeading4,
	"blockquote":  KindBlockquote,
	"quote":       KindBlockquote,
	"bullets":     KindBullets,
	"bulleted":    KindBullets,
	"numbered":    KindNumbered,
	"ordered":     KindNumbered,
	"rule":        KindRule,
	"hr":          KindRule,
	"code":        KindCode,
	"table":       KindTable,
	"details":     KindDetails,
	"collapsible": KindDetails,
	"raw":         KindRaw,
}

// LanguageAuto asks Render to detect the language of a code block.
const LanguageAuto = "auto"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnknownBlock is returned for an unrecognized block type.
	ErrUnknownBlock = errors.New("unknown block type")

	// ErrInvalidBlock is returned for contradictory block fields.
	ErrInvalidBlock = errors.New("invalid block")
)

// BlockError locates a failure inside a document.
type BlockError struct {
	// Path is the location of the block, e.g. "blocks[2].blocks[0]".
	Path string
	Err  error
}

func (e *BlockError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// ResolveKind maps a type name, ignoring case, to its Kind.
func ResolveKind(name string) (Kind, error) {
	kind, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBlock, name)
	}
	return kind, nil
}
