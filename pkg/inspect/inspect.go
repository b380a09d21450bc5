// Package inspect parses Markdown with goldmark and reports the block
// structure it finds. It is used to check that generated documents parse into
// the blocks they were built from.
package inspect

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Flavor identifies the Markdown flavor used for parsing.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// maxHeadingLevel is the deepest heading level Markdown defines.
const maxHeadingLevel = 6

// Block names used in report listings.
const (
	blockParagraphs     = "paragraphs"
	blockBulletLists    = "bullet lists"
	blockOrderedLists   = "ordered lists"
	blockListItems      = "list items"
	blockTables         = "tables"
	blockTableRows      = "table rows"
	blockCodeBlocks     = "code blocks"
	blockBlockquotes    = "blockquotes"
	blockThematicBreaks = "thematic breaks"
	blockHTMLBlocks     = "html blocks"
)

//nolint:gochecknoglobals // Read-only lookup table.
var blockNames = []string{
	blockParagraphs, blockBulletLists, blockOrderedLists, blockListItems,
	blockTables, blockTableRows, blockCodeBlocks, blockBlockquotes,
	blockThematicBreaks, blockHTMLBlocks,
}

// Inspector parses Markdown and summarizes its structure.
type Inspector struct {
	flavor string
	md     goldmark.Markdown
}

// New creates an Inspector for the given flavor.
// Unknown flavors fall back to CommonMark, which does not recognize tables.
func New(flavor string) *Inspector {
	f := flavorOrDefault(flavor)
	return &Inspector{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured flavor.
func (i *Inspector) Flavor() string {
	return i.flavor
}

// Report counts the blocks found in a document.
type Report struct {
	Flavor string `json:"flavor"`

	// Headings is indexed by level; index 0 is unused.
	Headings [maxHeadingLevel + 1]int `json:"headings"`

	Paragraphs     int      `json:"paragraphs"`
	BulletLists    int      `json:"bullet_lists"`
	OrderedLists   int      `json:"ordered_lists"`
	ListItems      int      `json:"list_items"`
	Tables         int      `json:"tables"`
	TableRows      int      `json:"table_rows"`
	CodeBlocks     int      `json:"code_blocks"`
	CodeLanguages  []string `json:"code_languages,omitempty"`
	Blockquotes    int      `json:"blockquotes"`
	ThematicBreaks int      `json:"thematic_breaks"`
	HTMLBlocks     int      `json:"html_blocks"`
}

// Row is one line of a report listing.
type Row struct {
	Name  string
	Count int
}

// HeadingCount returns the number of headings at level, or 0 when level is
// out of range.
func (r *Report) HeadingCount(level int) int {
	if level < 1 || level > maxHeadingLevel {
		return 0
	}
	return r.Headings[level]
}

// TotalHeadings returns the number of headings at any level.
func (r *Report) TotalHeadings() int {
	total := 0
	for _, n := range r.Headings {
		total += n
	}
	return total
}

// Add accumulates the counts of other into r. Code languages are appended.
func (r *Report) Add(other *Report) {
	if other == nil {
		return
	}
	for level := range r.Headings {
		r.Headings[level] += other.Headings[level]
	}
	r.Paragraphs += other.Paragraphs
	r.BulletLists += other.BulletLists
	r.OrderedLists += other.OrderedLists
	r.ListItems += other.ListItems
	r.Tables += other.Tables
	r.TableRows += other.TableRows
	r.CodeBlocks += other.CodeBlocks
	r.CodeLanguages = append(r.CodeLanguages, other.CodeLanguages...)
	r.Blockquotes += other.Blockquotes
	r.ThematicBreaks += other.ThematicBreaks
	r.HTMLBlocks += other.HTMLBlocks
}

// Blocks returns the non-zero counts in document order of importance.
func (r *Report) Blocks() []Row {
	var rows []Row
	for _, row := range r.rows() {
		if row.Count > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// rows returns every count, zero or not, in display order.
func (r *Report) rows() []Row {
	rows := make([]Row, 0, maxHeadingLevel+len(blockNames))
	for level := 1; level <= maxHeadingLevel; level++ {
		rows = append(rows, Row{Name: "heading" + strconv.Itoa(level), Count: r.Headings[level]})
	}
	return append(rows,
		Row{blockParagraphs, r.Paragraphs},
		Row{blockBulletLists, r.BulletLists},
		Row{blockOrderedLists, r.OrderedLists},
		Row{blockListItems, r.ListItems},
		Row{blockTables, r.Tables},
		Row{blockTableRows, r.TableRows},
		Row{blockCodeBlocks, r.CodeBlocks},
		Row{blockBlockquotes, r.Blockquotes},
		Row{blockThematicBreaks, r.ThematicBreaks},
		Row{blockHTMLBlocks, r.HTMLBlocks},
	)
}

// Inspect parses content and counts its blocks.
func (i *Inspector) Inspect(ctx context.Context, content []byte) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("inspect cancelled: %w", err)
	}

	reader := text.NewReader(content)
	doc := i.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("inspect cancelled: %w", err)
	}

	report := &Report{Flavor: i.flavor}
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			report.count(node, content)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk document: %w", err)
	}

	return report, nil
}

func (r *Report) count(node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Heading:
		if n.Level >= 1 && n.Level <= maxHeadingLevel {
			r.Headings[n.Level]++
		}
	case *ast.Paragraph:
		r.Paragraphs++
	case *ast.List:
		if n.IsOrdered() {
			r.OrderedLists++
		} else {
			r.BulletLists++
		}
	case *ast.ListItem:
		r.ListItems++
	case *ast.FencedCodeBlock:
		r.CodeBlocks++
		if lang := n.Language(source); len(lang) > 0 {
			r.CodeLanguages = append(r.CodeLanguages, string(lang))
		}
	case *ast.CodeBlock:
		r.CodeBlocks++
	case *ast.Blockquote:
		r.Blockquotes++
	case *ast.ThematicBreak:
		r.ThematicBreaks++
	case *ast.HTMLBlock:
		r.HTMLBlocks++
	case *extast.Table:
		r.Tables++
	case *extast.TableRow:
		r.TableRows++
	}
}

// flavorOrDefault returns the flavor if valid, otherwise CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
	}

	return goldmark.New(opts...)
}
