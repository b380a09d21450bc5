package docspec

import (
	"context"

	"github.com/yaklabco/gomdbuild/pkg/inspect"
	"github.com/yaklabco/gomdbuild/pkg/mdbuild"
)

// Expect returns the block counts a parser of the given flavor should find in
// the rendering of doc, and how strictly they apply. Documents with raw
// blocks can only be checked for a lower bound.
func Expect(doc *Document, flavor string) (*inspect.Report, inspect.CompareMode) {
	report := &inspect.Report{Flavor: flavor}
	mode := inspect.Exact
	if doc == nil {
		return report, mode
	}

	if doc.Title != "" && mdbuild.SingleLine(doc.Title) != "" {
		report.Headings[1]++
	}
	expectBlocks(report, &mode, flavor, doc.Blocks)
	return report, mode
}

func expectBlocks(r *inspect.Report, mode *inspect.CompareMode, flavor string, blocks []Block) {
	for i := range blocks {
		blk := &blocks[i]
		kind, err := ResolveKind(blk.Type)
		if err != nil {
			continue
		}

		switch kind {
		case KindHeading1, KindHeading2:
			// An empty setext heading is just a blank line.
			if mdbuild.SingleLine(blk.Text) != "" {
				r.Headings[headingLevel(kind)]++
			}
		case KindHeading3, KindHeading4:
			r.Headings[headingLevel(kind)]++
		case KindBlockquote:
			r.Blockquotes++
		case KindBullets:
			if len(blk.Items) > 0 {
				r.BulletLists++
				r.ListItems += len(blk.Items)
			}
		case KindNumbered:
			if len(blk.Items) > 0 {
				r.OrderedLists++
				r.ListItems += len(blk.Items)
			}
		case KindRule:
			r.ThematicBreaks++
		case KindCode:
			r.CodeBlocks++
		case KindTable:
			if flavor == inspect.FlavorGFM && len(blk.Columns) > 0 {
				r.Tables++
				r.TableRows += len(blk.Rows)
			}
		case KindDetails:
			// Opening tags and closing tag.
			r.HTMLBlocks += 2
			expectBlocks(r, mode, flavor, blk.Blocks)
		case KindRaw:
			*mode = inspect.AtLeast
		case KindParagraph:
		}
	}
}

func headingLevel(kind Kind) int {
	switch kind {
	case KindHeading1:
		return 1
	case KindHeading2:
		return 2
	case KindHeading3:
		return 3
	default:
		return 4
	}
}

// Verify parses markdown, the rendering of doc, and returns an
// *inspect.MismatchError when its structure differs from what doc describes.
// Adjacent lists of the same kind merging, or text that reads as Markdown
// syntax, are typical causes.
func Verify(ctx context.Context, doc *Document, markdown, flavor string) error {
	actual, err := inspect.New(flavor).Inspect(ctx, []byte(markdown))
	if err != nil {
		return err
	}

	expected, mode := Expect(doc, actual.Flavor)
	if mismatches := inspect.Compare(expected, actual, mode); len(mismatches) > 0 {
		return &inspect.MismatchError{Mismatches: mismatches}
	}
	return nil
}
