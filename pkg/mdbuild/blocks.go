package mdbuild

import (
	"strconv"
	"strings"
)

const (
	bulletMarker         = "* "
	bulletContinuation   = "  "
	numberedContinuation = "   "

	// horizontalRuleWidth is the number of hyphens in a rule.
	horizontalRuleWidth = 41

	codeFence = "```"
)

// Paragraph writes text as a block.
func (b *Builder) Paragraph(text string) *Builder {
	return b.WriteLine(text).LineBreak()
}

// Heading1 writes a setext heading underlined with '='.
func (b *Builder) Heading1(text string) *Builder {
	return b.underlined(text, "=")
}

// Heading2 writes a setext heading underlined with '-'.
func (b *Builder) Heading2(text string) *Builder {
	return b.underlined(text, "-")
}

// Heading3 writes an ATX heading of level three.
func (b *Builder) Heading3(text string) *Builder {
	return b.WriteLine("### " + SingleLine(text)).LineBreak()
}

// Heading4 writes an ATX heading of level four.
func (b *Builder) Heading4(text string) *Builder {
	return b.WriteLine("#### " + SingleLine(text)).LineBreak()
}

// underlined writes the flattened text and an underline as wide as the text
// in grapheme clusters.
func (b *Builder) underlined(text, mark string) *Builder {
	line := SingleLine(text)
	return b.WriteLine(line).
		WriteLine(strings.Repeat(mark, graphemeCount(line))).
		LineBreak()
}

// Blockquote quotes every line of text. Empty lines become a bare '>'.
func (b *Builder) Blockquote(text string) *Builder {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace("> " + line)
	}
	return b.Paragraph(strings.Join(lines, "\n"))
}

// BulletedList writes items as a '*' list. Items may span several lines;
// continuation lines are indented under the item text.
func (b *Builder) BulletedList(items []string) *Builder {
	for _, item := range items {
		b.listItem(bulletMarker, bulletContinuation, item)
	}
	return b.LineBreak()
}

// NumberedList writes items as an ordered list numbered from 1.
// Continuation lines are indented three spaces regardless of the width of
// the item number.
func (b *Builder) NumberedList(items []string) *Builder {
	for i, item := range items {
		b.listItem(strconv.Itoa(i+1)+". ", numberedContinuation, item)
	}
	return b.LineBreak()
}

func (b *Builder) listItem(marker, indent, item string) {
	for i, line := range strings.Split(item, "\n") {
		if i == 0 {
			b.WriteLine(marker + line)
			continue
		}
		b.WriteLine(indent + line)
	}
}

// HorizontalRule writes a thematic break.
func (b *Builder) HorizontalRule() *Builder {
	return b.Paragraph(strings.Repeat("-", horizontalRuleWidth))
}

// CodeBlock writes code inside a fenced block tagged with language, which may
// be empty. Fences inside code are not escaped.
func (b *Builder) CodeBlock(code, language string) *Builder {
	return b.WriteLine(codeFence + language).
		WriteLine(code).
		WriteLine(codeFence).
		LineBreak()
}

// Collapsible embeds the current content of inner in a <details> section.
// The content is copied: changes made to inner afterwards do not show up in
// b. A nil inner produces an empty section.
func (b *Builder) Collapsible(title string, inner *Builder, open bool) *Builder {
	if open {
		b.WriteLine("<details open>")
	} else {
		b.WriteLine("<details>")
	}

	var content string
	if inner != nil {
		content = inner.Markdown()
	}

	return b.WriteLine("<summary>" + title + "</summary>").
		LineBreak().
		WriteLine(content).
		WriteLine("</details>").
		LineBreak()
}
