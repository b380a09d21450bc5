package docspec

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdbuild/pkg/fsutil"
	"github.com/yaklabco/gomdbuild/pkg/langdetect"
	"github.com/yaklabco/gomdbuild/pkg/mdbuild"
)

// Options controls rendering.
type Options struct {
	// BaseDir resolves relative code block sources. Empty means the
	// current directory.
	BaseDir string

	// DetectLanguage detects the language of code blocks that do not set
	// one. Blocks with language "auto" are always detected.
	DetectLanguage bool
}

// Render converts doc into Markdown.
func Render(ctx context.Context, doc *Document, opts Options) (string, error) {
	b, err := Build(ctx, doc, opts)
	if err != nil {
		return "", err
	}
	return b.Markdown(), nil
}

// Build writes doc into a new builder, which the caller may extend.
func Build(ctx context.Context, doc *Document, opts Options) (*mdbuild.Builder, error) {
	b := mdbuild.New()
	if doc == nil {
		return b, nil
	}

	if doc.Title != "" {
		b.Heading1(doc.Title)
	}

	r := &renderer{opts: opts}
	if err := r.blocks(ctx, b, "blocks", doc.Blocks); err != nil {
		return nil, err
	}
	return b, nil
}

type renderer struct {
	opts Options
}

func (r *renderer) blocks(ctx context.Context, b *mdbuild.Builder, path string, blocks []Block) error {
	for i := range blocks {
		blockPath := path + "[" + strconv.Itoa(i) + "]"
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render %s: %w", blockPath, err)
		}
		if err := r.block(ctx, b, blockPath, &blocks[i]); err != nil {
			return err
		}
		// Tables end without a blank line; the next block would continue them.
		if i < len(blocks)-1 && isTable(blocks[i].Type) {
			b.LineBreak()
		}
	}
	return nil
}

func (r *renderer) block(ctx context.Context, b *mdbuild.Builder, path string, blk *Block) error {
	kind, err := ResolveKind(blk.Type)
	if err != nil {
		return &BlockError{Path: path, Err: err}
	}

	switch kind {
	case KindParagraph:
		b.Paragraph(blk.Text)
	case KindHeading1:
		b.Heading1(blk.Text)
	case KindHeading2:
		b.Heading2(blk.Text)
	case KindHeading3:
		b.Heading3(blk.Text)
	case KindHeading4:
		b.Heading4(blk.Text)
	case KindBlockquote:
		b.Blockquote(blk.Text)
	case KindBullets:
		b.BulletedList(blk.Items)
	case KindNumbered:
		b.NumberedList(blk.Items)
	case KindRule:
		b.HorizontalRule()
	case KindRaw:
		b.Write(blk.Text)
	case KindCode:
		code, lang, err := r.code(ctx, blk)
		if err != nil {
			return &BlockError{Path: path, Err: err}
		}
		b.CodeBlock(code, lang)
	case KindTable:
		alignments, err := parseAlignments(blk.Align)
		if err != nil {
			return &BlockError{Path: path, Err: err}
		}
		b.Table(blk.Columns, blk.Rows, alignments...)
	case KindDetails:
		inner := mdbuild.New()
		if err := r.blocks(ctx, inner, path+".blocks", blk.Blocks); err != nil {
			return err
		}
		b.Collapsible(blk.Title, inner, blk.Open)
	}
	return nil
}

// code returns the body and fence language of a code block.
func (r *renderer) code(ctx context.Context, blk *Block) (string, string, error) {
	if blk.Code != "" && blk.Source != "" {
		return "", "", fmt.Errorf("%w: code and source are mutually exclusive", ErrInvalidBlock)
	}

	code := blk.Code
	if blk.Source != "" {
		content, err := fsutil.ReadFile(ctx, r.resolve(blk.Source))
		if err != nil {
			return "", "", fmt.Errorf("read source: %w", err)
		}
		code = strings.TrimRight(string(content), "\r\n")
	}

	lang := blk.Language
	switch {
	case strings.EqualFold(lang, LanguageAuto):
		lang = r.detect(blk.Source, code)
	case lang == "" && r.opts.DetectLanguage:
		if detected := r.detect(blk.Source, code); detected != langdetect.Text {
			lang = detected
		}
	}
	return code, lang, nil
}

func (r *renderer) detect(source, code string) string {
	if source != "" {
		return langdetect.DetectFile(source, []byte(code))
	}
	return langdetect.Detect([]byte(code))
}

func (r *renderer) resolve(source string) string {
	if filepath.IsAbs(source) || r.opts.BaseDir == "" {
		return source
	}
	return filepath.Join(r.opts.BaseDir, source)
}

func parseAlignments(names []string) ([]mdbuild.Alignment, error) {
	if len(names) == 0 {
		return nil, nil
	}
	alignments := make([]mdbuild.Alignment, len(names))
	for i, name := range names {
		a, err := mdbuild.ParseAlignment(name)
		if err != nil {
			return nil, fmt.Errorf("align[%d]: %w", i, err)
		}
		alignments[i] = a
	}
	return alignments, nil
}

func isTable(name string) bool {
	kind, err := ResolveKind(name)
	return err == nil && kind == KindTable
}
