package docspec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdbuild/pkg/fsutil"
)

// Parse decodes a YAML document description. JSON input is accepted as a
// subset of YAML. Unknown fields are rejected. Empty input yields an empty
// Document.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// Load reads and parses the document description at path.
func Load(ctx context.Context, path string) (*Document, error) {
	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ToYAML serializes the document with two-space indentation.
func (d *Document) ToYAML() ([]byte, error) {
	if d == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(d); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the document after a comment header.
func (d *Document) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := d.ToYAML()
	if err != nil {
		return nil, err
	}
	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// Sample returns a document that uses every block type. It seeds new
// projects and serves as a reference for the format.
func Sample() *Document {
	return &Document{
		Title: "Project name",
		Blocks: []Block{
			{Type: "paragraph", Text: "One sentence about what the project does."},
			{Type: "heading2", Text: "Getting started"},
			{Type: "numbered", Items: []string{
				"Install the tool",
				"Create a document description\nwith `gomdbuild init`",
				"Render it",
			}},
			{Type: "code", Language: "sh", Code: "gomdbuild render document.yml -o README.md"},
			{Type: "heading3", Text: "Features"},
			{Type: "bullets", Items: []string{"Headings and lists", "Tables", "Collapsible sections"}},
			{Type: "blockquote", Text: "Generated files should not be edited by hand."},
			{Type: "rule"},
			{
				Type:  "details",
				Title: "Configuration",
				Blocks: []Block{
					{Type: "paragraph", Text: "Settings are read from `.gomdbuild.yml`."},
				},
			},
			{
				Type:    "table",
				Columns: []string{"Setting", "Default"},
				Rows: [][]string{
					{"flavor", "gfm"},
					{"verify", "false"},
				},
				Align: []string{"left", "center"},
			},
		},
	}
}
