package render

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/copybook/pkg/grid"
)

// Document is the JSON handoff of a laid-out grid.
type Document struct {
	Column   int                  `json:"column"`
	Rows     int                  `json:"rows"`
	Kind     *grid.Kind           `json:"kind,omitempty"`
	Template *grid.TemplateConfig `json:"template,omitempty"`
	Grid     grid.Grid            `json:"grid"`
}

// NewDocument wraps g with metadata from opts. Column is the template's
// column when known, else the widest row.
func NewDocument(g grid.Grid, opts ...Option) Document {
	o := collect(opts)
	if g == nil {
		g = grid.Grid{}
	}
	doc := Document{
		Column:   g.Columns(),
		Rows:     g.Rows(),
		Kind:     o.kind,
		Template: o.template,
		Grid:     g,
	}
	if o.template != nil && o.template.Column > 0 {
		doc.Column = o.template.Column
	}
	return doc
}

// JSON renders g as a [Document].
func JSON(g grid.Grid, opts ...Option) ([]byte, error) {
	o := collect(opts)
	doc := NewDocument(g, opts...)
	if o.compact {
		return json.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalDocument decodes a document produced by [JSON] and checks that
// its row count matches the grid.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	if doc.Rows != len(doc.Grid) {
		return Document{}, fmt.Errorf("document declares %d rows, grid has %d", doc.Rows, len(doc.Grid))
	}
	return doc, nil
}
