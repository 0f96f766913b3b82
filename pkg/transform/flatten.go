// Package transform turns decoded Notion pages into flat string records.
package transform

import (
	"github.com/saturnines/notion-verbs/pkg/notion"
	"github.com/saturnines/notion-verbs/pkg/schema"
)

// Flattener maps pages onto a fixed list of fields.
type Flattener struct {
	fields []string
}

// NewFlattener creates a Flattener for the fields of s, in order.
func NewFlattener(s *schema.Schema) *Flattener {
	return &Flattener{fields: s.Names()}
}

// Fields returns the field names this Flattener emits.
func (f *Flattener) Fields() []string {
	return append([]string(nil), f.fields...)
}

// Flatten returns one entry per field. A property the page lacks, or
// whose shape is unsupported, becomes an empty string.
func (f *Flattener) Flatten(page notion.Page) Record {
	rec := make(Record, len(f.fields))
	for i, name := range f.fields {
		rec[i] = Entry{Key: name, Value: notion.PlainText(page.Properties.Get(name))}
	}
	return rec
}

// FlattenAll flattens pages in order. The result is never nil.
func (f *Flattener) FlattenAll(pages []notion.Page) []Record {
	records := make([]Record, 0, len(pages))
	for _, p := range pages {
		records = append(records, f.Flatten(p))
	}
	return records
}
