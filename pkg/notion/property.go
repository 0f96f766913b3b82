// Package notion models the parts of the Notion database query API this
// exporter reads: pages, their typed properties, and error bodies.
package notion

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Property is a decoded page property value. It is a closed union:
// Title, RichTextValue, Select and Unsupported are the only variants.
type Property interface {
	isProperty()
}

// RichText is one text span of a title or rich_text property.
type RichText struct {
	Type      string `json:"type,omitempty"`
	PlainText string `json:"plain_text"`
}

// SelectOption is the chosen option of a select property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Title holds the spans of a title property.
type Title struct {
	Spans []RichText
}

// RichTextValue holds the spans of a rich_text property.
type RichTextValue struct {
	Spans []RichText
}

// Select holds a non-null select option.
type Select struct {
	Option SelectOption
}

// Unsupported is any shape this exporter does not read: numbers, dates,
// multi_select, a null select, or JSON it could not decode.
type Unsupported struct {
	Type string
}

func (Title) isProperty()         {}
func (RichTextValue) isProperty() {}
func (Select) isProperty()        {}
func (Unsupported) isProperty()   {}

// ParseProperty decodes one raw property value. It never fails.
// An empty or null value returns nil (absent). Otherwise the first key
// that holds a usable value wins: title, rich_text, non-null select.
// Anything else is Unsupported. Keys are decoded one at a time, so a
// malformed key never hides a valid one.
func ParseProperty(raw json.RawMessage) Property {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || isNull(trimmed) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Unsupported{}
	}

	if spans, ok := decodeSpans(fields["title"]); ok {
		return Title{Spans: spans}
	}
	if spans, ok := decodeSpans(fields["rich_text"]); ok {
		return RichTextValue{Spans: spans}
	}
	if v := fields["select"]; len(v) > 0 && !isNull(v) {
		var opt SelectOption
		if err := json.Unmarshal(v, &opt); err == nil {
			return Select{Option: opt}
		}
	}

	var typ string
	if v, ok := fields["type"]; ok {
		_ = json.Unmarshal(v, &typ)
	}
	return Unsupported{Type: typ}
}

// decodeSpans reports false for a missing, null or malformed span array.
func decodeSpans(v json.RawMessage) ([]RichText, bool) {
	if len(v) == 0 || isNull(v) {
		return nil, false
	}
	var spans []RichText
	if err := json.Unmarshal(v, &spans); err != nil {
		return nil, false
	}
	return spans, true
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// PlainText maps any property, including a nil one, to a string.
func PlainText(p Property) string {
	switch v := p.(type) {
	case Title:
		return joinSpans(v.Spans)
	case RichTextValue:
		return joinSpans(v.Spans)
	case Select:
		return v.Option.Name
	default:
		return ""
	}
}

func joinSpans(spans []RichText) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText)
	}
	return sb.String()
}
