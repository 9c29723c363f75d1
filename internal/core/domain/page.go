package domain

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"time"
)

// Reserved page keys. Everything else in front matter lands in Page.Meta.
const (
	keyTitle     = "title"
	keyContent   = "content"
	keyLayout    = "layout"
	keyURL       = "url"
	keyDate      = "date"
	keyTemplates = "templates"
	keyVersion   = "version"
	keyCachedAt  = "cached_at"
)

// Page is the processed representation of a content source.
type Page struct {
	Title     string
	Content   string
	Layout    string
	URL       string
	Date      *Timestamp
	Templates []string
	Meta      map[string]any
}

// CachedPage is a Page as stored in the content cache.
type CachedPage struct {
	Page
	Version  int
	CachedAt float64
}

// Clone returns a copy that shares no mutable slices or maps with p.
func (p *Page) Clone() *Page {
	cp := *p
	cp.Templates = slices.Clone(p.Templates)
	cp.Meta = maps.Clone(p.Meta)
	if p.Date != nil {
		d := *p.Date
		cp.Date = &d
	}
	return &cp
}

// Fields returns the page as a flat map for templates and format generators.
// Dates are exposed as time.Time.
func (p *Page) Fields() map[string]any {
	out := make(map[string]any, len(p.Meta)+6)
	for k, v := range p.Meta {
		if ts, ok := v.(Timestamp); ok {
			out[k] = ts.Time
			continue
		}
		out[k] = v
	}
	out[keyTitle] = p.Title
	out[keyContent] = p.Content
	out[keyLayout] = p.Layout
	out[keyURL] = p.URL
	if p.Date != nil {
		out[keyDate] = p.Date.Time
	}
	return out
}

// SortTime returns the page date, or the zero time when absent.
func (p *Page) SortTime() time.Time {
	if p.Date == nil {
		return time.Time{}
	}
	return p.Date.Time
}

func (p *Page) toMap() map[string]any {
	out := make(map[string]any, len(p.Meta)+6)
	maps.Copy(out, p.Meta)
	out[keyTitle] = p.Title
	out[keyContent] = p.Content
	out[keyLayout] = p.Layout
	out[keyURL] = p.URL
	out[keyTemplates] = p.Templates
	if out[keyTemplates] == nil {
		out[keyTemplates] = []string{}
	}
	if p.Date != nil {
		out[keyDate] = *p.Date
	}
	for k, v := range out {
		if t, ok := v.(time.Time); ok {
			out[k] = Timestamp{Time: t}
		}
	}
	return out
}

func (p *Page) fromMap(raw map[string]any) {
	*p = Page{Meta: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case keyTitle:
			p.Title, _ = v.(string)
		case keyContent:
			p.Content, _ = v.(string)
		case keyLayout:
			p.Layout, _ = v.(string)
		case keyURL:
			p.URL, _ = v.(string)
		case keyTemplates:
			if list, ok := v.([]any); ok {
				for _, item := range list {
					if s, ok := item.(string); ok {
						p.Templates = append(p.Templates, s)
					}
				}
			}
		default:
			p.Meta[k] = v
		}
	}
	if p.Templates == nil {
		p.Templates = []string{}
	}
	DecodeDates(p.Meta)
	if v, ok := raw[keyDate]; ok {
		delete(p.Meta, keyDate)
		if ts, ok := TimestampFrom(v); ok {
			p.Date = &ts
		}
	}
}

// DecodeDates replaces string and time.Time values of DateFields keys in meta
// with Timestamps.
// Values that do not parse are left untouched.
func DecodeDates(meta map[string]any) {
	for _, key := range DateFields {
		switch v := meta[key].(type) {
		case string:
			if ts, err := ParseTimestamp(v); err == nil {
				meta[key] = ts
			}
		case time.Time:
			meta[key] = Timestamp{Time: v}
		}
	}
}

// MarshalJSON flattens Meta into the top level next to the fixed fields.
func (p Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toMap())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Page) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data)
	if err != nil {
		return err
	}
	p.fromMap(raw)
	return nil
}

// MarshalJSON adds the version and cached_at stamps to the page fields.
func (c CachedPage) MarshalJSON() ([]byte, error) {
	m := c.toMap()
	m[keyVersion] = c.Version
	m[keyCachedAt] = c.CachedAt
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CachedPage) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data)
	if err != nil {
		return err
	}
	c.Version = 0
	c.CachedAt = 0
	if v, ok := raw[keyVersion].(int); ok {
		c.Version = v
	}
	switch v := raw[keyCachedAt].(type) {
	case float64:
		c.CachedAt = v
	case int:
		c.CachedAt = float64(v)
	}
	delete(raw, keyVersion)
	delete(raw, keyCachedAt)
	c.fromMap(raw)
	return nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	for k, v := range raw {
		raw[k] = normalizeNumbers(v)
	}
	return raw, nil
}

// normalizeNumbers turns json.Number into int when integral, float64 otherwise.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		f, _ := val.Float64()
		return f
	case []any:
		for i := range val {
			val[i] = normalizeNumbers(val[i])
		}
		return val
	case map[string]any:
		for k := range val {
			val[k] = normalizeNumbers(val[k])
		}
		return val
	default:
		return v
	}
}
