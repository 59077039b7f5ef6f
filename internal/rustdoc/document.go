package rustdoc

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// Document is a parsed rustdoc JSON dump.
type Document struct {
	root gjson.Result
}

// Load reads the file at path from fsys and parses it.
func Load(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse validates data as JSON and wraps it in a Document.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	return &Document{root: gjson.ParseBytes(data)}, nil
}

// FormatVersion returns the rustdoc "format_version" field, or 0 when absent.
func (d *Document) FormatVersion() int64 {
	return d.root.Get("format_version").Int()
}

func (d *Document) index() (gjson.Result, error) {
	if !d.root.IsObject() {
		return gjson.Result{}, ErrMissingIndex
	}
	index := d.root.Get("index")
	if !index.Exists() {
		return gjson.Result{}, ErrMissingIndex
	}
	if !index.IsObject() {
		return gjson.Result{}, ErrIndexNotObject
	}
	return index, nil
}

// Len returns the number of index entries.
func (d *Document) Len() (int, error) {
	index, err := d.index()
	if err != nil {
		return 0, err
	}
	n := 0
	index.ForEach(func(_, _ gjson.Result) bool {
		n++
		return true
	})
	return n, nil
}

// Items decodes every index entry in source order.
func (d *Document) Items() ([]Item, error) {
	index, err := d.index()
	if err != nil {
		return nil, err
	}

	var (
		items  []Item
		decErr error
	)
	index.ForEach(func(key, value gjson.Result) bool {
		item, err := decodeItem(key.String(), value)
		if err != nil {
			decErr = err
			return false
		}
		items = append(items, item)
		return true
	})
	if decErr != nil {
		return nil, decErr
	}
	return items, nil
}

func decodeItem(id string, v gjson.Result) (Item, error) {
	if !v.IsObject() {
		return Item{}, &SchemaError{ID: id, Reason: "is not an object"}
	}

	item := Item{
		ID:      id,
		CrateID: v.Get("crate_id").Int(),
		Kind:    kindOf(v.Get("inner")),
	}

	if name := v.Get("name"); name.Type == gjson.String {
		s := name.Str
		item.Name = &s
	} else if name.Exists() && name.Type != gjson.Null {
		item.markMalformed("name", name.Type.String())
	}

	if docs := v.Get("docs"); docs.Type == gjson.String {
		s := docs.Str
		item.Docs = &s
	} else if docs.Exists() && docs.Type != gjson.Null {
		item.markMalformed("docs", docs.Type.String())
	}

	switch vis := v.Get("visibility"); {
	case vis.Type == gjson.String:
		item.Visibility = vis.Str
	case vis.IsObject():
		// {"restricted": {...}}
		vis.ForEach(func(key, _ gjson.Result) bool {
			item.Visibility = key.String()
			return false
		})
	}

	return item, nil
}

// kindOf maps an "inner" value to its discriminant. A "function" key wins
// over any other key present in the same object.
func kindOf(inner gjson.Result) Kind {
	if !inner.IsObject() {
		return KindOther
	}
	if inner.Get(string(KindFunction)).Exists() {
		return KindFunction
	}
	kind := KindOther
	inner.ForEach(func(key, _ gjson.Result) bool {
		if _, ok := knownKinds[Kind(key.String())]; ok {
			kind = Kind(key.String())
		}
		return false
	})
	return kind
}

func (it *Item) markMalformed(field, got string) {
	if it.malformed == nil {
		it.malformed = make(map[string]string)
	}
	it.malformed[field] = got
}
