package rustdoc

import "fmt"

// Extract returns the documented functions of doc in index order.
//
// Items that are not functions, or functions without docs, are skipped.
// A documented function whose name isn't a string, or whose docs have a
// non-string type, is a *SchemaError.
func Extract(doc *Document, opts Options) ([]Function, error) {
	items, err := doc.Items()
	if err != nil {
		return nil, err
	}
	return Functions(items, opts)
}

// Functions applies the extraction rules to already decoded items.
func Functions(items []Item, opts Options) ([]Function, error) {
	var fns []Function
	for _, item := range items {
		if item.Kind != KindFunction {
			continue
		}

		if got, ok := item.malformed["docs"]; ok {
			return nil, &SchemaError{ID: item.ID, Field: "docs", Reason: fmt.Sprintf("is %s, want string", got)}
		}
		if !item.Documented() {
			continue
		}
		if opts.LocalOnly && item.CrateID != 0 {
			continue
		}
		if opts.PublicOnly && item.Visibility != "public" {
			continue
		}
		if item.Name == nil {
			reason := "is missing"
			if got, ok := item.malformed["name"]; ok {
				reason = fmt.Sprintf("is %s, want string", got)
			}
			return nil, &SchemaError{ID: item.ID, Field: "name", Reason: reason}
		}

		fns = append(fns, Function{ID: item.ID, Name: *item.Name, Docs: *item.Docs})
	}
	return fns, nil
}
