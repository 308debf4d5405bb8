package docstore

import (
	"encoding/json"
	"fmt"
)

// Encode turns a typed record into store fields using its json tags.
// The "id" key is owned by the store and is never written as a field.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	delete(fields, "id")
	return fields, nil
}

// Decode fills v from a document; the document id lands in the "id" key.
func Decode(doc Document, v any) error {
	fields := make(map[string]any, len(doc.Fields)+1)
	for k, val := range doc.Fields {
		fields[k] = val
	}
	fields["id"] = doc.ID
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("docstore: decode %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("docstore: decode %s: %w", doc.ID, err)
	}
	return nil
}

// Clone deep-copies a field map through JSON so callers never share
// nested slices or maps with the store.
func Clone(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return out
}
