// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// FieldID is the implicit primary key field present on every list item.
const FieldID = "id"

// Item is a single row of a list, keyed by field name.
// The auth core treats it as opaque apart from its id and the configured identity and secret fields.
type Item map[string]any

// ID returns the item's primary key as a string, or "" if the item has none.
func (i Item) ID() string {
	if i == nil {
		return ""
	}
	id, _ := i[FieldID].(string)

	return id
}

// String returns the named field as a string, or "" if it is missing or not a string.
func (i Item) String(field string) string {
	if i == nil {
		return ""
	}
	v, _ := i[field].(string)

	return v
}

// Clone returns a shallow copy of the item.
func (i Item) Clone() Item {
	if i == nil {
		return nil
	}
	out := make(Item, len(i))
	for k, v := range i {
		out[k] = v
	}

	return out
}
