// Package core is the list-driven host framework: list configuration, the generated
// GraphQL schema, the request context and the ordered hook pipelines that extensions plug into.
package core

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operation names a list operation subject to access control.
type Operation string

const (
	OperationQuery  Operation = "query"
	OperationCreate Operation = "create"
)

// Config is the static, declarative description of a CMS instance.
// Extensions such as withAuth transform one Config into another before the server starts.
type Config struct {
	Lists               map[string]ListConfig
	Session             SessionStrategy
	UI                  *UIConfig
	ExtendGraphqlSchema []SchemaExtension
}

// ListConfig describes one content type.
type ListConfig struct {
	Fields map[string]FieldConfig
	Access ListAccess
	// Table overrides the storage table name. Defaults to the snake-cased list key.
	Table string
}

// AccessArgs is passed to list access functions.
type AccessArgs struct {
	Context   *Context
	ListKey   string
	Operation Operation
}

// ListAccess holds per-operation access functions. A nil function allows the operation.
type ListAccess struct {
	Query  func(args AccessArgs) bool
	Create func(args AccessArgs) bool
}

// Allows evaluates the access function for op.
func (a ListAccess) Allows(args AccessArgs) bool {
	var fn func(AccessArgs) bool
	switch args.Operation {
	case OperationQuery:
		fn = a.Query
	case OperationCreate:
		fn = a.Create
	}
	if fn == nil {
		return true
	}

	return fn(args)
}

// AllowAll is an access function that permits every request.
func AllowAll(AccessArgs) bool { return true }

// DenyAll is an access function that rejects every request.
func DenyAll(AccessArgs) bool { return false }

// TableName returns the storage table for the list.
func (l ListConfig) TableName(listKey string) string {
	if l.Table != "" {
		return l.Table
	}

	return SnakeCase(listKey)
}

// Clone returns a copy of the config whose slices and UI settings can be modified
// without affecting the original. List definitions are shared.
func (c Config) Clone() Config {
	out := c
	out.ExtendGraphqlSchema = slices.Clone(c.ExtendGraphqlSchema)
	if c.UI != nil {
		out.UI = c.UI.Clone()
	}

	return out
}

// ItemQueryName is the root query field returning a single item of the list, e.g. "User" -> "user".
func ItemQueryName(listKey string) string {
	r, size := utf8.DecodeRuneInString(listKey)
	if r == utf8.RuneError {
		return listKey
	}

	return string(unicode.ToLower(r)) + listKey[size:]
}

// SnakeCase converts a list or field key to its storage name, e.g. "isAdmin" -> "is_admin".
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
