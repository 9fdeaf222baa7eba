package core

import "cms/internal/domain/service"

// FieldKind is one of the built-in field types.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindPassword FieldKind = "password"
	KindCheckbox FieldKind = "checkbox"
	KindInteger  FieldKind = "integer"
)

// IndexMode controls how a field is indexed.
type IndexMode string

const (
	IndexNone   IndexMode = ""
	IndexPlain  IndexMode = "index"
	IndexUnique IndexMode = "unique"
)

// FieldConfig describes a single list field.
type FieldConfig struct {
	Kind       FieldKind
	IsIndexed  IndexMode
	IsRequired bool
	// Secret is set for fields that store hashed secrets.
	Secret service.SecretField
}

// FieldOption customizes a field.
type FieldOption func(*FieldConfig)

// Unique marks the field as uniquely indexed, making it usable in unique lookups.
func Unique() FieldOption {
	return func(f *FieldConfig) { f.IsIndexed = IndexUnique }
}

// Indexed marks the field as indexed.
func Indexed() FieldOption {
	return func(f *FieldConfig) { f.IsIndexed = IndexPlain }
}

// Required makes the field mandatory on create.
func Required() FieldOption {
	return func(f *FieldConfig) { f.IsRequired = true }
}

// Text returns a string field.
func Text(opts ...FieldOption) FieldConfig {
	return newField(KindText, opts)
}

// Password returns a secret field hashed and compared by secret.
func Password(secret service.SecretField, opts ...FieldOption) FieldConfig {
	f := newField(KindPassword, opts)
	f.Secret = secret

	return f
}

// Checkbox returns a boolean field.
func Checkbox(opts ...FieldOption) FieldConfig {
	return newField(KindCheckbox, opts)
}

// Integer returns an integer field.
func Integer(opts ...FieldOption) FieldConfig {
	return newField(KindInteger, opts)
}

func newField(kind FieldKind, opts []FieldOption) FieldConfig {
	f := FieldConfig{Kind: kind}
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// IsUnique reports whether the field can identify a single item.
func (f FieldConfig) IsUnique() bool {
	return f.IsIndexed == IndexUnique
}
