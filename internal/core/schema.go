package core

import (
	"context"
	"fmt"
	"maps"
	"slices"

	domainerrors "cms/internal/domain/errors"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

// Extension is the set of root fields a schema extension stage contributes.
type Extension struct {
	Query    graphql.Fields
	Mutation graphql.Fields
}

// SchemaExtension is a named stage of the schema extension pipeline.
type SchemaExtension struct {
	Name   string
	Extend func(base *BaseSchema) (*Extension, error)
}

// BaseSchema is the schema generated from the lists alone, before any extension runs.
type BaseSchema struct {
	Schema graphql.Schema

	config      Config
	objects     map[string]*graphql.Object
	whereUnique map[string]*graphql.InputObject
	query       graphql.Fields
	mutation    graphql.Fields
}

// Config returns the config the schema was generated from.
func (b *BaseSchema) Config() Config {
	return b.config
}

// Object returns the output type of a list.
func (b *BaseSchema) Object(listKey string) (*graphql.Object, bool) {
	obj, ok := b.objects[listKey]

	return obj, ok
}

// WhereUniqueInput returns the unique filter input type of a list.
func (b *BaseSchema) WhereUniqueInput(listKey string) (*graphql.InputObject, bool) {
	in, ok := b.whereUnique[listKey]

	return in, ok
}

var passwordState = graphql.NewObject(graphql.ObjectConfig{
	Name: "PasswordState",
	Fields: graphql.Fields{
		"isSet": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				src, _ := p.Source.(map[string]any)
				isSet, _ := src["isSet"].(bool)

				return isSet, nil
			},
		},
	},
})

// BuildSchema generates the base schema from the lists, then runs every extension
// stage in order and returns the final executable schema.
func BuildSchema(cfg Config) (graphql.Schema, error) {
	base, err := buildBaseSchema(cfg)
	if err != nil {
		return graphql.Schema{}, err
	}

	if len(cfg.ExtendGraphqlSchema) == 0 {
		return base.Schema, nil
	}

	query := maps.Clone(base.query)
	mutation := maps.Clone(base.mutation)
	for _, stage := range cfg.ExtendGraphqlSchema {
		ext, err := stage.Extend(base)
		if err != nil {
			return graphql.Schema{}, errors.Wrapf(err, "schema extension %q", stage.Name)
		}
		if ext == nil {
			continue
		}
		if err := mergeFields(query, ext.Query, stage.Name, "Query"); err != nil {
			return graphql.Schema{}, err
		}
		if err := mergeFields(mutation, ext.Mutation, stage.Name, "Mutation"); err != nil {
			return graphql.Schema{}, err
		}
	}

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: query}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutation}),
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "failed to build extended schema")
	}

	return schema, nil
}

func mergeFields(dst, src graphql.Fields, stage, root string) error {
	for name, field := range src {
		if _, exists := dst[name]; exists {
			return domainerrors.NewConfigError(
				fmt.Sprintf("schema extension %q redefines %s.%s", stage, root, name))
		}
		dst[name] = field
	}

	return nil
}

func buildBaseSchema(cfg Config) (*BaseSchema, error) {
	if len(cfg.Lists) == 0 {
		return nil, domainerrors.NewConfigError("at least one list must be configured")
	}

	base := &BaseSchema{
		config:      cfg,
		objects:     make(map[string]*graphql.Object, len(cfg.Lists)),
		whereUnique: make(map[string]*graphql.InputObject, len(cfg.Lists)),
		query:       graphql.Fields{},
		mutation:    graphql.Fields{},
	}

	for _, listKey := range slices.Sorted(maps.Keys(cfg.Lists)) {
		list := cfg.Lists[listKey]
		for name := range list.Fields {
			if name == entity.FieldID {
				return nil, domainerrors.NewConfigError(
					fmt.Sprintf("list %q cannot declare the implicit field %q", listKey, entity.FieldID))
			}
		}

		obj := listObject(listKey, list)
		where := whereUniqueInput(listKey, list)
		base.objects[listKey] = obj
		base.whereUnique[listKey] = where

		base.query[ItemQueryName(listKey)] = &graphql.Field{
			Type: obj,
			Args: graphql.FieldConfigArgument{
				"where": &graphql.ArgumentConfig{Type: graphql.NewNonNull(where)},
			},
			Resolve: resolveFindOne(listKey),
		}
		base.mutation["create"+listKey] = &graphql.Field{
			Type: obj,
			Args: graphql.FieldConfigArgument{
				"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createInput(listKey, list))},
			},
			Resolve: resolveCreate(listKey, list),
		}
	}

	if cfg.Session != nil {
		base.mutation["endSession"] = &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Boolean),
			Resolve: resolveEndSession,
		}
	}

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: maps.Clone(base.query)}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: maps.Clone(base.mutation)}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build base schema")
	}
	base.Schema = schema

	return base, nil
}

func listObject(listKey string, list ListConfig) *graphql.Object {
	fields := graphql.Fields{
		entity.FieldID: &graphql.Field{
			Type:    graphql.NewNonNull(graphql.ID),
			Resolve: resolveItemField(entity.FieldID),
		},
	}

	for name, field := range list.Fields {
		switch field.Kind {
		case KindPassword:
			fields[name] = &graphql.Field{
				Type:    passwordState,
				Resolve: resolvePasswordState(name),
			}
		default:
			fields[name] = &graphql.Field{
				Type:    outputType(field.Kind),
				Resolve: resolveItemField(name),
			}
		}
	}

	return graphql.NewObject(graphql.ObjectConfig{Name: listKey, Fields: fields})
}

func whereUniqueInput(listKey string, list ListConfig) *graphql.InputObject {
	fields := graphql.InputObjectConfigFieldMap{
		entity.FieldID: &graphql.InputObjectFieldConfig{Type: graphql.ID},
	}
	for name, field := range list.Fields {
		if field.IsUnique() {
			fields[name] = &graphql.InputObjectFieldConfig{Type: inputType(field.Kind)}
		}
	}

	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   listKey + "WhereUniqueInput",
		Fields: fields,
	})
}

func createInput(listKey string, list ListConfig) *graphql.InputObject {
	fields := graphql.InputObjectConfigFieldMap{}
	for name, field := range list.Fields {
		var t graphql.Input = inputType(field.Kind)
		if field.IsRequired {
			t = graphql.NewNonNull(t)
		}
		fields[name] = &graphql.InputObjectFieldConfig{Type: t}
	}

	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   listKey + "CreateInput",
		Fields: fields,
	})
}

func outputType(kind FieldKind) graphql.Output {
	switch kind {
	case KindCheckbox:
		return graphql.Boolean
	case KindInteger:
		return graphql.Int
	default:
		return graphql.String
	}
}

func inputType(kind FieldKind) graphql.Input {
	switch kind {
	case KindCheckbox:
		return graphql.Boolean
	case KindInteger:
		return graphql.Int
	default:
		return graphql.String
	}
}

// ItemSource returns the field map a resolver received as its source.
func ItemSource(src any) map[string]any {
	switch v := src.(type) {
	case entity.Item:
		return v
	case map[string]any:
		return v
	default:
		return nil
	}
}

func resolveItemField(name string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		return ItemSource(p.Source)[name], nil
	}
}

func resolvePasswordState(name string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		hash, _ := ItemSource(p.Source)[name].(string)

		return map[string]any{"isSet": hash != ""}, nil
	}
}

// ContextFrom returns the framework context of a resolver invocation.
func ContextFrom(ctx context.Context) (*Context, error) {
	kctx, ok := FromContext(ctx)
	if !ok {
		return nil, errors.New("no request context available")
	}

	return kctx, nil
}

func resolveFindOne(listKey string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		kctx, err := ContextFrom(p.Context)
		if err != nil {
			return nil, err
		}

		where, _ := p.Args["where"].(map[string]any)
		item, err := kctx.DB(listKey).FindOne(p.Context, where)
		if errors.Is(err, repository.ErrItemNotFound) || errors.Is(err, repository.ErrAccessDenied) {
			return nil, nil
		}
		if err != nil || item == nil {
			return nil, err
		}

		return item, nil
	}
}

func resolveCreate(listKey string, list ListConfig) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		kctx, err := ContextFrom(p.Context)
		if err != nil {
			return nil, err
		}

		input, _ := p.Args["data"].(map[string]any)
		data := make(map[string]any, len(input))
		for name, field := range list.Fields {
			value, ok := input[name]
			if !ok || value == nil {
				if field.IsRequired {
					return nil, errors.Errorf("%s.%s is required", listKey, name)
				}

				continue
			}

			if field.Secret != nil {
				plain, _ := value.(string)
				hash, err := field.Secret.GenerateHash(p.Context, plain)
				if err != nil {
					return nil, errors.Wrapf(err, "failed to hash %s.%s", listKey, name)
				}
				value = hash
			}
			data[name] = value
		}

		item, err := kctx.DB(listKey).Create(p.Context, data)
		if errors.Is(err, repository.ErrAccessDenied) {
			return nil, domainerrors.ErrForbidden.WithDetails("create" + listKey)
		}
		if err != nil {
			return nil, err
		}

		return item, nil
	}
}

func resolveEndSession(p graphql.ResolveParams) (any, error) {
	kctx, err := ContextFrom(p.Context)
	if err != nil {
		return nil, err
	}
	if kctx.SessionStrategy == nil {
		return nil, domainerrors.ErrMissingSession
	}

	if err := kctx.SessionStrategy.End(p.Context, kctx); err != nil {
		return nil, errors.Wrap(err, "failed to end session")
	}

	return true, nil
}
