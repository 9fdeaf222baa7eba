// Package graphql contributes the password authentication operations to the generated schema.
package graphql

import (
	"fmt"
	"strings"

	"cms/internal/core"
	"cms/internal/domain/entity"
	domainerrors "cms/internal/domain/errors"
	"cms/internal/domain/service"
	"cms/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/pkg/errors"
)

// ExtensionName is the name of the auth schema extension stage.
const ExtensionName = "auth"

// Names are the GraphQL names generated for a list's password authentication.
type Names struct {
	AuthenticateWithPassword string
	Result                   string
	Success                  string
	Failure                  string
}

// NamesFor returns the GraphQL names for listKey, e.g. "authenticateUserWithPassword".
func NamesFor(listKey string) Names {
	return Names{
		AuthenticateWithPassword: "authenticate" + listKey + "WithPassword",
		Result:                   listKey + "AuthenticationWithPasswordResult",
		Success:                  listKey + "AuthenticationWithPasswordSuccess",
		Failure:                  listKey + "AuthenticationWithPasswordFailure",
	}
}

// UsecaseFactory builds the auth usecase once the secret field implementation is known.
type UsecaseFactory func(secret service.SecretField) (usecase.AuthUsecase, error)

// NewAuthExtension returns the schema extension stage adding authenticatedItem and
// authenticate{List}WithPassword. It validates the auth config against the base schema.
func NewAuthExtension(cfg entity.AuthConfig, factory UsecaseFactory) core.SchemaExtension {
	return core.SchemaExtension{
		Name: ExtensionName,
		Extend: func(base *core.BaseSchema) (*core.Extension, error) {
			return extend(base, cfg, factory)
		},
	}
}

func extend(base *core.BaseSchema, cfg entity.AuthConfig, factory UsecaseFactory) (*core.Extension, error) {
	object, ok := base.Object(cfg.ListKey)
	if !ok {
		return nil, domainerrors.NewConfigError(fmt.Sprintf("list %q is not part of the schema", cfg.ListKey))
	}

	if err := checkIdentityField(base, cfg); err != nil {
		return nil, err
	}

	secret, err := secretFieldImpl(base, cfg)
	if err != nil {
		return nil, err
	}

	if err := checkSessionData(base, cfg); err != nil {
		return nil, err
	}

	auth, err := factory(secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth usecase")
	}

	names := NamesFor(cfg.ListKey)
	success := graphql.NewObject(graphql.ObjectConfig{
		Name: names.Success,
		Fields: graphql.Fields{
			"sessionToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					s, _ := p.Source.(*entity.AuthSuccess)

					return s.SessionToken, nil
				},
			},
			"item": &graphql.Field{
				Type: graphql.NewNonNull(object),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					s, _ := p.Source.(*entity.AuthSuccess)

					return s.Item, nil
				},
			},
		},
	})
	failure := graphql.NewObject(graphql.ObjectConfig{
		Name: names.Failure,
		Fields: graphql.Fields{
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					f, _ := p.Source.(*entity.AuthFailure)

					return f.Message, nil
				},
			},
		},
	})
	result := graphql.NewUnion(graphql.UnionConfig{
		Name:  names.Result,
		Types: []*graphql.Object{success, failure},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			if _, ok := p.Value.(*entity.AuthSuccess); ok {
				return success
			}

			return failure
		},
	})
	authenticatedItem := graphql.NewUnion(graphql.UnionConfig{
		Name:  "AuthenticatedItem",
		Types: []*graphql.Object{object},
		ResolveType: func(graphql.ResolveTypeParams) *graphql.Object {
			return object
		},
	})

	return &core.Extension{
		Query: graphql.Fields{
			"authenticatedItem": &graphql.Field{
				Type: authenticatedItem,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					kctx, err := core.ContextFrom(p.Context)
					if err != nil {
						return nil, err
					}

					item, err := auth.AuthenticatedItem(p.Context, kctx)
					if err != nil || item == nil {
						return nil, err
					}

					return item, nil
				},
			},
		},
		Mutation: graphql.Fields{
			names.AuthenticateWithPassword: &graphql.Field{
				Type: result,
				Args: graphql.FieldConfigArgument{
					cfg.IdentityField: &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					cfg.SecretField:   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					kctx, err := core.ContextFrom(p.Context)
					if err != nil {
						return nil, err
					}

					identity, _ := p.Args[cfg.IdentityField].(string)
					secret, _ := p.Args[cfg.SecretField].(string)
					res, err := auth.AuthenticateWithPassword(p.Context, kctx, identity, secret)
					if err != nil {
						return nil, err
					}
					if res.Success != nil {
						return res.Success, nil
					}

					return res.Failure, nil
				},
			},
		},
	}, nil
}

func checkIdentityField(base *core.BaseSchema, cfg entity.AuthConfig) error {
	where, ok := base.WhereUniqueInput(cfg.ListKey)
	if !ok {
		return domainerrors.NewConfigError(fmt.Sprintf("list %q has no unique filter input", cfg.ListKey))
	}

	field, ok := where.Fields()[cfg.IdentityField]
	if ok && (field.Type == graphql.String || field.Type == graphql.ID) {
		return nil
	}

	return domainerrors.NewConfigError(fmt.Sprintf(
		"createAuth was called with an identityField of %s on the list %s "+
			"but that field doesn't allow being searched uniquely with a String or ID. "+
			"You should likely add `isIndexed: 'unique'` to the field at %s.%s",
		cfg.IdentityField, cfg.ListKey, cfg.ListKey, cfg.IdentityField))
}

func secretFieldImpl(base *core.BaseSchema, cfg entity.AuthConfig) (service.SecretField, error) {
	field := base.Config().Lists[cfg.ListKey].Fields[cfg.SecretField]
	if field.Secret == nil {
		return nil, domainerrors.NewConfigError(fmt.Sprintf(
			"A createAuth() invocation for the %q list specifies %q as its secretField, "+
				"but the field type doesn't implement the required functionality.",
			cfg.ListKey, cfg.SecretField))
	}

	return field.Secret, nil
}

func checkSessionData(base *core.BaseSchema, cfg entity.AuthConfig) error {
	query := core.ItemByIDQuery(cfg.ListKey, cfg.SessionData)

	doc, err := parser.Parse(parser.ParseParams{Source: query})
	if err != nil {
		return domainerrors.NewConfigError(
			"The query to get session data has a syntax error, " +
				"the sessionData option in your createAuth usage is likely incorrect\n" + err.Error())
	}

	validation := graphql.ValidateDocument(&base.Schema, doc, nil)
	if !validation.IsValid {
		messages := make([]string, 0, len(validation.Errors))
		for _, e := range validation.Errors {
			messages = append(messages, e.Message)
		}

		return domainerrors.NewConfigError(
			"The query to get session data has validation errors, " +
				"the sessionData option in your createAuth usage is likely incorrect\n" +
				strings.Join(messages, "\n"))
	}

	return nil
}
