package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
)

type contextKey struct{}

// ContextFactory creates request contexts bound to one final Config, repository and schema.
type ContextFactory struct {
	config Config
	repo   repository.ItemRepository
	schema graphql.Schema
	logger *slog.Logger
}

// NewContextFactory is the constructor for ContextFactory.
func NewContextFactory(cfg Config, repo repository.ItemRepository, schema graphql.Schema, logger *slog.Logger) *ContextFactory {
	return &ContextFactory{
		config: cfg,
		repo:   repo,
		schema: schema,
		logger: logger,
	}
}

// Config returns the config the factory was built with.
func (f *ContextFactory) Config() Config {
	return f.config
}

// New returns a context for the request without resolving its session.
func (f *ContextFactory) New(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		SessionStrategy: f.config.Session,
		request:         r,
		writer:          w,
		factory:         f,
	}
}

// ForRequest returns a context for the request with its session resolved through the session strategy.
// A strategy failure is logged and treated as "no session".
func (f *ContextFactory) ForRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) *Context {
	kctx := f.New(w, r)
	if kctx.SessionStrategy == nil {
		return kctx
	}

	session, err := kctx.SessionStrategy.Get(ctx, kctx)
	if err != nil {
		f.logger.ErrorContext(ctx, "Failed to resolve session", slog.Any("error", err))

		return kctx
	}
	kctx.Session = session

	return kctx
}

// Context is the framework's per-request view: the session, the session strategy
// and access-controlled data APIs. Sudo returns a copy that bypasses access control.
type Context struct {
	Session         *entity.Session
	SessionStrategy SessionStrategy

	request *http.Request
	writer  http.ResponseWriter
	sudo    bool
	factory *ContextFactory
}

// WithContext stores kctx in ctx for GraphQL resolvers.
func WithContext(ctx context.Context, kctx *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, kctx)
}

// FromContext returns the framework context stored in ctx.
func FromContext(ctx context.Context) (*Context, bool) {
	kctx, ok := ctx.Value(contextKey{}).(*Context)

	return kctx, ok && kctx != nil
}

// Request returns the HTTP request, nil outside of a request.
func (c *Context) Request() *http.Request {
	return c.request
}

// ResponseWriter returns the HTTP response writer, nil outside of a request.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.writer
}

// IsSudo reports whether access control is bypassed.
func (c *Context) IsSudo() bool {
	return c.sudo
}

// Sudo returns a copy of the context that ignores list access control.
func (c *Context) Sudo() *Context {
	out := *c
	out.sudo = true

	return &out
}

// WithSession returns a copy of the context carrying session.
func (c *Context) WithSession(session *entity.Session) *Context {
	out := *c
	out.Session = session

	return &out
}

// Lists returns the configured lists.
func (c *Context) Lists() map[string]ListConfig {
	return c.factory.config.Lists
}

// Logger returns the framework logger.
func (c *Context) Logger() *slog.Logger {
	return c.factory.logger
}

// DB returns the item API for listKey.
func (c *Context) DB(listKey string) *ItemAPI {
	return &ItemAPI{kctx: c, listKey: listKey}
}

// Query returns the GraphQL-backed query API for listKey.
func (c *Context) Query(listKey string) *QueryAPI {
	return &QueryAPI{kctx: c, listKey: listKey}
}

// GraphQLRequest is a GraphQL operation to execute against the live schema.
type GraphQLRequest struct {
	Query         string         `json:"query" validate:"required"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

// Execute runs a GraphQL operation as this context.
func (c *Context) Execute(ctx context.Context, req GraphQLRequest) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         c.factory.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        WithContext(ctx, c),
	})
}

// ItemAPI reads and writes raw items of one list, applying access control unless the context is sudo.
type ItemAPI struct {
	kctx    *Context
	listKey string
}

// FindOne returns the item matching a unique where filter: exactly one of id or a unique field.
func (a *ItemAPI) FindOne(ctx context.Context, where map[string]any) (entity.Item, error) {
	list, err := a.list()
	if err != nil {
		return nil, err
	}

	filter, err := uniqueWhere(a.listKey, list, where)
	if err != nil {
		return nil, err
	}

	if !a.allowed(list, OperationQuery) {
		return nil, repository.ErrAccessDenied
	}

	item, err := a.kctx.factory.repo.FindOne(ctx, a.listKey, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s item", a.listKey)
	}

	return item, nil
}

// Create persists a new item. Secret fields must already be hashed.
func (a *ItemAPI) Create(ctx context.Context, data map[string]any) (entity.Item, error) {
	list, err := a.list()
	if err != nil {
		return nil, err
	}

	if !a.allowed(list, OperationCreate) {
		return nil, repository.ErrAccessDenied
	}

	for key := range data {
		if _, ok := list.Fields[key]; !ok {
			return nil, errors.Errorf("list %s has no field %q", a.listKey, key)
		}
	}

	item, err := a.kctx.factory.repo.Create(ctx, a.listKey, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s item", a.listKey)
	}

	return item, nil
}

func (a *ItemAPI) list() (ListConfig, error) {
	list, ok := a.kctx.factory.config.Lists[a.listKey]
	if !ok {
		return ListConfig{}, errors.Errorf("unknown list %q", a.listKey)
	}

	return list, nil
}

func (a *ItemAPI) allowed(list ListConfig, op Operation) bool {
	if a.kctx.sudo {
		return true
	}

	return list.Access.Allows(AccessArgs{Context: a.kctx, ListKey: a.listKey, Operation: op})
}

func uniqueWhere(listKey string, list ListConfig, where map[string]any) (map[string]any, error) {
	filter := make(map[string]any, 1)
	for key, value := range where {
		if value == nil {
			continue
		}
		if key != entity.FieldID {
			field, ok := list.Fields[key]
			if !ok || !field.IsUnique() {
				return nil, errors.Errorf("field %s.%s cannot be used in a unique filter", listKey, key)
			}
		}
		filter[key] = value
	}

	if len(filter) != 1 {
		return nil, errors.Errorf("a unique filter on %s must have exactly one key, got %d", listKey, len(filter))
	}

	return filter, nil
}

// QueryError is returned when a GraphQL execution reports errors.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// QueryAPI fetches items through the GraphQL schema so selections can include any output field.
type QueryAPI struct {
	kctx    *Context
	listKey string
}

// FindOne returns the selection for the item with the given id.
// It returns repository.ErrItemNotFound when the item does not exist or is not visible.
func (q *QueryAPI) FindOne(ctx context.Context, id, selection string) (map[string]any, error) {
	result := q.kctx.Execute(ctx, GraphQLRequest{
		Query:     ItemByIDQuery(q.listKey, selection),
		Variables: map[string]any{"id": id},
	})
	if len(result.Errors) > 0 {
		messages := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			messages = append(messages, e.Message)
		}

		return nil, &QueryError{Messages: messages}
	}

	data, _ := result.Data.(map[string]any)
	item, _ := data[ItemQueryName(q.listKey)].(map[string]any)
	if item == nil {
		return nil, repository.ErrItemNotFound
	}

	return item, nil
}

// ItemByIDQuery builds the operation used to fetch a selection of one item by id.
func ItemByIDQuery(listKey, selection string) string {
	return fmt.Sprintf("query($id: ID!) { %s(where: { id: $id }) { %s } }", ItemQueryName(listKey), selection)
}
