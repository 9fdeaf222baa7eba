// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"cms/internal/core"
	"cms/internal/delivery/api/response"
	"cms/internal/delivery/api/validator"
	deliverycontext "cms/internal/delivery/context"
	domainerrors "cms/internal/domain/errors"

	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GraphQLHandler executes GraphQL operations against the generated schema.
type GraphQLHandler struct {
	logger *slog.Logger
}

// NewGraphQLHandler is the constructor for GraphQLHandler, injected by Fx.
func NewGraphQLHandler(logger *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{logger: logger}
}

// Handle accepts a JSON body on POST and query parameters on GET and writes the
// standard {data, errors} result. GraphQL errors are reported with status 200.
// Mutations are only accepted on POST.
func (h *GraphQLHandler) Handle(c echo.Context) error {
	kctx, ok := deliverycontext.GetFrameworkContext(c)
	if !ok {
		return domainerrors.ErrInternalError.WrapMessage("framework context missing from request")
	}

	req, err := bindGraphQLRequest(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid GraphQL request")
	}

	if err := c.Validate(req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), "GraphQL request is missing a query", validator.FieldErrors(err))
	}

	if c.Request().Method == http.MethodGet && isMutation(req) {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)

		return response.Error(c, http.StatusMethodNotAllowed, domainerrors.ErrMethodNotAllowed.ErrorCode(),
			"Mutations can only be sent with POST", nil)
	}

	ctx := c.Request().Context()
	result := kctx.Execute(ctx, *req)
	if result.HasErrors() {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).DebugContext(ctx, "GraphQL operation returned errors",
			slog.String("operation", req.OperationName),
			slog.Int("errors", len(result.Errors)),
		)
	}

	return c.JSON(http.StatusOK, result)
}

func bindGraphQLRequest(c echo.Context) (*core.GraphQLRequest, error) {
	req := new(core.GraphQLRequest)
	if c.Request().Method != http.MethodGet {
		if err := c.Bind(req); err != nil {
			return nil, errors.WithStack(err)
		}

		return req, nil
	}

	req.Query = c.QueryParam("query")
	req.OperationName = c.QueryParam("operationName")
	if raw := c.QueryParam("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return nil, errors.Wrap(err, "invalid variables")
		}
	}

	return req, nil
}

// isMutation reports whether the operation the request selects is a mutation.
// Without an operation name every mutation in the document counts.
// Documents that do not parse are left to the executor to report.
func isMutation(req *core.GraphQLRequest) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return false
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.Operation != ast.OperationTypeMutation {
			continue
		}
		if req.OperationName == "" || (op.Name != nil && op.Name.Value == req.OperationName) {
			return true
		}
	}

	return false
}
