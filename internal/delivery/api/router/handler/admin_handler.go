package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"maps"
	"net/http"
	"path"
	"slices"
	"strings"

	"cms/internal/core"
	"cms/internal/delivery/api/response"
	deliverycontext "cms/internal/delivery/context"
	domainerrors "cms/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const pagesDir = "pages/"

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Dashboard</title></head>
<body>
  <h1>Dashboard</h1>
  <ul>{{ range . }}<li>{{ . }}</li>{{ end }}</ul>
</body>
</html>
`))

// AdminHandler serves the admin UI pages behind the page access gate.
type AdminHandler struct {
	ui     *core.UIConfig
	pages  map[string]string
	logger *slog.Logger
}

// NewAdminHandler generates the admin pages once at startup.
// It returns a handler serving nothing when the UI is disabled.
func NewAdminHandler(factory *core.ContextFactory, logger *slog.Logger) (*AdminHandler, error) {
	cfg := factory.Config()
	ui := cfg.UI
	if ui == nil {
		ui = &core.UIConfig{}
	}
	h := &AdminHandler{
		ui:     ui,
		pages:  map[string]string{},
		logger: logger,
	}
	if !h.Enabled() {
		return h, nil
	}

	home, err := renderHome(cfg)
	if err != nil {
		return nil, err
	}
	h.pages[h.ui.BasePath+"/"] = home

	files, err := core.GenerateAdminFiles(h.ui.AdditionalFiles)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for _, file := range files {
		h.pages[h.pagePath(file.OutputPath)] = file.Src
	}

	return h, nil
}

// Enabled reports whether admin routes should be registered.
func (h *AdminHandler) Enabled() bool {
	return !h.ui.IsDisabled
}

// BasePath returns the admin UI mount point.
func (h *AdminHandler) BasePath() string {
	return h.ui.BasePath
}

// Serve runs the page gate for the requested admin page and writes it.
// Public pages skip the gate.
func (h *AdminHandler) Serve(c echo.Context) error {
	kctx, ok := deliverycontext.GetFrameworkContext(c)
	if !ok {
		return domainerrors.ErrInternalError.WrapMessage("framework context missing from request")
	}

	reqPath := c.Request().URL.Path
	if reqPath == h.BasePath() {
		reqPath += "/"
	}

	if !h.ui.IsPublicPage(reqPath) {
		allowed, err := h.accessAllowed(c, kctx)
		if err != nil {
			return err
		}

		decision, err := h.runPageMiddleware(c, kctx, allowed)
		if err != nil {
			return err
		}
		if decision != nil && decision.Kind == core.DecisionRedirect {
			return c.Redirect(http.StatusFound, decision.To)
		}
		if !allowed {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "You don't have access to this page")
		}
	}

	page, ok := h.pages[reqPath]
	if !ok {
		return response.NotFound(c, domainerrors.ErrNotFound.ErrorCode(), "Page not found")
	}

	return c.HTML(http.StatusOK, page)
}

func (h *AdminHandler) accessAllowed(c echo.Context, kctx *core.Context) (bool, error) {
	if h.ui.IsAccessAllowed == nil {
		return true, nil
	}

	allowed, err := h.ui.IsAccessAllowed(c.Request().Context(), kctx)
	if err != nil {
		return false, errors.Wrap(err, "isAccessAllowed")
	}

	return allowed, nil
}

func (h *AdminHandler) runPageMiddleware(c echo.Context, kctx *core.Context, allowed bool) (*core.PageDecision, error) {
	ctx := c.Request().Context()
	decision, err := core.RunPageMiddleware(ctx, h.ui.PageMiddleware, core.PageMiddlewareArgs{
		Context:          kctx,
		WasAccessAllowed: allowed,
		BasePath:         h.ui.BasePath,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if decision != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).DebugContext(ctx, "Page middleware decided",
			slog.String("kind", decision.Kind),
			slog.String("to", decision.To),
		)
	}

	return decision, nil
}

// pagePath maps a generated file to its URL, e.g. "pages/signin.html" -> "<basePath>/signin".
func (h *AdminHandler) pagePath(outputPath string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(outputPath, pagesDir), path.Ext(outputPath))
	if name == "index" {
		name = ""
	}

	return h.BasePath() + "/" + name
}

func renderHome(cfg core.Config) (string, error) {
	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, slices.Sorted(maps.Keys(cfg.Lists))); err != nil {
		return "", errors.Wrap(err, "failed to render home page")
	}

	return buf.String(), nil
}
