package core

import (
	"context"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// DecisionRedirect is the only page decision kind currently produced.
const DecisionRedirect = "redirect"

// UIConfig configures the admin UI gate.
type UIConfig struct {
	IsDisabled bool
	BasePath   string
	// PublicPages are reachable without IsAccessAllowed returning true.
	PublicPages []string
	// IsAccessAllowed decides whether the request may see non-public admin pages.
	IsAccessAllowed func(ctx context.Context, kctx *Context) (bool, error)
	// PageMiddleware runs in order for every non-public page; the first decision wins.
	PageMiddleware []PageMiddleware
	// AdditionalFiles generate extra admin pages.
	AdditionalFiles []AdditionalFilesFunc
}

// PageMiddlewareArgs is passed to every page middleware stage.
type PageMiddlewareArgs struct {
	Context          *Context
	WasAccessAllowed bool
	BasePath         string
}

// PageDecision is what a page middleware stage returns when it wants to short-circuit the request.
type PageDecision struct {
	Kind string
	To   string
}

// PageMiddleware is a named stage of the page access pipeline.
type PageMiddleware struct {
	Name   string
	Handle func(ctx context.Context, args PageMiddlewareArgs) (*PageDecision, error)
}

// AdminFile is a generated admin UI page.
type AdminFile struct {
	Mode       string // "write"
	OutputPath string // e.g. "pages/signin.html"
	Src        string
}

// AdditionalFilesFunc produces admin files at startup.
type AdditionalFilesFunc func() ([]AdminFile, error)

// Clone returns a copy whose slices can be appended to independently.
func (u *UIConfig) Clone() *UIConfig {
	out := *u
	out.PublicPages = slices.Clone(u.PublicPages)
	out.PageMiddleware = slices.Clone(u.PageMiddleware)
	out.AdditionalFiles = slices.Clone(u.AdditionalFiles)

	return &out
}

// IsPublicPage reports whether path is listed in PublicPages.
func (u *UIConfig) IsPublicPage(path string) bool {
	trimmed := strings.TrimSuffix(path, "/")

	return slices.ContainsFunc(u.PublicPages, func(p string) bool {
		return strings.TrimSuffix(p, "/") == trimmed
	})
}

// RunPageMiddleware runs the stages in order and returns the first decision.
// A nil decision means the request proceeds.
func RunPageMiddleware(ctx context.Context, stages []PageMiddleware, args PageMiddlewareArgs) (*PageDecision, error) {
	for _, stage := range stages {
		if stage.Handle == nil {
			continue
		}

		decision, err := stage.Handle(ctx, args)
		if err != nil {
			return nil, errors.Wrapf(err, "page middleware %q", stage.Name)
		}
		if decision != nil {
			return decision, nil
		}
	}

	return nil, nil
}

// GenerateAdminFiles collects files from every generator in order.
func GenerateAdminFiles(generators []AdditionalFilesFunc) ([]AdminFile, error) {
	var files []AdminFile
	for _, gen := range generators {
		out, err := gen()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate admin files")
		}
		files = append(files, out...)
	}

	return files, nil
}
