package auth

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"unicode"

	"cms/internal/core"
	authgraphql "cms/internal/delivery/graphql"

	"github.com/pkg/errors"
)

const (
	// SigninPagePath is the admin path of the sign-in page, relative to the UI base path.
	SigninPagePath = "/signin"
	// SigninOutputPath is where the generated sign-in page is written.
	SigninOutputPath = "pages/signin.html"
	// GraphQLPath is the endpoint the sign-in page posts to.
	GraphQLPath = "/api/graphql"
)

//go:embed templates/signin.html.tmpl
var templateFS embed.FS

var signinTemplate = template.Must(template.ParseFS(templateFS, "templates/signin.html.tmpl"))

type signinData struct {
	IdentityField string
	SecretField   string
	IdentityLabel string
	SecretLabel   string
	Mutation      string
	SuccessType   string
	GraphQLPath   string
	HomePath      string
}

// signinFiles renders the sign-in page for the configured list and fields.
func (a *Auth) signinFiles(basePath string) core.AdditionalFilesFunc {
	return func() ([]core.AdminFile, error) {
		names := authgraphql.NamesFor(a.cfg.ListKey)
		data := signinData{
			IdentityField: a.cfg.IdentityField,
			SecretField:   a.cfg.SecretField,
			IdentityLabel: label(a.cfg.IdentityField),
			SecretLabel:   label(a.cfg.SecretField),
			Mutation:      signinMutation(names, a.cfg.IdentityField, a.cfg.SecretField),
			SuccessType:   names.Success,
			GraphQLPath:   GraphQLPath,
			HomePath:      basePath + "/",
		}

		var buf bytes.Buffer
		if err := signinTemplate.Execute(&buf, data); err != nil {
			return nil, errors.Wrap(err, "failed to render sign-in page")
		}

		return []core.AdminFile{{
			Mode:       "write",
			OutputPath: SigninOutputPath,
			Src:        buf.String(),
		}}, nil
	}
}

func signinMutation(names authgraphql.Names, identityField, secretField string) string {
	return fmt.Sprintf(
		"mutation($identity: String!, $secret: String!) { authenticate: %s(%s: $identity, %s: $secret) { "+
			"__typename ... on %s { item { id } } ... on %s { message } } }",
		names.AuthenticateWithPassword, identityField, secretField, names.Success, names.Failure)
}

// label turns a field key into a form label, e.g. "emailAddress" -> "Email Address".
func label(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
