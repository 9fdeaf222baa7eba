// Package session provides the session strategies the framework can be configured with.
package session

import (
	"net/http"
	"strings"
	"time"

	"cms/config"
	"cms/internal/core"
)

const bearerPrefix = "Bearer "

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Name   string
	Path   string
	Secure bool
	MaxAge time.Duration
}

// CookieOptionsFrom builds cookie options from the session config.
func CookieOptionsFrom(cfg config.SessionConfig) CookieOptions {
	return CookieOptions{
		Name:   cfg.CookieName,
		Path:   "/",
		Secure: cfg.Secure,
		MaxAge: cfg.MaxAge,
	}
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}

	return o
}

// setCookie issues the session cookie when the context has a response writer.
func setCookie(kctx *core.Context, token string, opts CookieOptions) {
	w := kctx.ResponseWriter()
	if w == nil {
		return
	}
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     opts.Path,
		Expires:  time.Now().Add(opts.MaxAge),
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearCookie removes the session cookie from the client.
func clearCookie(kctx *core.Context, opts CookieOptions) {
	w := kctx.ResponseWriter()
	if w == nil {
		return
	}
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenFromRequest reads the session token from the cookie, then from the Authorization header.
func tokenFromRequest(kctx *core.Context, cookieName string) string {
	r := kctx.Request()
	if r == nil {
		return ""
	}

	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	return ""
}
