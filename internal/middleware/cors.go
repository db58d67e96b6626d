// Package middleware provides reusable HTTP middleware for the goal tracker API.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"
)

// AllowedMethods and AllowedHeaders cover the full REST surface of the API.
var (
	AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	AllowedHeaders = []string{"Content-Type"}
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash),
// or "*" to allow any origin.
//
// With "*" the permissive headers are written on every response, whether or
// not the request carried an Origin header and whatever status the handler
// returns. Every OPTIONS request is answered with 204 and the same static
// headers; rs/cors still adds the Vary headers.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(allowedOrigins, "*")
	c := cors.New(cors.Options{
		AllowedOrigins:     allowedOrigins,
		AllowedMethods:     AllowedMethods,
		AllowedHeaders:     AllowedHeaders,
		OptionsPassthrough: wildcard,
	})

	if !wildcard {
		return func(next http.Handler) http.Handler {
			return c.Handler(next)
		}
	}

	methods := strings.Join(AllowedMethods, ", ")
	headers := strings.Join(AllowedHeaders, ", ")
	stamp := func(w http.ResponseWriter) {
		hdr := w.Header()
		hdr.Set("Access-Control-Allow-Origin", "*")
		hdr.Set("Access-Control-Allow-Methods", methods)
		hdr.Set("Access-Control-Allow-Headers", headers)
	}

	return func(next http.Handler) http.Handler {
		// rs/cors rewrites the Allow-* headers on a preflight before passing
		// it through, so OPTIONS is stamped again and terminated here.
		h := c.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				stamp(w)
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		}))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stamp(w)
			h.ServeHTTP(w, r)
		})
	}
}
