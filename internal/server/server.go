// Package server exposes the public storefront pages and the builder API
// over HTTP.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/site"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// maxLayoutBytes bounds layout and preview request bodies.
const maxLayoutBytes = 4 << 20

// Subscriber handles newsletter sign-ups from the public newsletter block.
type Subscriber interface {
	Subscribe(ctx context.Context, slug, email string) error
}

// Options wires the server's collaborators. Site may be nil when only the
// builder API is served.
type Options struct {
	Site       *site.Service
	Layouts    layout.Store
	Templates  layout.TemplateSource
	Registry   *registry.Registry
	Subscriber Subscriber
	Logger     *logger.Logger
	// Token, when set, is required as a bearer token on /api writes.
	Token   string
	Timeout time.Duration
}

// Server serves storefront pages and the builder API.
type Server struct {
	site       *site.Service
	layouts    layout.Store
	loader     *layout.Loader
	registry   *registry.Registry
	subscriber Subscriber
	log        *logger.Logger
	token      string
	timeout    time.Duration
}

// New builds a server from opts.
func New(opts Options) *Server {
	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Server{
		site:       opts.Site,
		layouts:    opts.Layouts,
		loader:     layout.NewLoader(opts.Layouts, opts.Templates, opts.Logger),
		registry:   reg,
		subscriber: opts.Subscriber,
		log:        opts.Logger.Named("server"),
		token:      opts.Token,
		timeout:    timeout,
	}
}

// Router wires every route under a single chi router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/stores/{slug}", func(r chi.Router) {
		r.Get("/", s.handleHome)
		r.Get("/pages/{pageSlug}", s.handlePage)
		r.Post("/newsletter", s.handleNewsletter)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.StripSlashes)
		r.Get("/templates", s.handleTemplates)
		r.Get("/themes/presets", s.handlePresets)
		r.Post("/preview", s.handlePreview)
		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Get("/layout", s.handleGetLayout)
			r.With(s.requireToken).Put("/layout", s.handlePutLayout)
			r.Get("/pages/{pageID}/layout", s.handleGetLayout)
			r.With(s.requireToken).Put("/pages/{pageID}/layout", s.handlePutLayout)
		})
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"bytes":       ww.BytesWritten(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		}).Debug("request served")
	})
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" {
			next.ServeHTTP(w, r)
			return
		}
		got := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			writeError(w, http.StatusUnauthorized, "missing or invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": strings.TrimSpace(fmt.Sprintf(format, args...)),
			"status":  status,
		},
	})
}

// statusFor maps storefront errors onto HTTP status codes.
func statusFor(err error) int {
	var validationErr *storefronterrors.ValidationError
	var parseErr *storefronterrors.ParseError
	switch {
	case errors.Is(err, layout.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr), errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxLayoutBytes))
}
