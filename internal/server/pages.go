package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/storefront/internal/site"
)

var formValidator = validator.New()

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if s.site == nil {
		http.NotFound(w, r)
		return
	}
	res, err := s.site.Home(r.Context(), chi.URLParam(r, "slug"))
	s.writePage(w, res, err)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if s.site == nil {
		http.NotFound(w, r)
		return
	}
	res, err := s.site.Page(r.Context(), chi.URLParam(r, "slug"), chi.URLParam(r, "pageSlug"))
	s.writePage(w, res, err)
}

func (s *Server) writePage(w http.ResponseWriter, res site.Result, err error) {
	if err != nil {
		if !errors.Is(err, site.ErrStoreNotFound) {
			s.log.Error(err, "render page")
		}
		res = site.StoreNotFound()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(res.Status)
	_, _ = w.Write([]byte(res.HTML()))
}

func (s *Server) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if s.subscriber == nil {
		writeError(w, http.StatusNotImplemented, "newsletter is not configured")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form: %v", err)
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	if err := formValidator.Var(email, "required,email"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if err := s.subscriber.Subscribe(r.Context(), slug, email); err != nil {
		s.log.WithFields(map[string]any{"store": slug}).Warn(err, "newsletter subscribe failed")
		writeError(w, statusFor(err), "subscribe failed")
		return
	}
	http.Redirect(w, r, "/stores/"+slug+"?subscribed=1", http.StatusSeeOther)
}
