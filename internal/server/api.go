package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

type fieldResponse struct {
	Key  string      `json:"key"`
	Kind blocks.Kind `json:"kind"`
}

type templateResponse struct {
	ID           blocks.Type     `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	DefaultProps map[string]any  `json:"defaultProps"`
	Fields       []fieldResponse `json:"fields"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	category := registry.CategoryAll
	if name := r.URL.Query().Get("category"); name != "" {
		parsed, err := registry.ParseCategory(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, "%v", err)
			return
		}
		category = parsed
	}
	list := s.registry.Filter(category, r.URL.Query().Get("q"))
	resp := make([]templateResponse, 0, len(list))
	for _, t := range list {
		fields := t.Fields()
		out := make([]fieldResponse, len(fields))
		for i, f := range fields {
			out[i] = fieldResponse{Key: f.Key, Kind: f.Kind}
		}
		resp = append(resp, templateResponse{
			ID:           t.ID,
			Name:         t.Name,
			Category:     string(t.Category),
			Description:  t.Description,
			DefaultProps: blocks.ToMap(t.DefaultProps()),
			Fields:       out,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": resp})
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"presets": theme.Presets(),
		"fonts":   theme.FontOptions(),
		"default": theme.Default(),
	})
}

type layoutResponse struct {
	Components []blocks.Component `json:"components"`
	Theme      theme.Config       `json:"theme"`
	Source     map[string]string  `json:"source"`
}

func scopeFrom(r *http.Request) layout.Scope {
	return layout.Scope{StoreID: chi.URLParam(r, "storeID"), PageID: chi.URLParam(r, "pageID")}
}

// handleGetLayout always answers with a usable layout: misses fall back
// through the store layout and template down to the default theme.
func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	scope := scopeFrom(r)
	loaded := s.loader.Load(r.Context(), scope, r.URL.Query().Get("template"))
	l := loaded.Layout()
	writeJSON(w, http.StatusOK, layoutResponse{
		Components: l.Components,
		Theme:      *l.Theme,
		Source: map[string]string{
			"components": string(loaded.ComponentSource),
			"theme":      string(loaded.ThemeSource),
		},
	})
}

func (s *Server) handlePutLayout(w http.ResponseWriter, r *http.Request) {
	if s.layouts == nil {
		writeError(w, http.StatusServiceUnavailable, "no layout store configured")
		return
	}
	scope := scopeFrom(r)
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "read body: %v", err)
		return
	}
	l, err := layout.Parse("request", body)
	if err != nil {
		writeError(w, statusFor(err), "%v", err)
		return
	}
	if err := s.layouts.Save(r.Context(), scope, l); err != nil {
		s.log.WithFields(map[string]any{"store_id": scope.StoreID, "page_id": scope.PageID}).Warn(err, "layout save failed")
		writeError(w, statusFor(err), "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Layout saved successfully", "components": len(l.Components)})
}

type previewStore struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// previewRequest carries everything but the layout itself, which is decoded
// separately with the lenient layout decoder.
type previewRequest struct {
	StoreTheme *theme.Config      `json:"storeTheme,omitempty"`
	Products   []products.Product `json:"products"`
	Mode       string             `json:"mode"`
	Device     string             `json:"device"`
	Store      previewStore       `json:"store"`
	Document   bool               `json:"document"`
}

// handlePreview renders posted components without persisting them. Pending
// assets are allowed here; the edit-preview mode shows them.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "read body: %v", err)
		return
	}
	var req previewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: %v", err)
		return
	}
	var l layout.Layout
	if err := json.Unmarshal(body, &l); err != nil {
		writeError(w, http.StatusBadRequest, "invalid layout: %v", err)
		return
	}
	mode, err := render.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	device := render.DeviceDesktop
	if req.Device == string(render.DeviceMobile) {
		device = render.DeviceMobile
	}

	store := render.Store{Name: req.Store.Name, Slug: req.Store.Slug, Description: req.Store.Description}
	ctx := render.Context{
		PageTheme:  l.Theme,
		StoreTheme: req.StoreTheme,
		Products:   req.Products,
		Mode:       mode,
		Device:     device,
		Store:      store,
	}
	node := render.RenderPage(l.Components, ctx)
	if req.Document {
		node = render.Document(render.Shell{Store: store, PageTheme: l.Theme, StoreTheme: req.StoreTheme}, node)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(render.HTML(node)))
}
