// Package site composes public storefront pages: it gathers the store,
// navigation, products and layout, then renders a complete document.
package site

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/storefrontapi"
)

// ErrStoreNotFound is returned when the store is missing or not active.
var ErrStoreNotFound = errors.New("store not found")

// Catalog is the read side of the storefront API the site needs.
type Catalog interface {
	GetStoreBySlug(ctx context.Context, slug string) (storefrontapi.Store, error)
	GetStorePages(ctx context.Context, slug string) ([]storefrontapi.Page, error)
	GetStorePage(ctx context.Context, slug, pageSlug string) (storefrontapi.Page, error)
	GetStoreProducts(ctx context.Context, slug string) ([]products.Product, error)
}

// ScopeFunc maps a store and page slug onto the layout scope that holds
// its layout. pageSlug is empty for the home page.
type ScopeFunc func(store storefrontapi.Store, pageSlug string) layout.Scope

// BySlug keys layouts by store and page slug, matching the public API.
func BySlug(store storefrontapi.Store, pageSlug string) layout.Scope {
	return layout.Scope{StoreID: store.Slug, PageID: pageSlug}
}

// ByID keys layouts by store id and page slug, matching the local stores.
func ByID(store storefrontapi.Store, pageSlug string) layout.Scope {
	return layout.Scope{StoreID: store.ID.String(), PageID: pageSlug}
}

// Result is a rendered page and the HTTP status it should be served with.
type Result struct {
	Status   int
	Title    string
	Document *html.Node
}

// HTML serializes the document.
func (r Result) HTML() string { return render.HTML(r.Document) }

// Service renders public pages.
type Service struct {
	catalog Catalog
	loader  *layout.Loader
	scope   ScopeFunc
	log     *logger.Logger
	now     func() time.Time
}

// Options configures a Service.
type Options struct {
	Catalog   Catalog
	Layouts   layout.Store
	Templates layout.TemplateSource
	Scope     ScopeFunc
	Logger    *logger.Logger
}

// NewService wires a Service. Scope defaults to BySlug.
func NewService(opts Options) *Service {
	scope := opts.Scope
	if scope == nil {
		scope = BySlug
	}
	return &Service{
		catalog: opts.Catalog,
		loader:  layout.NewLoader(opts.Layouts, opts.Templates, opts.Logger),
		scope:   scope,
		log:     opts.Logger.Named("site"),
		now:     time.Now,
	}
}

// Home renders the store front page. An empty layout renders the default
// home content.
func (s *Service) Home(ctx context.Context, slug string) (Result, error) {
	store, err := s.store(ctx, slug)
	if err != nil {
		return Result{}, err
	}
	nav := s.nav(ctx, store, "")
	catalog := s.products(ctx, store)

	loaded := s.loader.Load(ctx, s.scope(store, ""), store.TemplateID.String())
	rc := renderContext(store, loaded, catalog)
	body := render.RenderPage(loaded.Components, rc)

	return s.document(store, loaded, nav, store.Name, http.StatusOK, body), nil
}

// Page renders a named page. A page with no layout shows its own content;
// a page that does not exist shows built-in content for the well-known
// slugs and "Page Not Found" otherwise.
func (s *Service) Page(ctx context.Context, slug, pageSlug string) (Result, error) {
	store, err := s.store(ctx, slug)
	if err != nil {
		return Result{}, err
	}
	nav := s.nav(ctx, store, pageSlug)
	catalog := s.products(ctx, store)

	page, err := s.catalog.GetStorePage(ctx, store.Slug, pageSlug)
	if errors.Is(err, layout.ErrNotFound) {
		s.log.WithFields(map[string]any{"store": store.Slug, "page": pageSlug}).Debug("page not found, using built-in content")
		loaded := s.storeTheme(ctx, store)
		rc := renderContext(store, loaded, catalog)
		if def, ok := defaultPageFor(pageSlug, store.Slug, s.now()); ok {
			return s.document(store, loaded, nav, def.Title, http.StatusOK, render.StaticPage(def.Title, def.Content, rc)), nil
		}
		body := render.StaticPage("Page Not Found", notFoundContent, rc)
		return s.document(store, loaded, nav, "Page Not Found", http.StatusNotFound, body), nil
	}
	if err != nil {
		return s.degradedPage(ctx, store, pageSlug, nav, catalog, err), nil
	}

	loaded := s.loader.Load(ctx, s.scope(store, page.Slug), store.TemplateID.String())
	rc := renderContext(store, loaded, catalog)
	title := firstNonEmpty(page.SEOTitle, page.Title)

	var body *html.Node
	if len(loaded.Components) > 0 {
		body = render.RenderPage(loaded.Components, rc)
	} else {
		body = render.StaticPage(page.Title, page.Content, rc)
	}
	return s.document(store, loaded, nav, title, http.StatusOK, body), nil
}

// degradedPage serves a page whose metadata could not be fetched. The page
// layout is still tried; without one the built-in content or an
// "unavailable" notice stands in.
func (s *Service) degradedPage(ctx context.Context, store storefrontapi.Store, pageSlug string, nav []render.NavLink, catalog []products.Product, cause error) Result {
	s.log.WithFields(map[string]any{"store": store.Slug, "page": pageSlug}).Warn(cause, "page lookup failed")

	loaded := s.loader.Load(ctx, s.scope(store, pageSlug), store.TemplateID.String())
	rc := renderContext(store, loaded, catalog)
	if len(loaded.Components) > 0 {
		return s.document(store, loaded, nav, store.Name, http.StatusOK, render.RenderPage(loaded.Components, rc))
	}
	if def, ok := defaultPageFor(pageSlug, store.Slug, s.now()); ok {
		return s.document(store, loaded, nav, def.Title, http.StatusOK, render.StaticPage(def.Title, def.Content, rc))
	}
	body := render.StaticPage("Page Unavailable", unavailableContent, rc)
	return s.document(store, loaded, nav, "Page Unavailable", http.StatusServiceUnavailable, body)
}

// StoreNotFound renders the page shown for an unknown or inactive store.
func StoreNotFound() Result {
	body := render.StaticPage("Store Not Found", "<p>The store you're looking for doesn't exist or is not active.</p><p><a href=\"/\">Go Home</a></p>", render.Context{Mode: render.ModePublic})
	doc := render.Document(render.Shell{Title: "Store Not Found"}, body)
	return Result{Status: http.StatusNotFound, Title: "Store Not Found", Document: doc}
}

func (s *Service) store(ctx context.Context, slug string) (storefrontapi.Store, error) {
	store, err := s.catalog.GetStoreBySlug(ctx, slug)
	if err != nil {
		s.log.WithFields(map[string]any{"store": slug}).Warn(err, "store lookup failed")
		return storefrontapi.Store{}, errors.Join(ErrStoreNotFound, err)
	}
	if !store.Active() {
		return storefrontapi.Store{}, ErrStoreNotFound
	}
	if store.Slug == "" {
		store.Slug = slug
	}
	return store, nil
}

// storeTheme loads only the store scope so a built-in page still wears the
// store theme.
func (s *Service) storeTheme(ctx context.Context, store storefrontapi.Store) layout.Loaded {
	loaded := s.loader.Load(ctx, s.scope(store, ""), store.TemplateID.String())
	loaded.Components = nil
	return loaded
}

func (s *Service) nav(ctx context.Context, store storefrontapi.Store, active string) []render.NavLink {
	pages, err := s.catalog.GetStorePages(ctx, store.Slug)
	if err != nil {
		s.log.WithFields(map[string]any{"store": store.Slug}).Warn(err, "could not load store pages")
		return nil
	}
	links := make([]render.NavLink, 0, len(pages))
	for _, p := range pages {
		links = append(links, render.NavLink{
			Label:  p.Title,
			Href:   "/stores/" + store.Slug + "/pages/" + p.Slug,
			Active: p.Slug == active,
		})
	}
	return links
}

func (s *Service) products(ctx context.Context, store storefrontapi.Store) []products.Product {
	list, err := s.catalog.GetStoreProducts(ctx, store.Slug)
	if err != nil {
		s.log.WithFields(map[string]any{"store": store.Slug}).Warn(err, "could not load store products")
		return nil
	}
	return list
}

func (s *Service) document(store storefrontapi.Store, loaded layout.Loaded, nav []render.NavLink, title string, status int, body *html.Node) Result {
	shell := render.Shell{
		Title:      title,
		Store:      renderStore(store),
		Nav:        nav,
		CartHref:   "/stores/" + store.Slug + "/cart",
		PageTheme:  loaded.PageTheme,
		StoreTheme: loaded.StoreTheme,
		Favicon:    store.Favicon,
	}
	return Result{Status: status, Title: title, Document: render.Document(shell, body)}
}

func renderContext(store storefrontapi.Store, loaded layout.Loaded, catalog []products.Product) render.Context {
	return render.Context{
		PageTheme:  loaded.PageTheme,
		StoreTheme: loaded.StoreTheme,
		Products:   catalog,
		Mode:       render.ModePublic,
		Device:     render.DeviceDesktop,
		Store:      renderStore(store),
	}
}

func renderStore(store storefrontapi.Store) render.Store {
	return render.Store{Name: store.Name, Slug: store.Slug, Description: store.Description}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
