package layout

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// TemplateSource fetches store templates.
type TemplateSource interface {
	Template(ctx context.Context, templateID string) (Template, error)
}

// Source names where a piece of a loaded layout came from.
type Source string

const (
	SourcePageLayout  Source = "page-layout"
	SourceStoreLayout Source = "store-layout"
	SourceTemplate    Source = "template"
	SourceDefault     Source = "default"
)

// Loaded is the outcome of the load fallback chain.
type Loaded struct {
	Scope      Scope
	Components []blocks.Component
	// PageTheme is the theme saved with a page layout; nil for store scopes.
	PageTheme *theme.Config
	// StoreTheme is the store layout theme, else the template theme.
	StoreTheme      *theme.Config
	ComponentSource Source
	ThemeSource     Source
	// Failures holds one *errors.LoadError per step that missed.
	Failures []error
}

// Theme is the effective editable theme: defaults, then the store theme,
// then the page theme.
func (l Loaded) Theme() theme.Config {
	merged := theme.Default()
	if l.StoreTheme != nil {
		merged = theme.Merge(merged, *l.StoreTheme)
	}
	if l.PageTheme != nil {
		merged = theme.Merge(merged, *l.PageTheme)
	}
	return merged
}

// Layout is the loaded layout in the shape Save expects for its scope.
func (l Loaded) Layout() Layout {
	t := l.Theme()
	out := Layout{Components: make([]blocks.Component, len(l.Components)), Theme: &t}
	for i, c := range l.Components {
		out.Components[i] = c.Clone()
	}
	return out
}

// Loader runs the read-path fallback chain. It never returns an error:
// every failed step is logged and recorded, and the chain moves on.
type Loader struct {
	store     Store
	templates TemplateSource
	log       *logger.Logger
}

// NewLoader builds a loader. templates and log may be nil.
func NewLoader(store Store, templates TemplateSource, log *logger.Logger) *Loader {
	return &Loader{store: store, templates: templates, log: log.Named("layout")}
}

// Load resolves the layout of scope.
//
// A page scope takes its components from the page layout only; a missing
// page layout yields an empty page, never the home page's blocks. Its store
// theme comes from the store layout, else the template. A store scope takes
// components and theme from the store layout, else the template, else
// nothing (the renderer then shows its default home content).
func (l *Loader) Load(ctx context.Context, scope Scope, templateID string) Loaded {
	out := Loaded{
		Scope:           scope,
		Components:      []blocks.Component{},
		ComponentSource: SourceDefault,
		ThemeSource:     SourceDefault,
	}

	if scope.IsPage() {
		if page, err := l.step(ctx, &out, SourcePageLayout, scope); err == nil {
			out.Components = page.Components
			out.PageTheme = page.Theme
			out.ComponentSource = SourcePageLayout
			if page.Theme != nil {
				out.ThemeSource = SourcePageLayout
			}
		}
	}

	var tmpl *Template
	if store, err := l.step(ctx, &out, SourceStoreLayout, scope.Store()); err == nil {
		out.StoreTheme = store.Theme
		if out.ThemeSource == SourceDefault && store.Theme != nil {
			out.ThemeSource = SourceStoreLayout
		}
		if !scope.IsPage() {
			out.Components = store.Components
			out.ComponentSource = SourceStoreLayout
			return out
		}
	}

	if out.StoreTheme != nil {
		return out
	}

	if t, err := l.template(ctx, &out, templateID); err == nil {
		tmpl = &t
	}
	if tmpl == nil {
		return out
	}
	out.StoreTheme = tmpl.Theme
	if out.ThemeSource == SourceDefault && tmpl.Theme != nil {
		out.ThemeSource = SourceTemplate
	}
	if !scope.IsPage() && len(tmpl.Components) > 0 {
		out.Components = tmpl.Components
		out.ComponentSource = SourceTemplate
	}
	return out
}

func (l *Loader) step(ctx context.Context, out *Loaded, step Source, scope Scope) (Layout, error) {
	if l.store == nil {
		return Layout{}, l.fail(out, step, errors.New("no layout store configured"))
	}
	loaded, err := l.store.Load(ctx, scope)
	if err != nil {
		return Layout{}, l.fail(out, step, err)
	}
	return loaded, nil
}

func (l *Loader) template(ctx context.Context, out *Loaded, templateID string) (Template, error) {
	if templateID == "" {
		return Template{}, l.fail(out, SourceTemplate, errors.New("store has no template"))
	}
	if l.templates == nil {
		return Template{}, l.fail(out, SourceTemplate, errors.New("no template source configured"))
	}
	t, err := l.templates.Template(ctx, templateID)
	if err != nil {
		return Template{}, l.fail(out, SourceTemplate, err)
	}
	return t, nil
}

func (l *Loader) fail(out *Loaded, step Source, err error) error {
	loadErr := storefronterrors.NewLoadError(out.Scope.String(), string(step), err)
	out.Failures = append(out.Failures, loadErr)
	l.log.WithFields(map[string]any{
		"store_id": out.Scope.StoreID,
		"page_id":  out.Scope.PageID,
		"step":     string(step),
	}).Warn(loadErr, "layout load step failed, falling back")
	return loadErr
}
