package site

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/products"
)

// File is one entry of a store export, addressed by a slash-separated path.
type File struct {
	Path string
	Data []byte
}

// Export renders every page of a store the way the public site serves it and
// gathers the data behind them:
//
//	index.html
//	pages/<page>.html
//	layouts/store.json
//	layouts/pages/<page>.json   (pages that have their own layout)
//	data/store.json
//	data/products.json
//
// A failed page or product listing aborts the export.
func (s *Service) Export(ctx context.Context, slug string) ([]File, error) {
	store, err := s.store(ctx, slug)
	if err != nil {
		return nil, err
	}
	pages, err := s.catalog.GetStorePages(ctx, store.Slug)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	catalog, err := s.catalog.GetStoreProducts(ctx, store.Slug)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var files []File
	add := func(name string, data []byte) {
		files = append(files, File{Path: name, Data: data})
	}
	addJSON := func(name string, v any) error {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		add(name, data)
		return nil
	}

	home, err := s.Home(ctx, store.Slug)
	if err != nil {
		return nil, err
	}
	add("index.html", []byte(home.HTML()))

	storeLayout := s.loader.Load(ctx, s.scope(store, ""), store.TemplateID.String())
	data, err := layout.Marshal(storeLayout.Layout())
	if err != nil {
		return nil, err
	}
	add("layouts/store.json", data)

	for _, p := range pages {
		name := layout.SanitizeSegment(p.Slug)
		res, err := s.Page(ctx, store.Slug, p.Slug)
		if err != nil {
			return nil, err
		}
		add(path.Join("pages", name+".html"), []byte(res.HTML()))

		loaded := s.loader.Load(ctx, s.scope(store, p.Slug), store.TemplateID.String())
		if len(loaded.Components) == 0 {
			continue
		}
		data, err := layout.Marshal(loaded.Layout())
		if err != nil {
			return nil, err
		}
		add(path.Join("layouts", "pages", name+".json"), data)
	}

	if err := addJSON("data/store.json", store); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = []products.Product{}
	}
	if err := addJSON("data/products.json", catalog); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]any{"store": store.Slug, "files": len(files)}).Info("store exported")
	return files, nil
}
