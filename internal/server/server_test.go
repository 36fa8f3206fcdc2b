package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/site"
	"github.com/alexisbeaulieu97/storefront/internal/storefrontapi"
)

type stubCatalog struct{}

func (stubCatalog) GetStoreBySlug(_ context.Context, slug string) (storefrontapi.Store, error) {
	if slug != "acme" {
		return storefrontapi.Store{}, layout.ErrNotFound
	}
	return storefrontapi.Store{ID: "12", Name: "Acme", Slug: "acme"}, nil
}

func (stubCatalog) GetStorePages(context.Context, string) ([]storefrontapi.Page, error) {
	return nil, nil
}

func (stubCatalog) GetStorePage(context.Context, string, string) (storefrontapi.Page, error) {
	return storefrontapi.Page{}, layout.ErrNotFound
}

func (stubCatalog) GetStoreProducts(context.Context, string) ([]products.Product, error) {
	return nil, nil
}

type recordingSubscriber struct{ emails []string }

func (r *recordingSubscriber) Subscribe(_ context.Context, _, email string) error {
	r.emails = append(r.emails, email)
	return nil
}

func newTestServer(t *testing.T, token string) (http.Handler, *layout.FileStore, *recordingSubscriber) {
	t.Helper()
	files, err := layout.NewFileStore(t.TempDir())
	require.NoError(t, err)
	sub := &recordingSubscriber{}
	svc := site.NewService(site.Options{Catalog: stubCatalog{}, Layouts: files, Scope: site.ByID})
	srv := New(Options{Site: svc, Layouts: files, Subscriber: sub, Token: token})
	return srv.Router(), files, sub
}

func do(h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStoreHome(t *testing.T) {
	h, _, _ := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/stores/acme", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Welcome to Acme")

	missing := do(h, http.MethodGet, "/stores/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "Store Not Found")
}

func TestStorePageDefaults(t *testing.T) {
	h, _, _ := newTestServer(t, "")
	about := do(h, http.MethodGet, "/stores/acme/pages/about", "", nil)
	assert.Equal(t, http.StatusOK, about.Code)
	assert.Contains(t, about.Body.String(), "About Our Store")

	missing := do(h, http.MethodGet, "/stores/acme/pages/careers", "", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestLayoutRoundTrip(t *testing.T) {
	h, files, _ := newTestServer(t, "")
	body := `{"components":[{"id":"b","type":"spacer","order":3,"props":{"height":"20px"}},{"id":"a","type":"divider","order":1,"props":{}}],"theme":{"colors":{"primary":"#123456"}}}`
	rec := do(h, http.MethodPut, "/api/stores/12/layout", body, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := files.Load(context.Background(), layout.StoreScope("12"))
	require.NoError(t, err)
	require.Len(t, stored.Components, 2)
	assert.Equal(t, "a", stored.Components[0].ID)

	rec = do(h, http.MethodGet, "/api/stores/12/layout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Components []map[string]any `json:"components"`
		Theme      map[string]any   `json:"theme"`
		Source     map[string]string
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Components, 2)
	assert.Equal(t, "a", got.Components[0]["id"])
	assert.Equal(t, "#123456", got.Theme["colors"].(map[string]any)["primary"])
	assert.Equal(t, "store-layout", got.Source["components"])
}

func TestGetLayoutFallsBackToDefault(t *testing.T) {
	h, _, _ := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/api/stores/99/pages/about/layout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Components []any             `json:"components"`
		Source     map[string]string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got.Components)
	assert.Equal(t, "default", got.Source["theme"])
}

func TestPutLayoutRejectsPendingAssets(t *testing.T) {
	h, _, _ := newTestServer(t, "")
	body := `{"components":[{"id":"h","type":"hero-banner","props":{"backgroundImage":"blob:tmp-1"}}]}`
	rec := do(h, http.MethodPut, "/api/stores/12/pages/home/layout", body, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPutLayoutRequiresToken(t *testing.T) {
	h, _, _ := newTestServer(t, "s3cret")
	body := `{"components":[]}`
	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodPut, "/api/stores/12/layout", body, nil).Code)
	for _, wrong := range []string{"Bearer s3cre", "Bearer s3cret!", "Bearer S3CRET", "Bearer "} {
		rec := do(h, http.MethodPut, "/api/stores/12/layout", body, map[string]string{"Authorization": wrong})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, wrong)
	}
	ok := do(h, http.MethodPut, "/api/stores/12/layout", body, map[string]string{"Authorization": "Bearer s3cret"})
	assert.Equal(t, http.StatusOK, ok.Code)
}

func TestTemplatesEndpoint(t *testing.T) {
	h, _, _ := newTestServer(t, "")
	rec := do(h, http.MethodGet, "/api/templates?category=hero", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Templates []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
			Fields   []struct {
				Key string `json:"key"`
			} `json:"fields"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Templates, 4)
	for _, tmpl := range got.Templates {
		assert.Equal(t, "hero", tmpl.Category)
		assert.NotEmpty(t, tmpl.Fields)
	}

	bad := do(h, http.MethodGet, "/api/templates?category=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestPreviewRendersEditMode(t *testing.T) {
	h, _, _ := newTestServer(t, "")
	body := `{"components":[{"id":"g","type":"product-grid","props":{}},{"id":"x","type":"marquee","props":{}}],"mode":"edit-preview","device":"mobile"}`
	rec := do(h, http.MethodPost, "/api/preview", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `data-device="mobile"`)
	assert.Contains(t, out, "grid-cols-1")
	assert.Contains(t, out, `data-unsupported-type="marquee"`)

	bad := do(h, http.MethodPost, "/api/preview", `{"mode":"print"}`, nil)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestNewsletter(t *testing.T) {
	h, _, sub := newTestServer(t, "")
	form := url.Values{"email": {"ana@example.com"}}.Encode()
	rec := do(h, http.MethodPost, "/stores/acme/newsletter", form, map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"ana@example.com"}, sub.emails)

	bad := do(h, http.MethodPost, "/stores/acme/newsletter", "email=nope", map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}
