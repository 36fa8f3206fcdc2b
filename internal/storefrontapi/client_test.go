package storefrontapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/api/v1/", Token: "secret"})
}

func TestGetStoreBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stores/acme", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":12,"name":"Acme","slug":"acme","template_id":3}`)
	})

	store, err := client.GetStoreBySlug(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, ID("12"), store.ID)
	assert.Equal(t, ID("3"), store.TemplateID)
	assert.Equal(t, "Acme", store.Name)
	assert.True(t, store.Active())
}

func TestNotFoundMapsToLayoutErrNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Store not found"}`)
	})

	_, err := client.Load(context.Background(), layout.StoreScope("12"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *storefronterrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Store not found", apiErr.Message)
}

func TestServerErrorIsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetProducts(context.Background(), "12")
	var apiErr *storefronterrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "boom", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestLoadPageLayoutNormalizes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/manage/stores/12/pages/about/layout", r.URL.Path)
		_, _ = io.WriteString(w, `{"components":[
			{"id":"b","type":"spacer","order":5,"props":{}},
			{"id":"a","type":"divider","order":1,"props":{}}
		]}`)
	})

	l, err := client.Load(context.Background(), layout.PageScope("12", "about"))
	require.NoError(t, err)
	require.Len(t, l.Components, 2)
	assert.Equal(t, "a", l.Components[0].ID)
	assert.Equal(t, 0, l.Components[0].Order)
	assert.Equal(t, 1, l.Components[1].Order)
}

func TestSaveStoreLayoutPostsNormalizedBody(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/manage/stores/12/layout", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})

	l := layout.Layout{Components: []blocks.Component{
		blocks.New("x", blocks.Spacer, 7, nil),
	}}
	require.NoError(t, client.Save(context.Background(), layout.StoreScope("12"), l))

	comps, ok := got["components"].([]any)
	require.True(t, ok)
	require.Len(t, comps, 1)
	assert.EqualValues(t, 0, comps[0].(map[string]any)["order"])
}

func TestSaveRejectsPendingAssetsWithoutRequest(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	props := &blocks.HeroBannerProps{BackgroundImage: blocks.PendingLocal("tmp-1")}
	l := layout.Layout{Components: []blocks.Component{blocks.New("h", blocks.HeroBanner, 0, props)}}

	err := client.Save(context.Background(), layout.StoreScope("12"), l)
	require.Error(t, err)
	assert.ErrorIs(t, err, blocks.ErrPendingAsset)
	assert.False(t, called)
}

func TestPublicLayoutsAreReadOnly(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stores/acme/pages/about/layout", r.URL.Path)
		_, _ = io.WriteString(w, `{"components":"not-an-array"}`)
	})

	public := client.Public()
	l, err := public.Load(context.Background(), layout.PageScope("acme", "about"))
	require.NoError(t, err)
	assert.Empty(t, l.Components)
	assert.ErrorIs(t, public.Save(context.Background(), layout.StoreScope("acme"), l), ErrReadOnly)
}

func TestTemplateDecodesStringConfig(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/templates/4", r.URL.Path)
		config := `{"colors":{"primary":"#111111"},"components":[{"type":"spacer","props":{}}]}`
		payload, _ := json.Marshal(map[string]any{"id": 4, "name": "Bold", "config": config})
		_, _ = w.Write(payload)
	})

	tpl, err := client.Template(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "4", tpl.ID)
	assert.Equal(t, "Bold", tpl.Name)
	require.NotNil(t, tpl.Theme)
	assert.Equal(t, "#111111", tpl.Theme.Colors.Primary)
	require.Len(t, tpl.Components, 1)
	assert.Equal(t, blocks.Spacer, tpl.Components[0].Type)
}

func TestUploadLogo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/manage/stores/12/logo", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("logo")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "logo.png", header.Filename)
		assert.Equal(t, "png-bytes", string(data))
		_, _ = io.WriteString(w, `{"url":"https://cdn.example.com/logo.png"}`)
	})

	url, err := client.Upload(context.Background(), "12", MediaLogo, "/tmp/logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/logo.png", url)
}

func TestUploadTooLarge(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://127.0.0.1:0"})
	big := strings.NewReader(strings.Repeat("x", MaxUploadBytes+1))
	_, err := client.Upload(context.Background(), "12", MediaImage, "a.png", big)
	assert.ErrorIs(t, err, ErrUploadTooLarge)
}
