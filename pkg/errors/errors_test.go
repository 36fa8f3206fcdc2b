package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("storefront.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "storefront.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: storefront.yaml:7: did not find expected key", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("theme.colors.primary", "not a CSS color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme.colors.primary", validationErr.Field)
	require.Contains(t, err.Error(), "not a CSS color")
}

func TestLoadErrorIncludesScopeAndStep(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("layout not found")
	err := NewLoadError("store/12/page/about", "page-layout", underlying)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, "page-layout", loadErr.Step)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "store/12/page/about")
}

func TestSaveErrorWrapsCause(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewSaveError("store/12", underlying)

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "save error [store/12]: connection refused", err.Error())
}

func TestAPIErrorFormatsStatus(t *testing.T) {
	t.Parallel()

	err := NewAPIError("get store", 404, "store not found")
	require.Equal(t, "api error [get store]: status 404: store not found", err.Error())

	var nilErr *APIError
	require.Equal(t, "", nilErr.Error())
}
