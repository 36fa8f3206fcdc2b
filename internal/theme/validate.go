package theme

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern  = regexp.MustCompile(`^(?:rgb|rgba|hsl|hsla)\(\s*[0-9.%,\s/]+\)$`)
	namedColorPattern = regexp.MustCompile(`^[a-z]{3,20}$`)
)

// Validator returns the shared validator with the css_color rule registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return IsCSSColor(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// IsCSSColor accepts hex, rgb()/hsl() and keyword colors such as "transparent".
func IsCSSColor(value string) bool {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return false
	}
	return hexColorPattern.MatchString(v) || funcColorPattern.MatchString(v) || namedColorPattern.MatchString(v)
}

// Validate checks every set color and font of cfg.
func Validate(cfg Config) error {
	if err := Validator().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return storefronterrors.NewValidationError(strings.ToLower(first.Namespace()), "invalid value "+quote(first.Value()), err)
		}
		return storefronterrors.NewValidationError("theme", err.Error(), err)
	}
	return nil
}

func quote(v any) string {
	s, _ := v.(string)
	return `"` + s + `"`
}
