package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// convertValidationError normalizes validator errors into storefront validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return storefronterrors.NewValidationError(field, msg, err)
	}

	return storefronterrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return storefronterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	switch cfg.Storage.Backend {
	case BackendFile, BackendSQLite:
		if strings.TrimSpace(cfg.Storage.Path) == "" {
			return storefronterrors.NewValidationError("storage.path", fmt.Sprintf("path is required for the %s backend", cfg.Storage.Backend), nil)
		}
	case BackendFirestore:
		if cfg.Storage.FirestoreProject == "" {
			return storefronterrors.NewValidationError("storage.firestore_project", "firestore_project is required for the firestore backend", nil)
		}
	case BackendAPI:
		if cfg.API.BaseURL == "" {
			return storefronterrors.NewValidationError("api.base_url", "base_url is required for the api backend", nil)
		}
	}

	return nil
}
