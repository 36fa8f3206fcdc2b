package config

import (
	"time"
)

// Config represents the full storefront configuration document.
type Config struct {
	Version string          `yaml:"version" validate:"required,semver"`
	Log     LogSettings     `yaml:"log,omitempty"`
	API     APISettings     `yaml:"api,omitempty"`
	Storage StorageSettings `yaml:"storage"`
	Server  ServerSettings  `yaml:"server,omitempty"`
	Render  RenderSettings  `yaml:"render,omitempty"`
}

// LogSettings controls the zerolog output.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	// HumanReadable forces console output; nil means "when stderr is a terminal".
	HumanReadable *bool `yaml:"human_readable,omitempty"`
}

// APISettings points at the storefront API.
type APISettings struct {
	BaseURL string        `yaml:"base_url,omitempty" validate:"omitempty,url"`
	Token   string        `yaml:"token,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty" validate:"omitempty,min=0"`
}

// StorageSettings selects where layouts live.
type StorageSettings struct {
	Backend          string `yaml:"backend" validate:"required,storage_backend"`
	Path             string `yaml:"path,omitempty"`
	FirestoreProject string `yaml:"firestore_project,omitempty"`
	// History commits every save to git. Only the file backend keeps history.
	History bool      `yaml:"history,omitempty"`
	Author  AuthorSet `yaml:"author,omitempty"`
}

// AuthorSet signs history commits.
type AuthorSet struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty" validate:"omitempty,email"`
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Addr         string        `yaml:"addr,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty" validate:"omitempty,min=0"`
	// Token guards layout writes on the builder API.
	Token string `yaml:"token,omitempty"`
}

// RenderSettings holds renderer defaults.
type RenderSettings struct {
	DefaultMode string `yaml:"default_mode,omitempty" validate:"omitempty,render_mode"`
}

// Storage backends.
const (
	BackendFile      = "file"
	BackendSQLite    = "sqlite"
	BackendFirestore = "firestore"
	BackendAPI       = "api"
)

// Default returns a usable configuration: file-backed layouts with history
// under ./layouts and the API on localhost.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Log:     LogSettings{Level: "info"},
		API: APISettings{
			BaseURL: "http://localhost:8080/api/v1",
			Timeout: 10 * time.Second,
		},
		Storage: StorageSettings{
			Backend: BackendFile,
			Path:    "./layouts",
			History: true,
			Author:  AuthorSet{Name: "storefront", Email: "storefront@localhost"},
		},
		Server: ServerSettings{Addr: ":3000", WriteTimeout: 30 * time.Second},
		Render: RenderSettings{DefaultMode: "public"},
	}
}
