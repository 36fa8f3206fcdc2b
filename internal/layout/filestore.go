package layout

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

const (
	storeLayoutFile = "store.json"
	pagesDir        = "pages"
	maxSegmentLen   = 64
	segmentHashLen  = 8
)

var (
	nonAlphanumericExpr = regexp.MustCompile(`[^a-z0-9]+`)
	cleanSegmentExpr    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// FileStore keeps one JSON document per scope under a root directory:
//
//	<root>/<store>/store.json
//	<root>/<store>/pages/<page>.json
type FileStore struct {
	root string
	mu   sync.RWMutex
}

// NewFileStore creates the root directory if needed.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create layout directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Root returns the directory layouts are written under.
func (s *FileStore) Root() string { return s.root }

// RelPath returns the scope's file path relative to Root.
func (s *FileStore) RelPath(scope Scope) string {
	store := SanitizeSegment(scope.StoreID)
	if scope.IsPage() {
		return filepath.Join(store, pagesDir, SanitizeSegment(scope.PageID)+".json")
	}
	return filepath.Join(store, storeLayoutFile)
}

// Load reads the layout of scope.
func (s *FileStore) Load(ctx context.Context, scope Scope) (Layout, error) {
	if err := ctx.Err(); err != nil {
		return Layout{}, err
	}
	if err := scope.Validate(); err != nil {
		return Layout{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := filepath.Join(s.root, s.RelPath(scope))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{}, fmt.Errorf("%s: %w", scope, ErrNotFound)
		}
		return Layout{}, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(path, data)
}

// Save writes the layout of scope atomically.
func (s *FileStore) Save(ctx context.Context, scope Scope, l Layout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	normalized, err := prepareSave(scope, l)
	if err != nil {
		return err
	}
	data, err := Marshal(normalized)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.root, s.RelPath(scope))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// SanitizeSegment turns an id into a path segment. Ids that are already
// lowercase dash-separated words are used as is. Anything else is slugged
// and suffixed with "_" and a hash of the raw id, so two distinct ids never
// share a file.
func SanitizeSegment(id string) string {
	if len(id) <= maxSegmentLen && cleanSegmentExpr.MatchString(id) {
		return id
	}
	sanitized := nonAlphanumericExpr.ReplaceAllString(strings.ToLower(id), "-")
	sanitized = strings.Trim(sanitized, "-")
	if len(sanitized) > maxSegmentLen {
		sanitized = strings.Trim(sanitized[:maxSegmentLen], "-")
	}
	sum := sha256.Sum256([]byte(id))
	return sanitized + "_" + hex.EncodeToString(sum[:segmentHashLen])
}
