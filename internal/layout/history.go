package layout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Revision is one recorded save of a scope.
type Revision struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	When    time.Time `json:"when"`
}

// Short returns the abbreviated commit hash.
func (r Revision) Short() string {
	if len(r.Hash) > 7 {
		return r.Hash[:7]
	}
	return r.Hash
}

// Signature names the author recorded on every commit.
type Signature struct {
	Name  string
	Email string
}

// HistoryStore is a FileStore whose root is a git repository: every save is
// committed, so earlier versions of a layout can be listed and restored.
type HistoryStore struct {
	files  *FileStore
	repo   *git.Repository
	author Signature
	mu     sync.Mutex
}

// NewHistoryStore opens the repository at the file store root, initializing
// one when absent.
func NewHistoryStore(files *FileStore, author Signature) (*HistoryStore, error) {
	repo, err := git.PlainOpen(files.Root())
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(files.Root(), false)
	}
	if err != nil {
		return nil, fmt.Errorf("open layout history: %w", err)
	}
	if author.Name == "" {
		author.Name = "storefront"
	}
	if author.Email == "" {
		author.Email = "storefront@localhost"
	}
	return &HistoryStore{files: files, repo: repo, author: author}, nil
}

// Load reads the current layout of scope.
func (s *HistoryStore) Load(ctx context.Context, scope Scope) (Layout, error) {
	return s.files.Load(ctx, scope)
}

// Save writes the layout and commits it.
func (s *HistoryStore) Save(ctx context.Context, scope Scope, l Layout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.files.Save(ctx, scope, l); err != nil {
		return err
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}
	rel := filepath.ToSlash(s.files.RelPath(scope))
	if _, err := wt.Add(rel); err != nil {
		return fmt.Errorf("stage layout: %w", err)
	}

	st, err := wt.Status()
	if err != nil {
		return fmt.Errorf("worktree status: %w", err)
	}
	if fs, changed := st[rel]; !changed || fs.Staging == git.Unmodified {
		return nil
	}

	_, err = wt.Commit("save layout "+scope.String(), &git.CommitOptions{
		Author: &object.Signature{Name: s.author.Name, Email: s.author.Email, When: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("commit layout: %w", err)
	}
	return nil
}

// History lists the saves of scope, newest first.
func (s *HistoryStore) History(ctx context.Context, scope Scope) ([]Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rel := filepath.ToSlash(s.files.RelPath(scope))
	iter, err := s.repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read layout history: %w", err)
	}
	defer iter.Close()

	var revisions []Revision
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		commit, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read layout history: %w", err)
		}
		revisions = append(revisions, Revision{
			Hash:    commit.Hash.String(),
			Message: commit.Message,
			Author:  commit.Author.Name,
			When:    commit.Author.When,
		})
	}
	return revisions, nil
}

// At returns the layout of scope as it was saved in revision hash. A hash
// prefix is accepted.
func (s *HistoryStore) At(_ context.Context, scope Scope, hash string) (Layout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved, err := s.repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return Layout{}, fmt.Errorf("resolve revision %s: %w", hash, ErrNotFound)
	}
	commit, err := s.repo.CommitObject(*resolved)
	if err != nil {
		return Layout{}, fmt.Errorf("read revision %s: %w", hash, err)
	}

	rel := filepath.ToSlash(s.files.RelPath(scope))
	file, err := commit.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return Layout{}, fmt.Errorf("%s at %s: %w", scope, hash, ErrNotFound)
		}
		return Layout{}, fmt.Errorf("read %s at %s: %w", rel, hash, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return Layout{}, fmt.Errorf("read %s at %s: %w", rel, hash, err)
	}
	return Parse(rel+"@"+hash, []byte(contents))
}
