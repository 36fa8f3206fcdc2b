package layout

import "context"

// Store loads and saves whole layouts. Save overwrites; the last write wins.
type Store interface {
	Load(ctx context.Context, scope Scope) (Layout, error)
	Save(ctx context.Context, scope Scope, l Layout) error
}

// prepareSave validates the scope and layout and returns the normalized
// layout that is actually written.
func prepareSave(scope Scope, l Layout) (Layout, error) {
	if err := scope.Validate(); err != nil {
		return Layout{}, err
	}
	normalized := Normalize(l)
	if err := Validate(normalized); err != nil {
		return Layout{}, err
	}
	return normalized, nil
}
