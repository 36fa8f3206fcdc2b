package builder

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// Saver writes a whole layout to its scope. layout.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, scope layout.Scope, l layout.Layout) error
}

// Save persists the state's layout and returns the action describing the
// outcome, ready for Reduce. Pending uploads fail the save before any
// request is made.
func Save(ctx context.Context, saver Saver, s State) Action {
	if n := s.PendingAssets(); n > 0 {
		err := storefronterrors.NewValidationError("components", "wait for image uploads to finish before saving", blocks.ErrPendingAsset)
		return SaveFailed{Err: storefronterrors.NewSaveError(s.Scope.String(), err)}
	}
	if err := saver.Save(ctx, s.Scope, s.Layout()); err != nil {
		return SaveFailed{Err: storefronterrors.NewSaveError(s.Scope.String(), err)}
	}
	return SaveSucceeded{At: time.Now()}
}
