package layout

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
)

func TestFirestoreStoreAgainstEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	store, err := NewFirestoreStore(ctx, "storefront-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	scope := PageScope(uuid.NewString(), "about")
	_, err = store.Load(ctx, scope)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, scope, shuffledLayout()))
	loaded, err := store.Load(ctx, scope)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, orders(loaded.Components))
}

func TestFirestoreStoreKeepsPageIDsOffStoreLayout(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	store, err := NewFirestoreStore(ctx, "storefront-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	storeID := uuid.NewString()
	home := Layout{Components: []blocks.Component{blocks.New("home", blocks.Divider, 0, nil)}}
	require.NoError(t, store.Save(ctx, StoreScope(storeID), home))

	for _, pageID := range []string{"home", "_store", "layouts"} {
		page := Layout{Components: []blocks.Component{blocks.New(pageID, blocks.Spacer, 0, nil)}}
		require.NoError(t, store.Save(ctx, PageScope(storeID, pageID), page))
	}

	loaded, err := store.Load(ctx, StoreScope(storeID))
	require.NoError(t, err)
	require.Equal(t, []string{"home"}, ids(loaded.Components))

	page, err := store.Load(ctx, PageScope(storeID, "_store"))
	require.NoError(t, err)
	require.Equal(t, []string{"_store"}, ids(page.Components))
}
