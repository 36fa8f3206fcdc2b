package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	storesCollection  = "stores"
	layoutsCollection = "layouts"
	pagesCollection   = "pages"
	storeLayoutDoc    = "home"
)

// FirestoreStore keeps the store layout at stores/{storeID}/layouts/home and
// each page layout at stores/{storeID}/pages/{pageID}. Page ids live in their
// own collection so no page id can address the store layout.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore connects using application default credentials.
func NewFirestoreStore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firestore: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

// NewFirestoreStoreWithClient wraps an existing client.
func NewFirestoreStoreWithClient(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Close releases the client.
func (s *FirestoreStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *FirestoreStore) doc(scope Scope) *firestore.DocumentRef {
	store := s.client.Collection(storesCollection).Doc(scope.StoreID)
	if scope.IsPage() {
		return store.Collection(pagesCollection).Doc(scope.PageID)
	}
	return store.Collection(layoutsCollection).Doc(storeLayoutDoc)
}

// Load fetches the layout document of scope.
func (s *FirestoreStore) Load(ctx context.Context, scope Scope) (Layout, error) {
	if err := scope.Validate(); err != nil {
		return Layout{}, err
	}
	snap, err := s.doc(scope).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Layout{}, fmt.Errorf("%s: %w", scope, ErrNotFound)
		}
		return Layout{}, fmt.Errorf("get layout document: %w", err)
	}

	data := snap.Data()
	delete(data, "updated_at")
	encoded, err := json.Marshal(data)
	if err != nil {
		return Layout{}, fmt.Errorf("encode layout document: %w", err)
	}
	return Parse(snap.Ref.Path, encoded)
}

// Save overwrites the layout document of scope.
func (s *FirestoreStore) Save(ctx context.Context, scope Scope, l Layout) error {
	normalized, err := prepareSave(scope, l)
	if err != nil {
		return err
	}
	encoded, err := Marshal(normalized)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("decode layout document: %w", err)
	}
	doc["updated_at"] = time.Now().UTC()

	if _, err := s.doc(scope).Set(ctx, doc); err != nil {
		return fmt.Errorf("set layout document: %w", err)
	}
	return nil
}
