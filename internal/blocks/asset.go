package blocks

import (
	"encoding/json"
	"errors"
	"strings"
)

const pendingPrefix = "blob:"

// ErrPendingAsset is returned when a layout still references a local upload.
var ErrPendingAsset = errors.New("asset upload still pending")

// Asset is either a persisted URL or a local handle awaiting upload. The zero
// value is an empty asset.
type Asset struct {
	url     string
	handle  string
	pending bool
}

// Persisted wraps a stored media URL.
func Persisted(url string) Asset {
	return Asset{url: strings.TrimSpace(url)}
}

// PendingLocal wraps a client-only handle used for instant preview.
func PendingLocal(handle string) Asset {
	return Asset{handle: strings.TrimPrefix(handle, pendingPrefix), pending: true}
}

// ParseAsset reads the string form produced by String.
func ParseAsset(s string) Asset {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, pendingPrefix) {
		return PendingLocal(s)
	}
	return Persisted(s)
}

// IsPending reports whether the asset has not been uploaded yet.
func (a Asset) IsPending() bool { return a.pending }

// IsZero reports whether the asset is empty.
func (a Asset) IsZero() bool { return !a.pending && a.url == "" }

// URL returns the persisted URL, or "" for pending assets.
func (a Asset) URL() string { return a.url }

// Handle returns the local handle of a pending asset.
func (a Asset) Handle() string { return a.handle }

// PreviewSource is what an editor canvas shows: the URL, or the local handle.
func (a Asset) PreviewSource() string {
	if a.pending {
		return pendingPrefix + a.handle
	}
	return a.url
}

func (a Asset) String() string {
	return a.PreviewSource()
}

// MarshalJSON refuses to persist pending assets.
func (a Asset) MarshalJSON() ([]byte, error) {
	if a.pending {
		return nil, ErrPendingAsset
	}
	return json.Marshal(a.url)
}

// UnmarshalJSON accepts a URL string. Any other JSON value yields an empty asset.
func (a *Asset) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*a = Asset{}
		return nil
	}
	*a = ParseAsset(s)
	return nil
}
