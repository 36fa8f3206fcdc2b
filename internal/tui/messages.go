package tui

import (
	"github.com/alexisbeaulieu97/storefront/internal/builder"
)

// actionMsg carries a builder action produced off the update loop.
type actionMsg struct {
	Action builder.Action
}

// uploadDoneMsg reports that a local file reached the media endpoint.
type uploadDoneMsg struct {
	Handle string
	URL    string
}

// uploadFailedMsg reports a failed upload. The pending handle is left in
// place so the save stays blocked until the field is edited again.
type uploadFailedMsg struct {
	Handle string
	Err    error
}

// previewWrittenMsg reports where the preview document was written.
type previewWrittenMsg struct {
	Path string
	Err  error
}
