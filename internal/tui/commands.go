package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storefront/internal/builder"
	"github.com/alexisbeaulieu97/storefront/internal/render"
)

// saveCmd persists a snapshot of the state. The snapshot is taken when the
// save starts; edits made while it runs stay dirty.
func saveCmd(ctx context.Context, saver builder.Saver, s builder.State) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{Action: builder.Save(ctx, saver, s)}
	}
}

// uploadCmd sends a local file to the media endpoint.
func uploadCmd(ctx context.Context, upload Uploader, handle, path string) tea.Cmd {
	return func() tea.Msg {
		if upload == nil {
			return uploadFailedMsg{Handle: handle, Err: fmt.Errorf("no upload endpoint configured")}
		}
		url, err := upload(ctx, path)
		if err != nil {
			return uploadFailedMsg{Handle: handle, Err: err}
		}
		return uploadDoneMsg{Handle: handle, URL: url}
	}
}

// writePreviewCmd renders the canvas as a standalone document.
func writePreviewCmd(path string, shell render.Shell, ctx render.Context, s builder.State) tea.Cmd {
	return func() tea.Msg {
		body := render.RenderPage(s.Layout().Components, ctx)
		doc := render.HTML(render.Document(shell, body))
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return previewWrittenMsg{Path: path, Err: err}
		}
		return previewWrittenMsg{Path: path}
	}
}
