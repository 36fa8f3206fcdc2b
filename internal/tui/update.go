package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/builder"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

// newHandle names a pending upload.
var newHandle = defaultHandle

func defaultHandle() string { return uuid.NewString() }

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editor != nil {
			return m.updateEditor(msg)
		}
		if m.themeEditor != nil {
			return m.updateThemeEditor(msg)
		}
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionMsg:
		m = m.dispatch(msg.Action)
		return m, nil

	case uploadDoneMsg:
		m = m.dispatch(builder.ResolveAsset{Handle: msg.Handle, URL: msg.URL})
		return m, nil

	case uploadFailedMsg:
		m.log.Warn(msg.Err, "upload failed")
		m = m.dispatch(builder.Notify{Notice: builder.Notice{
			Level:   builder.NoticeError,
			Message: "Failed to upload image",
			Err:     msg.Err,
		}})
		return m, nil

	case previewWrittenMsg:
		notice := builder.Notice{Level: builder.NoticeSuccess, Message: "Preview written to " + msg.Path}
		if msg.Err != nil {
			notice = builder.Notice{Level: builder.NoticeError, Message: "Failed to write preview", Err: msg.Err}
		}
		m = m.dispatch(builder.Notify{Notice: notice})
		return m, nil
	}

	if m.editor != nil {
		return m.updateEditor(msg)
	}
	if m.themeEditor != nil {
		return m.updateThemeEditor(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Save):
		if m.state.Saving {
			return m, nil
		}
		if m.saver == nil {
			return m.dispatch(builder.Notify{Notice: builder.Notice{
				Level:   builder.NoticeError,
				Message: "No layout storage configured",
			}}), nil
		}
		m = m.dispatch(builder.SaveStarted{})
		return m, tea.Batch(saveCmd(m.ctx, m.saver, m.state), m.spinner.Tick)

	case key.Matches(msg, m.keys.NextPanel):
		return m.dispatch(builder.SetPanel{Panel: nextPanel(m.state.Panel)}), nil

	case key.Matches(msg, m.keys.Device):
		device := render.DeviceMobile
		if m.state.Preview == render.DeviceMobile {
			device = render.DeviceDesktop
		}
		return m.dispatch(builder.SetPreviewMode{Device: device}), nil

	case key.Matches(msg, m.keys.Dismiss):
		if m.state.Notice != nil {
			return m.dispatch(builder.DismissNotice{}), nil
		}
		return m, nil
	}

	switch m.state.Panel {
	case builder.PanelComponents:
		if m.canvasFocus {
			return m.handleCanvasKeys(msg)
		}
		return m.handlePaletteKeys(msg)
	case builder.PanelEdit:
		return m.handleCanvasKeys(msg)
	case builder.PanelTheme:
		return m.handleThemeKeys(msg)
	case builder.PanelPreview:
		return m.handlePreviewKeys(msg)
	}
	return m, nil
}

func (m Model) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	templates := m.templates()
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.canvasFocus = true
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Left):
		m.category = (m.category + len(registry.Categories()) - 1) % len(registry.Categories())
		m.palette = 0
	case key.Matches(msg, m.keys.Right):
		m.category = (m.category + 1) % len(registry.Categories())
		m.palette = 0
	case key.Matches(msg, m.keys.Up):
		if m.palette > 0 {
			m.palette--
		}
	case key.Matches(msg, m.keys.Down):
		if m.palette < len(templates)-1 {
			m.palette++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.palette >= len(templates) {
			return m, nil
		}
		tpl := templates[m.palette]
		m = m.dispatch(builder.AddComponent{Type: tpl.ID})
		return m.openEditor()
	}
	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.Reset()
		m.filter.Blur()
		m.filtering = false
		m.palette = 0
		return m, nil
	case "enter":
		m.filter.Blur()
		m.filtering = false
		m.palette = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.palette = 0
	return m, cmd
}

func (m Model) handleCanvasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	comps := m.state.Components
	idx := m.selectedIndex()

	switch {
	case key.Matches(msg, m.keys.Focus):
		m.canvasFocus = false
	case key.Matches(msg, m.keys.MoveUp):
		if idx >= 0 {
			m = m.dispatch(builder.MoveComponent{ID: comps[idx].ID, Direction: builder.Up})
		}
	case key.Matches(msg, m.keys.MoveDown):
		if idx >= 0 {
			m = m.dispatch(builder.MoveComponent{ID: comps[idx].ID, Direction: builder.Down})
		}
	case key.Matches(msg, m.keys.Up):
		if len(comps) > 0 {
			next := 0
			if idx > 0 {
				next = idx - 1
			}
			m = m.dispatch(builder.SelectComponent{ID: comps[next].ID})
		}
	case key.Matches(msg, m.keys.Down):
		if len(comps) > 0 {
			next := idx + 1
			if next >= len(comps) {
				next = len(comps) - 1
			}
			m = m.dispatch(builder.SelectComponent{ID: comps[next].ID})
		}
	case key.Matches(msg, m.keys.Duplicate):
		if idx >= 0 {
			m = m.dispatch(builder.DuplicateComponent{ID: comps[idx].ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if idx >= 0 {
			m = m.dispatch(builder.RemoveComponent{ID: comps[idx].ID})
		}
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Enter):
		if idx >= 0 {
			m = m.dispatch(builder.EditComponent{ID: comps[idx].ID})
			return m.openEditor()
		}
	}
	return m, nil
}

func (m Model) handleThemeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := theme.Presets()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.preset > 0 {
			m.preset--
		}
	case key.Matches(msg, m.keys.Down):
		if m.preset < len(presets)-1 {
			m.preset++
		}
	case key.Matches(msg, m.keys.Enter):
		return m.dispatch(builder.ApplyPreset{Name: presets[m.preset].Name}), nil
	case key.Matches(msg, m.keys.Edit):
		m.themeEditor = newThemeEditor(m.state.Theme)
		return m, m.themeEditor.form.Init()
	}
	return m, nil
}

func (m Model) updateThemeEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.themeEditor = nil
		return m, nil
	}

	form, cmd := m.themeEditor.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.themeEditor.form = f
	}

	switch m.themeEditor.form.State {
	case huh.StateAborted:
		m.themeEditor = nil
		return m, nil
	case huh.StateCompleted:
		cfg := m.themeEditor.config(m.state.Theme)
		m.themeEditor = nil
		return m.dispatch(builder.SetTheme{Theme: cfg}), nil
	}
	return m, cmd
}

func (m Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Enter) || m.preview == "" {
		return m, nil
	}
	th := m.state.Theme
	shell := render.Shell{Title: "Preview", Store: m.store, PageTheme: &th}
	return m, writePreviewCmd(m.preview, shell, m.renderContext(), m.state)
}

// openEditor builds the property form of the component being edited.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	c, ok := m.state.Editing()
	if !ok {
		return m, nil
	}
	m.editor = newEditor(c, m.templateName(c.Type))
	m.canvasFocus = true
	return m, m.editor.form.Init()
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.editor = nil
		return m, nil
	}

	form, cmd := m.editor.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.editor.form = f
	}

	switch m.editor.form.State {
	case huh.StateAborted:
		m.editor = nil
		return m, nil
	case huh.StateCompleted:
		return m.commitEditor()
	}
	return m, cmd
}

// commitEditor writes the form back through UpdateComponent and starts any
// uploads the form asked for.
func (m Model) commitEditor() (tea.Model, tea.Cmd) {
	e := m.editor
	m.editor = nil

	c, ok := m.state.Editing()
	if !ok || c.ID != e.id {
		return m, nil
	}
	props, uploads, err := e.apply(c)
	if err != nil {
		return m.dispatch(builder.Notify{Notice: builder.Notice{
			Level:   builder.NoticeError,
			Message: fmt.Sprintf("Invalid value: %v", err),
			Err:     err,
		}}), nil
	}
	m = m.dispatch(builder.UpdateComponent{ID: c.ID, Props: props})

	var cmds []tea.Cmd
	for _, u := range uploads {
		handle := newHandle()
		m = m.dispatch(builder.AttachPendingAsset{ID: c.ID, Key: u.Key, Handle: handle})
		cmds = append(cmds, uploadCmd(m.ctx, m.upload, handle, u.Path))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) selectedIndex() int {
	for i, c := range m.state.Components {
		if c.ID == m.state.SelectedID {
			return i
		}
	}
	return -1
}

func (m Model) templateName(t blocks.Type) string {
	if tpl, err := m.registry.Lookup(t); err == nil {
		return tpl.Name
	}
	return string(t)
}

func nextPanel(current builder.Panel) builder.Panel {
	panels := builder.Panels()
	for i, p := range panels {
		if p == current {
			return panels[(i+1)%len(panels)]
		}
	}
	return panels[0]
}
