package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/storefront/internal/blocks"
	"github.com/alexisbeaulieu97/storefront/internal/builder"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/render"
	"github.com/alexisbeaulieu97/storefront/internal/theme"
)

const (
	sidebarWidth = 34
	mobileWidth  = 40
)

// View renders the builder.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("Page Builder"), m.renderTabs())

	var side string
	switch m.state.Panel {
	case builder.PanelComponents:
		side = m.renderPalette()
	case builder.PanelEdit:
		side = m.renderEditPanel()
	case builder.PanelTheme:
		side = m.renderThemePanel()
	case builder.PanelPreview:
		side = m.renderPreviewPanel()
	}
	if m.editor != nil {
		side = m.editor.form.View()
	}
	if m.themeEditor != nil {
		side = m.themeEditor.form.View()
	}

	sideStyle := panelStyle.Width(sidebarWidth)
	if !m.canvasFocus || m.editor != nil || m.themeEditor != nil {
		sideStyle = focusedPanelStyle.Width(sidebarWidth)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sideStyle.Render(side),
		m.renderCanvas(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m Model) renderTabs() string {
	var tabs []string
	for _, p := range builder.Panels() {
		label := cases.Title(language.English).String(string(p))
		if p == m.state.Panel {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderPalette() string {
	var b strings.Builder
	category := registry.Categories()[m.category]
	b.WriteString(titleStyle.Render("◀ " + category.Label() + " ▶"))
	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	templates := m.templates()
	if len(templates) == 0 {
		b.WriteString(mutedStyle.Render("No components match"))
		return b.String()
	}
	for i, tpl := range templates {
		line := tpl.Name
		if i == m.palette && !m.canvasFocus {
			b.WriteString(selectedItemStyle.Render(line))
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("  " + tpl.Description))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEditPanel() string {
	c, ok := m.state.Selected()
	if !ok {
		return mutedStyle.Render("Select a component on the canvas to edit it.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.templateName(c.Type)))
	b.WriteString("\n\n")
	for _, f := range blocks.Schema(c.Props) {
		fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render(fieldLabel(f.Key)+":"), summarize(f))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("e: edit properties"))
	return b.String()
}

func (m Model) renderThemePanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Theme"))
	b.WriteString("\n\n")
	for i, p := range theme.Presets() {
		line := swatch(p.Colors.Primary).Render("■") +
			swatch(p.Colors.Accent).Render("■") + " " + p.Name
		if p.Colors == m.state.Theme.Colors {
			line += successStyle.Render(" ✓")
		}
		if i == m.preset {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Heading: %s\nBody: %s\n\n", m.state.Theme.Fonts.Heading, m.state.Theme.Fonts.Body)
	b.WriteString(mutedStyle.Render("enter: apply preset  e: custom colors and fonts"))
	return b.String()
}

func (m Model) renderPreviewPanel() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Preview"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Device: %s\n", m.state.Preview)
	fmt.Fprintf(&b, "Blocks: %d\n", len(m.state.Components))
	if n := m.state.PendingAssets(); n > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%d upload(s) pending", n)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.preview == "" {
		b.WriteString(mutedStyle.Render("No preview file configured"))
	} else {
		b.WriteString(mutedStyle.Render("enter: write " + m.preview))
	}
	return b.String()
}

func (m Model) renderCanvas() string {
	width := m.width - sidebarWidth - 6
	if m.state.Preview == render.DeviceMobile && width > mobileWidth {
		width = mobileWidth
	}
	if width < 20 {
		width = 20
	}

	style := panelStyle.Width(width)
	if m.canvasFocus && m.editor == nil {
		style = focusedPanelStyle.Width(width)
	}

	if len(m.state.Components) == 0 {
		return style.Render(mutedStyle.Render("Your page is empty. Add a component from the palette."))
	}

	marker := swatch(m.state.Theme.Colors.Primary).Render("▌")
	var b strings.Builder
	for _, c := range m.state.Components {
		name := m.templateName(c.Type)
		if !c.Supported() {
			name = render.UnsupportedMessage(string(c.Type))
		}
		line := fmt.Sprintf("%s %s", marker, name)
		if pending := len(blocks.PendingAssets(c.Props)); pending > 0 {
			line += errorStyle.Render(" ⧗")
		}
		if c.ID == m.state.SelectedID {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderStatus() string {
	var parts []string
	switch {
	case m.state.Saving:
		parts = append(parts, m.spinner.View()+" Saving...")
	case m.state.Dirty:
		parts = append(parts, mutedStyle.Render("● unsaved changes"))
	case !m.state.LastSaved.IsZero():
		parts = append(parts, mutedStyle.Render("Saved "+m.state.LastSaved.Format("15:04:05")))
	}
	if n := m.state.Notice; n != nil {
		if n.Level == builder.NoticeError {
			parts = append(parts, errorStyle.Render(n.Message))
		} else {
			parts = append(parts, successStyle.Render(n.Message))
		}
	}
	parts = append(parts, mutedStyle.Render(m.state.Scope.String()))
	return strings.Join(parts, "  ")
}

// selectionOutline marks the selected block in the written preview.
func selectionOutline(selectedID string) func(blocks.Component, *html.Node) *html.Node {
	return func(c blocks.Component, node *html.Node) *html.Node {
		if node == nil || c.ID != selectedID {
			return node
		}
		node.Attr = append(node.Attr,
			html.Attribute{Key: "data-selected", Val: "true"},
			html.Attribute{Key: "data-component-id", Val: c.ID},
		)
		return node
	}
}

func summarize(f blocks.Field) string {
	switch v := f.Value.(type) {
	case blocks.Asset:
		if v.IsPending() {
			return "(uploading)"
		}
		return truncate(v.URL(), 40)
	case nil:
		return ""
	}
	if f.Kind == blocks.KindArray {
		return "[...]"
	}
	return truncate(fmt.Sprint(f.Value), 40)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
