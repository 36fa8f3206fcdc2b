// Package tui is the terminal page builder: a palette of registry blocks,
// the ordered canvas of the layout being edited, a theme panel and a
// property editor, all driven through builder.Reduce.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/storefront/internal/builder"
	"github.com/alexisbeaulieu97/storefront/internal/layout"
	"github.com/alexisbeaulieu97/storefront/internal/logger"
	"github.com/alexisbeaulieu97/storefront/internal/products"
	"github.com/alexisbeaulieu97/storefront/internal/registry"
	"github.com/alexisbeaulieu97/storefront/internal/render"
)

// Uploader sends a local file to the media endpoint and returns its url.
type Uploader func(ctx context.Context, path string) (string, error)

// Options configures a builder session.
type Options struct {
	Scope    layout.Scope
	Layout   layout.Layout
	Saver    builder.Saver
	Upload   Uploader
	Registry *registry.Registry
	Products []products.Product
	Store    render.Store
	// PreviewPath is where the preview panel writes the rendered page.
	PreviewPath string
	Logger      *logger.Logger
}

// Model is the bubbletea model of the builder.
type Model struct {
	ctx   context.Context
	state builder.State

	registry *registry.Registry
	saver    builder.Saver
	upload   Uploader
	products []products.Product
	store    render.Store
	preview  string
	log      *logger.Logger

	// Palette state
	category  int
	filter    textinput.Model
	filtering bool
	palette   int

	// Canvas state
	canvasFocus bool

	// Theme panel state
	preset int

	editor      *editor
	themeEditor *themeEditor

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	width    int
	height   int
	quitting bool
}

// NewModel starts a builder over opts.Layout.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.New()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	filter := textinput.New()
	filter.Placeholder = "Search components..."
	filter.Prompt = "/ "
	filter.CharLimit = 64

	return Model{
		ctx:      ctx,
		state:    builder.New(opts.Scope, opts.Layout),
		registry: reg,
		saver:    opts.Saver,
		upload:   opts.Upload,
		products: opts.Products,
		store:    opts.Store,
		preview:  opts.PreviewPath,
		log:      log.Named("builder"),
		filter:   filter,
		spinner:  s,
		help:     help.New(),
		keys:     defaultKeys(),
		width:    100,
		height:   30,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// State returns the builder state the model is showing.
func (m Model) State() builder.State {
	return m.state
}

// templates lists the palette entries for the current category and filter.
func (m Model) templates() []registry.Template {
	categories := registry.Categories()
	return m.registry.Filter(categories[m.category], m.filter.Value())
}

// dispatch runs an action through the reducer. Rejected actions surface as
// an error notice and leave the state untouched.
func (m Model) dispatch(a builder.Action) Model {
	next, err := builder.Reduce(m.state, a)
	if err != nil {
		m.log.Warn(err, "builder action rejected")
		next, _ = builder.Reduce(m.state, builder.Notify{Notice: builder.Notice{
			Level:   builder.NoticeError,
			Message: err.Error(),
			Err:     err,
		}})
	}
	m.state = next
	return m
}

func (m Model) renderContext() render.Context {
	th := m.state.Theme
	selected := m.state.SelectedID
	return render.Context{
		PageTheme: &th,
		Products:  m.products,
		Mode:      render.ModeEditPreview,
		Device:    m.state.Preview,
		Store:     m.store,
		Slots: render.Slots{
			Wrap: selectionOutline(selected),
		},
	}
}
