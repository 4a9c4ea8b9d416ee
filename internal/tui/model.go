// Package tui is the terminal map view: shapes reach the screen either as
// overlays added directly to the view or grouped through a shape source,
// and a style delegate resolves their colors at draw time.
package tui

import (
	"log/slog"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shapemap/internal/geo"
	"shapemap/internal/logging"
	"shapemap/internal/source"
)

// Options configures a map view.
type Options struct {
	// DataDir is where the file browser starts; empty means cwd.
	DataDir string
	// Logger receives structured events; nil discards them.
	Logger *slog.Logger
	// Client fetches remote GeoJSON; nil builds one with FetchTimeout.
	Client *source.Client
	// FetchTimeout bounds remote fetches.
	FetchTimeout time.Duration
	// Styles resolves shape appearance; nil uses the default palette.
	Styles StyleDelegate
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Display pipeline: direct overlays plus one active shape source.
	overlays []geo.Overlay
	src      *source.Source
	bounds   geo.Bounds

	styles       StyleDelegate
	logger       *slog.Logger
	client       *source.Client
	fetchTimeout time.Duration

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// url fetch mode
	urlMode  bool
	urlInput textinput.Model
	fetching bool

	// layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// shape inventory table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible:  true,
		zoom:         1.0,
		status:       "shapemap ready",
		showPoints:   true,
		showLines:    true,
		showPolys:    true,
		styles:       opts.Styles,
		logger:       opts.Logger,
		client:       opts.Client,
		fetchTimeout: opts.FetchTimeout,
		cwd:          opts.DataDir,
	}
	if m.styles == nil {
		m.styles = NewDefaultStyles()
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.fetchTimeout <= 0 {
		m.fetchTimeout = 15 * time.Second
	}
	if m.client == nil {
		m.client = source.NewClient(m.fetchTimeout)
	}
	if m.cwd == "" {
		m.cwd = "."
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING, POLYGON, MULTIPOLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// url input setup
	m.urlInput = textinput.New()
	m.urlInput.Placeholder = "https://example.com/shapes.geojson"
	m.urlInput.CharLimit = 0
	m.urlInput.Width = 50
	// shape inventory table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's shapes at launch.
func NewWithPath(opts Options, path string) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// SetSource replaces the active shape source.
func (m *Model) SetSource(src *source.Source) {
	m.src = src
	m.refreshBounds()
	m.refreshLayerVisibility()
}

// Source returns the active shape source, or nil.
func (m *Model) Source() *source.Source { return m.src }
