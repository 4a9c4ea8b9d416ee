package tui

import (
	"github.com/charmbracelet/lipgloss"

	"shapemap/internal/geo"
)

// StyleDelegate resolves the appearance of individual shapes. The map view
// calls it with the shape instance, so a delegate can key colors on
// identity; shapes themselves carry no appearance state.
type StyleDelegate interface {
	// StrokeColor returns the edge color for an overlay.
	StrokeColor(o geo.Overlay) lipgloss.TerminalColor
	// FillColor returns the interior color for a polygon.
	FillColor(p *geo.Polygon) lipgloss.TerminalColor
}

// DefaultStyles colors every shape the same way, with optional per-shape
// overrides.
type DefaultStyles struct {
	Stroke lipgloss.Color
	Fill   lipgloss.Color

	strokeFor map[geo.Overlay]lipgloss.Color
	fillFor   map[*geo.Polygon]lipgloss.Color
}

// NewDefaultStyles returns the stock palette.
func NewDefaultStyles() *DefaultStyles {
	return &DefaultStyles{
		Stroke: lipgloss.Color("#7C3AED"),
		Fill:   lipgloss.Color("#3B3261"),
	}
}

// SetStroke overrides the stroke color for one overlay.
func (s *DefaultStyles) SetStroke(o geo.Overlay, c lipgloss.Color) {
	if s.strokeFor == nil {
		s.strokeFor = make(map[geo.Overlay]lipgloss.Color)
	}
	s.strokeFor[o] = c
}

// SetFill overrides the fill color for one polygon.
func (s *DefaultStyles) SetFill(p *geo.Polygon, c lipgloss.Color) {
	if s.fillFor == nil {
		s.fillFor = make(map[*geo.Polygon]lipgloss.Color)
	}
	s.fillFor[p] = c
}

func (s *DefaultStyles) StrokeColor(o geo.Overlay) lipgloss.TerminalColor {
	if c, ok := s.strokeFor[o]; ok {
		return c
	}
	return s.Stroke
}

func (s *DefaultStyles) FillColor(p *geo.Polygon) lipgloss.TerminalColor {
	if c, ok := s.fillFor[p]; ok {
		return c
	}
	return s.Fill
}
