package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a 2x4-per-cell microgrid rasterizer. Each cell carries an
// 8-bit dot mask plus a palette index; the last shape to touch a cell
// decides its color.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	c    [][]uint8 // per-cell palette index, 0 = unstyled
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell).
func (b *brailleBuf) setPixel(mx, my int, color uint8) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = color
}

// drawLineMicro draws a line on the microgrid using Bresenham.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, color uint8) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// cellRune returns the braille glyph for a cell, or space when empty.
func (b *brailleBuf) cellRune(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// toLines renders the buffer with pal resolving palette indexes to styles.
// Runs of same-colored cells are styled together to keep output compact.
func (b *brailleBuf) toLines(pal *palette) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		x := 0
		for x < b.w {
			color := b.c[y][x]
			var run strings.Builder
			for x < b.w && b.c[y][x] == color {
				run.WriteRune(b.cellRune(x, y))
				x++
			}
			sb.WriteString(pal.render(color, run.String()))
		}
		out[y] = sb.String()
	}
	return out
}

// rowWithOverride renders row y substituting the cell at ox with glyph
// (already styled). Used for the hover marker, which sits on top of
// whatever shape occupies the cell.
func (b *brailleBuf) rowWithOverride(pal *palette, y, ox int, glyph string) string {
	if y < 0 || y >= b.h {
		return ""
	}
	var sb strings.Builder
	x := 0
	for x < b.w {
		if x == ox {
			sb.WriteString(glyph)
			x++
			continue
		}
		color := b.c[y][x]
		var run strings.Builder
		for x < b.w && b.c[y][x] == color && x != ox {
			run.WriteRune(b.cellRune(x, y))
			x++
		}
		sb.WriteString(pal.render(color, run.String()))
	}
	return sb.String()
}

// palette maps shape colors to compact per-cell indexes.
type palette struct {
	styles []lipgloss.Style
	index  map[lipgloss.TerminalColor]uint8
}

func newPalette() *palette {
	return &palette{index: make(map[lipgloss.TerminalColor]uint8)}
}

// id returns the palette index for color, allocating one if needed.
// Index 0 means unstyled; the palette holds at most 255 colors.
func (p *palette) id(color lipgloss.TerminalColor) uint8 {
	if color == nil {
		return 0
	}
	if id, ok := p.index[color]; ok {
		return id
	}
	if len(p.styles) >= 255 {
		return 0
	}
	p.styles = append(p.styles, lipgloss.NewStyle().Foreground(color))
	id := uint8(len(p.styles))
	p.index[color] = id
	return id
}

func (p *palette) render(id uint8, s string) string {
	if id == 0 || int(id) > len(p.styles) || strings.TrimSpace(s) == "" {
		return s
	}
	return p.styles[id-1].Render(s)
}
