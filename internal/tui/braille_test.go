package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrailleSetPixelBits(t *testing.T) {
	b := newBrailleBuf(2, 1)

	// Top-left dot of the first cell.
	b.setPixel(0, 0, 0)
	assert.Equal(t, uint8(0x01), b.m[0][0])

	// Bottom-right dot of the same cell.
	b.setPixel(1, 3, 0)
	assert.Equal(t, uint8(0x01|0x80), b.m[0][0])

	// First micro-column of the second cell.
	b.setPixel(2, 0, 0)
	assert.Equal(t, uint8(0x01), b.m[0][1])

	// Out of range: ignored.
	b.setPixel(-1, 0, 0)
	b.setPixel(0, 99, 0)
}

func TestBrailleDrawLine(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLineMicro(0, 0, 7, 0, 0)
	for x := 0; x < 4; x++ {
		assert.NotEqual(t, uint8(0), b.m[0][x], "cell %d should be inked", x)
	}
}

func TestBrailleToLines(t *testing.T) {
	b := newBrailleBuf(3, 1)
	b.setPixel(0, 0, 0)

	lines := b.toLines(newPalette())
	require.Len(t, lines, 1)
	runes := []rune(lines[0])
	require.Len(t, runes, 3)
	assert.Equal(t, rune(0x2801), runes[0])
	assert.Equal(t, ' ', runes[1])
}

func TestPaletteAssignsStableIDs(t *testing.T) {
	p := newPalette()
	red := lipgloss.Color("#FF0000")
	blue := lipgloss.Color("#0000FF")

	idRed := p.id(red)
	idBlue := p.id(blue)
	assert.NotEqual(t, idRed, idBlue)
	assert.Equal(t, idRed, p.id(red))
	assert.Equal(t, uint8(0), p.id(nil))
}

func TestRowWithOverride(t *testing.T) {
	b := newBrailleBuf(3, 1)
	b.setPixel(0, 0, 0)
	b.setPixel(4, 0, 0)

	row := b.rowWithOverride(newPalette(), 0, 1, "X")
	runes := []rune(row)
	require.Len(t, runes, 3)
	assert.Equal(t, rune(0x2801), runes[0])
	assert.Equal(t, 'X', runes[1])
	assert.Equal(t, rune(0x2801), runes[2])

	assert.Equal(t, "", b.rowWithOverride(newPalette(), 5, 0, "X"))
}
