package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"seatmap/world"
)

// Seat glyphs by state
const (
	runeSeat     = '●'
	runeSelected = '◉'
	runeSold     = '·'
	runeRowLine  = '─'
)

// Draw paints a frame onto the screen
// The caller owns Clear/Show; Draw only sets cells. Geometry outside
// the screen is clipped here, not in the frame builder
func Draw(screen tcell.Screen, f *Frame) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	for _, z := range f.Zones {
		drawZone(screen, z, w, h)
	}
	for _, r := range f.Rows {
		drawRow(screen, r, w, h)
	}
	for _, s := range f.Seats {
		drawSeat(screen, s, w, h)
	}

	drawStatusBar(screen, f.StatusLine, w, h)
}

func drawZone(screen tcell.Screen, z ZoneQuad, w, h int) {
	style := tcell.StyleDefault.Foreground(z.Color)

	// Border
	for x := z.X0; x <= z.X1; x++ {
		setCell(screen, x, z.Y0, '─', style, w, h)
		setCell(screen, x, z.Y1, '─', style, w, h)
	}
	for y := z.Y0; y <= z.Y1; y++ {
		setCell(screen, z.X0, y, '│', style, w, h)
		setCell(screen, z.X1, y, '│', style, w, h)
	}
	setCell(screen, z.X0, z.Y0, '┌', style, w, h)
	setCell(screen, z.X1, z.Y0, '┐', style, w, h)
	setCell(screen, z.X0, z.Y1, '└', style, w, h)
	setCell(screen, z.X1, z.Y1, '┘', style, w, h)

	// Centered label, only when the quad can hold it
	label := z.Label
	lw := runewidth.StringWidth(label)
	if lw <= z.X1-z.X0-1 && z.Y1 > z.Y0 {
		x := z.X0 + (z.X1-z.X0-lw)/2 + 1
		y := z.Y0 + (z.Y1-z.Y0)/2
		drawText(screen, x, y, label, style.Bold(true), w, h)
	}
}

func drawRow(screen tcell.Screen, r RowSegment, w, h int) {
	style := tcell.StyleDefault.Foreground(r.Color)
	for x := r.X0; x <= r.X1; x++ {
		setCell(screen, x, r.Y, runeRowLine, style, w, h)
	}
}

func drawSeat(screen tcell.Screen, s SeatGlyph, w, h int) {
	glyph := runeSeat
	switch {
	case s.Selected:
		glyph = runeSelected
	case s.Status == world.StatusSold:
		glyph = runeSold
	}
	setCell(screen, s.X, s.Y, glyph, tcell.StyleDefault.Foreground(s.Color), w, h)
}

func drawStatusBar(screen tcell.Screen, line string, w, h int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(40, 44, 52))

	line = runewidth.Truncate(line, w, "…")
	for x := 0; x < w; x++ {
		setCell(screen, x, h-1, ' ', style, w, h)
	}
	drawText(screen, 1, h-1, line, style, w, h)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style, w, h int) {
	for _, r := range text {
		setCell(screen, x, y, r, style, w, h)
		x += runewidth.RuneWidth(r)
	}
}

func setCell(screen tcell.Screen, x, y int, r rune, style tcell.Style, w, h int) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}
