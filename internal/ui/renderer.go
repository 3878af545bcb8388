package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeondelve/internal/game"
)

// mapMargin is the gap between the text column and the map pane.
const mapMargin = 2

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	tones  map[Tone]tcell.Style
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	base := tcell.StyleDefault
	return &Renderer{
		screen: screen,
		tones: map[Tone]tcell.Style{
			ToneNormal: base.Foreground(tcell.ColorWhite),
			ToneTitle:  base.Foreground(tcell.ColorAqua).Bold(true),
			ToneSubtle: base.Foreground(tcell.ColorGray),
			ToneGood:   base.Foreground(tcell.ColorGreen),
			ToneBad:    base.Foreground(tcell.ColorRed).Bold(true),
			ToneLoot:   base.Foreground(tcell.ColorYellow),
			ToneAlert:  base.Foreground(tcell.ColorFuchsia).Bold(true),
		},
	}
}

// Render draws the view with the map pane on the right and the prompt on
// the bottom row.
func (r *Renderer) Render(v game.View, prompt, input string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	textWidth, sideMap := width, false
	if v.Map.Size > 0 {
		mapWidth := v.Map.Size*2 - 1
		if mapX := width - mapWidth - 1; mapX > mapMargin {
			textWidth, sideMap = mapX-mapMargin, true
			r.renderMap(v, mapX)
		}
	}

	// Narrow screens fall back to the inline map panel
	r.RenderLines(Compose(v, !sideMap), textWidth, height-1)
	r.renderPrompt(prompt, input, height-1)

	r.screen.Show()
}

// RenderLines draws lines from the top of the screen, clipped to the given
// width and number of rows.
func (r *Renderer) RenderLines(lines []Line, width, rows int) {
	for y, l := range lines {
		if y >= rows {
			break
		}
		r.screen.DrawText(0, y, width, l.Text, r.tones[l.Tone])
	}
}

// renderMap draws the level grid and, during a fight, the enemy's glyph in
// its own color.
func (r *Renderer) renderMap(v game.View, x0 int) {
	width, _ := r.screen.Size()
	r.screen.DrawText(x0, 0, width, "MAP", r.tones[ToneTitle])

	for x := 0; x < v.Map.Size; x++ {
		for y := 0; y < v.Map.Size; y++ {
			kind := v.Map.Cells[x][y]
			r.screen.SetContent(x0+y*2, x+1, Glyph(kind), r.getCellStyle(kind))
		}
	}

	row := v.Map.Size + 2
	for _, l := range LegendLines() {
		r.screen.DrawText(x0, row, width, l.Text, r.tones[l.Tone])
		row++
	}

	if c := v.Combat; c != nil {
		row++
		r.screen.SetContent(x0, row, c.EnemySymbol, tcell.StyleDefault.Foreground(c.EnemyColor).Bold(c.Boss))
		r.screen.DrawText(x0+2, row, width, fmt.Sprintf("%d/%d", c.EnemyHP, c.EnemyMaxHP), r.tones[ToneBad])
	}
}

// getCellStyle returns the appropriate style for a map cell.
func (r *Renderer) getCellStyle(kind game.CellKind) tcell.Style {
	switch kind {
	case game.CellPlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case game.CellExit:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case game.CellEnemy:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case game.CellTreasure:
		return tcell.StyleDefault.Foreground(tcell.ColorGold)
	case game.CellVisited:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}

// renderPrompt draws the input prompt and places the cursor after the input.
func (r *Renderer) renderPrompt(prompt, input string, y int) {
	width, _ := r.screen.Size()
	x := r.screen.DrawText(0, y, width, prompt+" ", r.tones[ToneTitle])
	x = r.screen.DrawText(x, y, width, input, r.tones[ToneNormal])
	r.screen.ShowCursor(x, y)
}

// RenderScreen draws full-screen text, used for the welcome screen.
func (r *Renderer) RenderScreen(lines []Line, footer string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	r.RenderLines(lines, width, height-1)
	r.screen.DrawText(0, height-1, width, footer, r.tones[ToneSubtle])
	r.screen.Show()
}
