package ui

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeondelve/internal/game"
	"github.com/samdwyer/dungeondelve/internal/world"
)

// Terminal is a full-screen frontend. Typed keys build a command line that
// Enter submits; arrow keys move immediately.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	view     game.View
	prompt   string
	input    []rune
}

// NewTerminal creates a frontend drawing on screen.
func NewTerminal(screen *Screen) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Close()
}

// Welcome shows the title screen until a key is pressed. Escape returns
// io.EOF.
func (t *Terminal) Welcome() error {
	t.renderer.RenderScreen(WelcomeLines(), "Press any key to begin...")
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return io.EOF
			}
			return nil
		case *tcell.EventResize:
			t.screen.Sync()
			t.renderer.RenderScreen(WelcomeLines(), "Press any key to begin...")
		case nil:
			return io.EOF
		}
	}
}

// Show draws the view.
func (t *Terminal) Show(v game.View) {
	t.view = v
	t.redraw()
}

// ReadLine collects keys until Enter or an arrow key. Escape and Ctrl-C
// return io.EOF.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	t.prompt = prompt
	t.input = t.input[:0]
	t.redraw()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			line, done, err := t.handleKey(ev)
			if done {
				return line, err
			}
			t.redraw()
		case *tcell.EventResize:
			t.screen.Sync()
			t.redraw()
		case nil:
			// Screen finalized
			return "", io.EOF
		}
	}
}

// arrowDirections maps arrow keys to movement. Rows grow southward.
var arrowDirections = map[tcell.Key]world.Direction{
	tcell.KeyUp:    world.North,
	tcell.KeyDown:  world.South,
	tcell.KeyLeft:  world.West,
	tcell.KeyRight: world.East,
}

// handleKey processes keyboard input. done is true when a line is ready.
func (t *Terminal) handleKey(ev *tcell.EventKey) (line string, done bool, err error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true, io.EOF

	case tcell.KeyEnter:
		return string(t.input), true, nil

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(t.input); n > 0 {
			t.input = t.input[:n-1]
		}

	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		if len(t.input) == 0 {
			return string(arrowDirections[ev.Key()]), true, nil
		}

	case tcell.KeyRune:
		t.input = append(t.input, ev.Rune())
	}
	return "", false, nil
}

func (t *Terminal) redraw() {
	t.renderer.Render(t.view, t.prompt, string(t.input))
}

// Ensure Terminal implements game.Frontend
var _ game.Frontend = (*Terminal)(nil)
