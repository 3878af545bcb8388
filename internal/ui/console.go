package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/dungeondelve/internal/game"
)

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Console is a line-based frontend for plain terminals and pipes.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styled bool
	styles map[Tone]color.Style
}

// NewConsole creates a console reading commands from in and writing to out.
// ANSI styling is applied only when styled is set.
func NewConsole(in io.Reader, out io.Writer, styled bool) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styled: styled,
		styles: map[Tone]color.Style{
			ToneNormal: {color.FgDefault},
			ToneTitle:  {color.FgCyan, color.OpBold},
			ToneSubtle: {color.FgGray},
			ToneGood:   {color.FgGreen},
			ToneBad:    {color.FgRed, color.OpBold},
			ToneLoot:   {color.FgYellow},
			ToneAlert:  {color.FgMagenta, color.OpBold},
		},
	}
}

// paint applies the tone's style to text.
func (c *Console) paint(l Line) string {
	if !c.styled || l.Text == "" {
		return l.Text
	}
	return c.styles[l.Tone].Sprint(l.Text)
}

func (c *Console) writeLines(lines []Line) {
	for _, l := range lines {
		fmt.Fprintln(c.out, c.paint(l))
	}
}

// Welcome prints the title screen.
func (c *Console) Welcome() {
	c.writeLines(WelcomeLines())
}

// Show prints the view, including the map panel when requested.
func (c *Console) Show(v game.View) {
	fmt.Fprintln(c.out)
	c.writeLines(Compose(v, true))
}

// ReadLine prompts and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.paint(Line{prompt, ToneTitle})+" ")

	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ensure Console implements game.Frontend
var _ game.Frontend = (*Console)(nil)
