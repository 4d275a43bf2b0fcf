package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Surface is the render target for pages. After Refresh, the footer prompt
// (when non-empty) is the last visible line, ready for input capture.
type Surface interface {
	Refresh(header, body, footer string)
	Message(text string)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	messageStyle = lipgloss.NewStyle().PaddingLeft(2)
	footerStyle  = lipgloss.NewStyle().Bold(true)
)

// ConsoleScreen renders pages to a terminal.
type ConsoleScreen struct {
	out   io.Writer
	width int
}

// NewConsoleScreen builds a screen of the given fallback width. When stdout
// is a terminal the detected width wins.
func NewConsoleScreen(out io.Writer, fallbackWidth int) *ConsoleScreen {
	width := fallbackWidth
	if file, ok := out.(*os.File); ok {
		if detected, _, err := term.GetSize(int(file.Fd())); err == nil && detected > 0 {
			width = detected
		}
	}
	if width <= 0 {
		width = 40
	}
	return &ConsoleScreen{out: out, width: width}
}

// Refresh clears the terminal and redraws header, body and footer.
func (s *ConsoleScreen) Refresh(header, body, footer string) {
	s.clear()
	rule := ruleStyle.Render(strings.Repeat("═", s.width))
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, headerStyle.Render("  "+strings.ToUpper(header)))
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, body)
	if footer != "" {
		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, footerStyle.Render(">> "+footer+" "))
	}
}

// Message prints a user-facing notice below the current page.
func (s *ConsoleScreen) Message(text string) {
	fmt.Fprintln(s.out, messageStyle.Render(text))
}

// Width returns the render width.
func (s *ConsoleScreen) Width() int {
	return s.width
}

func (s *ConsoleScreen) clear() {
	// ANSI clear; harmless on terminals that ignore it
	fmt.Fprint(s.out, "\033[H\033[2J")
}
