package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Input is the interactive input source for pages. ReadLine retries until
// the line is non-empty; ReadInt retries until the line parses as an
// integer. Pause blocks for one acknowledgement line.
type Input interface {
	ReadLine(prompt string) string
	ReadInt(prompt string) int
	Pause()
}

// ConsoleInput reads lines from an io.Reader, normally stdin.
type ConsoleInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsoleInput wraps a reader and a writer for prompts.
func NewConsoleInput(in io.Reader, out io.Writer) *ConsoleInput {
	return &ConsoleInput{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine prints the prompt and returns the next non-empty trimmed line.
func (c *ConsoleInput) ReadLine(prompt string) string {
	if prompt != "" {
		fmt.Fprintf(c.out, "%s ", prompt)
	}
	for {
		line := strings.TrimSpace(c.nextLine())
		if line != "" {
			return line
		}
		fmt.Fprint(c.out, "Input cannot be empty. Try again: ")
	}
}

// ReadInt reads lines until one parses as an integer.
func (c *ConsoleInput) ReadInt(prompt string) int {
	for {
		line := c.ReadLine(prompt)
		value, err := strconv.Atoi(line)
		if err == nil {
			return value
		}
		fmt.Fprintln(c.out, "Invalid number. Please enter a valid digit.")
	}
}

// Pause blocks until the user presses enter.
func (c *ConsoleInput) Pause() {
	fmt.Fprintln(c.out, "\nPress [Enter] to continue...")
	c.nextLine()
}

func (c *ConsoleInput) nextLine() string {
	if c.scanner.Scan() {
		return c.scanner.Text()
	}
	// input exhausted; treat as cancel so the engine can unwind
	return "0"
}
