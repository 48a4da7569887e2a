// Package ui renders task manager output to a terminal, optionally colored.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type UI struct {
	writer   io.Writer
	useColor bool
}

func NewUI(w io.Writer, useColor bool) *UI {
	return &UI{writer: w, useColor: useColor}
}

// ColorSupported reports whether f is a terminal that can show colors.
func ColorSupported(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (u *UI) colorize(message string, color Color) string {
	if !u.useColor || color == ColorDefault {
		return message
	}
	return fmt.Sprintf("%s%s%s", color, message, ColorDefault)
}

func (u *UI) Print(message string) {
	fmt.Fprint(u.writer, message)
}

func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.writer, format, args...)
}

func (u *UI) Println(message string) {
	fmt.Fprintln(u.writer, message)
}

func (u *UI) PrintlnColored(message string, color Color) {
	fmt.Fprintln(u.writer, u.colorize(message, color))
}

func (u *UI) Error(message string) {
	fmt.Fprintf(u.writer, "%s %s\n", u.colorize("!", ColorRed), u.colorize(message, ColorLightOrange))
}

func (u *UI) Success(message string) {
	u.PrintlnColored(message, ColorLightGreen)
}

func (u *UI) Warning(message string) {
	fmt.Fprintf(u.writer, "%s %s\n", u.colorize("?", ColorLightRed), u.colorize(message, ColorLightYellow))
}

func (u *UI) Info(message string) {
	u.PrintlnColored(message, ColorGray)
}

// PromptString returns the main menu prompt for user.
func (u *UI) PromptString(user string) string {
	var b strings.Builder
	if user != "" {
		b.WriteString(u.colorize(user, ColorLightBlue))
		b.WriteString(" ")
	}
	b.WriteString(u.colorize("> ", ColorGreen))
	return b.String()
}

// PrintMarkup prints line, switching colors at {{color}} tags, and ends it
// with a newline. Tags are dropped when colors are off.
func (u *UI) PrintMarkup(line string) {
	for len(line) > 0 {
		start := strings.Index(line, "{{")
		if start == -1 {
			u.Print(line)
			break
		}
		end := strings.Index(line[start:], "}}")
		if end == -1 {
			u.Print(line)
			break
		}
		end += start

		if start > 0 {
			u.Print(line[:start])
		}

		color, ok := markup[line[start:end+2]]
		if !ok {
			color = ColorDefault
		}

		rest := line[end+2:]
		next := strings.Index(rest, "{{")
		if next == -1 {
			u.Print(u.colorize(rest, color))
			break
		}
		u.Print(u.colorize(rest[:next], color))
		line = rest[next:]
	}
	u.Println("")
}
