// Package logging builds the diagnostic logger used in verbose mode.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Prefix starts every diagnostic line.
const Prefix = "log:"

// New returns a logger writing "log: <message>" lines to w.
// Unless verbose is set the logger is disabled and writes nothing.
func New(w io.Writer, verbose bool) zerolog.Logger {
	if w == nil || !verbose {
		return zerolog.Nop()
	}

	useColor := isTerminal(w)
	prefix := color.New(color.FgCyan)
	if useColor {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !useColor,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(any) string {
			return prefix.Sprint(Prefix)
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}

	return zerolog.New(consoleWriter).Level(zerolog.DebugLevel)
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
