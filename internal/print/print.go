package print

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Error prints a message to stderr in red
func Error(format string, a ...interface{}) {
	Stderr(color.New(color.FgRed), format, a...)
}

// Warning prints a message to stderr in yellow
func Warning(format string, a ...interface{}) {
	Stderr(color.New(color.FgYellow), format, a...)
}

// Info prints a message to stdout in bold
func Info(format string, a ...interface{}) {
	Stdout(color.New(color.Bold), format, a...)
}

// Line prints an unstyled message to stdout
func Line(format string, a ...interface{}) {
	fmt.Fprintf(os.Stdout, format+"\n", a...)
}

// Stderr prints a styled message to stderr
func Stderr(c *color.Color, format string, a ...interface{}) {
	fprintf(os.Stderr, c, format+"\n", a...)
}

// Stdout prints a styled message to stdout
func Stdout(c *color.Color, format string, a ...interface{}) {
	fprintf(os.Stdout, c, format+"\n", a...)
}

func fprintf(w io.Writer, c *color.Color, format string, a ...interface{}) {
	if _, err := c.Fprintf(w, format, a...); err != nil {
		// Last resort, we should still get the message out
		fmt.Fprintf(w, format, a...)
	}
}
