// A small logging module that mimics the behavior of Python's logging module.
//
// All it does basically is wrap Go's logger with nice multi-level logging
// calls, and allows you to set the logging level of your app at runtime.
//
// Logging is done just like calling fmt.Sprintf:
// 		logging.Info("This object is %s and that is %s", obj, that)
package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logging levels, settable as a bit mask
const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	ERROR    = 8
	CRITICAL = 16
	// QUIET is the setting for errors only
	QUIET = ERROR | CRITICAL
	// NORMAL is the default setting - all besides debug
	NORMAL  = INFO | WARNING | ERROR | CRITICAL
	ALL     = 255
	NOTHING = 0
)

// Logger describes a logging function, like Debug, Error, Warning, etc.
type Logger func(msg string, args ...interface{})

// MessageContext carries the metadata handed to the formatter
type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

// Formatter is responsible for taking the arguments and composing a message
type Formatter interface {
	Format(ctx *MessageContext, message string, args ...interface{}) string
}

// SimpleFormatter composes messages based on a plain format string
type SimpleFormatter struct {
	FormatString string
}

func (f *SimpleFormatter) Format(ctx *MessageContext, message string, args ...interface{}) string {
	return fmt.Sprintf(f.FormatString,
		ctx.Level, ctx.TimeStamp.Format("15:04:05.000"), ctx.File, ctx.Line, fmt.Sprintf(message, args...))
}

// DefaultFormatter is used unless SetFormatter is called
var DefaultFormatter Formatter = &SimpleFormatter{
	FormatString: "[%[1]s %[2]s %[3]s:%[4]d] %[5]s",
}

var (
	mu        sync.Mutex
	level     = NORMAL
	out       io.Writer = os.Stderr
	formatter           = DefaultFormatter
)

// SetLevel sets the logging level as a bit mask of active levels
//
// e.g. for INFO and ERROR use:
// 		SetLevel(logging.INFO | logging.ERROR)
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetVerbose toggles between ALL and NORMAL
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(ALL)
	} else {
		SetLevel(NORMAL)
	}
}

// SetOutput sets the output writer, which defaults to stderr
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetFormatter sets the formatting handler for all messages
func SetFormatter(f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	formatter = f
}

func emit(lvl int, name string, msg string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if level&lvl == 0 {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
	}

	ctx := &MessageContext{
		Level:     name,
		File:      path.Base(file),
		Line:      line,
		TimeStamp: time.Now(),
	}

	message := formatter.Format(ctx, msg, args...)
	fmt.Fprint(out, strings.TrimSuffix(message, "\n")+"\n")
}

// Debug logs a message at the DEBUG level
func Debug(msg string, args ...interface{}) {
	emit(DEBUG, "DEBUG", msg, args...)
}

// Info logs a message at the INFO level
func Info(msg string, args ...interface{}) {
	emit(INFO, "INFO", msg, args...)
}

// Warning logs a message at the WARNING level
func Warning(msg string, args ...interface{}) {
	emit(WARNING, "WARNING", msg, args...)
}

// Error logs a message at the ERROR level
func Error(msg string, args ...interface{}) {
	emit(ERROR, "ERROR", msg, args...)
}

// Critical logs a message at the CRITICAL level
func Critical(msg string, args ...interface{}) {
	emit(CRITICAL, "CRITICAL", msg, args...)
}
