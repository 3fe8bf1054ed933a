package stacktrace

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame is a single frame in a stacktrace
type Frame struct {
	// Func is the fully qualified function name
	Func string
	// File is the source file path
	File string
	// Line is the line number inside the source file
	Line int
}

// Stacktrace reflects a stacktrace of the goroutine that created it
type Stacktrace struct {
	Frames []Frame
}

// String returns a human readable rendition of the stacktrace
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s:%d (%s)", frame.File, frame.Line, frame.Func))
	}
	return strings.Join(result, "\n")
}

// CurrentFile returns the path of the Go file that invoked it
func CurrentFile() string {
	pc := make([]uintptr, 2)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pc[:n])
	frame, _ := frames.Next()
	frame, _ = frames.Next() // skip this file

	return frame.File
}

// Get returns a stacktrace for the calling goroutine, excluding this file
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip returns a stacktrace that excludes this file as well as any of
// the files passed in. Skipping files rather than a fixed number of frames
// keeps the trace meaningful regardless of how deeply the caller wraps us.
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, 100)
	n := runtime.Callers(0, pc)
	if n == 0 {
		return stacktrace
	}

	skipFiles = append(skipFiles, pcFile())
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()

		skip := false
		for _, skipFile := range skipFiles {
			if frame.File == skipFile {
				skip = true
				break
			}
		}
		if !skip {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func: frame.Function,
				File: frame.File,
				Line: frame.Line,
			})
		}

		if !more {
			break
		}
	}

	return stacktrace
}

func pcFile() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return file
}
