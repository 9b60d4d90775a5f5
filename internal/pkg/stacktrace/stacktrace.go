// Package stacktrace extracts stack frames from raw V8-style stack text and from Go errors.
// Extraction is best effort: input that cannot be understood is skipped, never reported as an error.
package stacktrace

import (
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const anonymous = "<anonymous>"

// Frame is a single source location. Column is 0 when the source does not carry one.
type Frame struct {
	Function string
	File     string
	Line     int
	Column   int
}

// ".v3." in "yaml.v3.Unmarshal"
var versionSuffixRe = regexp.MustCompile(`^\.v[0-9]+\.`)

// matches "    at method (file:line:col)" and "    at file:line:col"
var v8FrameRe = regexp.MustCompile(`^\s*at (?:(.+?) \()?(.+?):(\d+):(\d+)\)?\s*$`)

// Parse extracts the frames of a V8 stack, e.g. an Error#stack value forwarded by a script host.
// The leading "Error: message" line and any line that is not a frame are ignored.
func Parse(raw string) []Frame {
	var frames []Frame
	for _, line := range strings.Split(raw, "\n") {
		m := v8FrameRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		lineNumber, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		columnNumber, err := strconv.Atoi(m[4])
		if err != nil {
			continue
		}
		frames = append(frames, Frame{
			Function: v8Method(m[1]),
			File:     m[2],
			Line:     lineNumber,
			Column:   columnNumber,
		})
	}
	return frames
}

// v8Method reduces a V8 call name to the function name: the receiver type ("Object." in
// "Object.<anonymous>") and the async/new markers are dropped.
func v8Method(name string) string {
	for _, prefix := range []string{"async ", "new "} {
		name = strings.TrimPrefix(name, prefix)
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FromError returns the stack recorded by github.com/pkg/errors closest to the origin of err, or
// nil when no error in the chain carries one.
func FromError(err error) []Frame {
	var st errors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if tracer, ok := e.(stackTracer); ok {
			st = tracer.StackTrace()
		}
	}
	if len(st) == 0 {
		return nil
	}

	frames := make([]Frame, 0, len(st))
	for _, f := range st {
		// errors.Frame stores the return address, i.e. pc+1
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line := fn.FileLine(pc)
		frames = append(frames, Frame{
			Function: FuncName(fn.Name()),
			File:     file,
			Line:     line,
		})
	}
	return frames
}

// Capture returns the stack of the calling goroutine. skip=0 starts at the caller of Capture.
func Capture(skip int) []Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	var frames []Frame
	it := runtime.CallersFrames(pcs[:n])
	for {
		f, more := it.Next()
		if f.Function != "" || f.File != "" {
			frames = append(frames, Frame{
				Function: FuncName(f.Function),
				File:     f.File,
				Line:     f.Line,
			})
		}
		if !more {
			break
		}
	}
	return frames
}

// FuncName strips the import path and the package name from a fully qualified Go function name:
// "github.com/a/b.(*T).M" becomes "(*T).M". Dots of the package element are escaped as %2e in
// runtime symbols, but gopkg.in style ".vN" suffixes are also recognized unescaped.
func FuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	i := strings.Index(name, ".")
	for i >= 0 && versionSuffixRe.MatchString(name[i:]) {
		i += 1 + strings.Index(name[i+1:], ".")
	}
	if i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Method renders a function name the way the collector groups it: always dot qualified.
// A name without receiver becomes ".name" and a nameless frame ".<anonymous>".
func Method(function string) string {
	switch {
	case function == "":
		return "." + anonymous
	case strings.Contains(function, "."):
		return function
	default:
		return "." + function
	}
}
