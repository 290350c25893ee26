package chatalert

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

const unknown string = "unknown"

// Stacktrace carries the frames attached to a report, oldest call first.
type Stacktrace struct {
	Frames []Frame `json:"frames"`
}

type Frame struct {
	Function string `json:"function"`
	Module   string `json:"module"`
	Filename string `json:"filename"`
	AbsPath  string `json:"abs_path"`
	Lineno   int    `json:"lineno"`
	InApp    bool   `json:"in_app"`
}

// NewStacktrace captures the stack of the calling goroutine.
func NewStacktrace() *Stacktrace {
	callerPcs := make([]uintptr, 100)
	callersCount := runtime.Callers(2, callerPcs)

	if callersCount == 0 {
		return nil
	}

	return &Stacktrace{
		Frames: extractFrames(callerPcs[:callersCount]),
	}
}

// ExtractStacktrace pulls a stack trace out of errors produced by
// github.com/pkg/errors, github.com/pingcap/errors (StackTrace method) or
// github.com/go-errors/errors (Callers method). Errors without a captured
// stack yield nil.
func ExtractStacktrace(err error) *Stacktrace {
	method := stacktraceMethod(err)
	if !method.IsValid() {
		return nil
	}

	pcs := extractPcs(method)
	if len(pcs) == 0 {
		return nil
	}

	return &Stacktrace{
		Frames: extractFrames(pcs),
	}
}

func stacktraceMethod(err error) reflect.Value {
	errValue := reflect.ValueOf(err)

	// pkg/errors and pingcap/errors
	method := errValue.MethodByName("StackTrace")
	if method.IsValid() {
		return method
	}

	// go-errors
	return errValue.MethodByName("Callers")
}

func extractPcs(method reflect.Value) []uintptr {
	stacktrace := method.Call(nil)[0]
	if stacktrace.Kind() != reflect.Slice {
		return nil
	}

	var pcs []uintptr
	for i := 0; i < stacktrace.Len(); i++ {
		pc := stacktrace.Index(i)
		if pc.Kind() == reflect.Uintptr {
			pcs = append(pcs, uintptr(pc.Uint()))
		}
	}
	return pcs
}

func extractFrames(pcs []uintptr) []Frame {
	var frames []Frame
	callersFrames := runtime.CallersFrames(pcs)

	for {
		callerFrame, more := callersFrames.Next()
		frames = append([]Frame{newFrame(callerFrame.Function, callerFrame.File, callerFrame.Line)}, frames...)

		if !more {
			break
		}
	}

	return frames
}

func newFrame(fName, file string, line int) Frame {
	if file == "" {
		file = unknown
	}
	if fName == "" {
		fName = unknown
	}

	frame := Frame{
		AbsPath:  file,
		Filename: filepath.Base(file),
		Lineno:   line,
	}
	frame.Module, frame.Function = deconstructFunctionName(fName)
	frame.InApp = isInAppFrame(frame)

	return frame
}

func isInAppFrame(frame Frame) bool {
	if frame.Module == "main" {
		return true
	}
	if strings.HasPrefix(frame.Module, "runtime") || strings.HasPrefix(frame.Module, "testing") {
		return false
	}
	if strings.Contains(frame.Module, "vendor") || strings.Contains(frame.Module, "third_party") {
		return false
	}
	return true
}

// Transform `runtime/debug.*T·ptrmethod` into `{ module: runtime/debug, name: *T.ptrmethod }`
func deconstructFunctionName(name string) (string, string) {
	var module string
	if idx := strings.LastIndex(name, "."); idx != -1 {
		module = name[:idx]
		name = name[idx+1:]
	}
	name = strings.Replace(name, "·", ".", -1)
	return module, name
}
