package model

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/atom/exception-reporting/internal/pkg/stacktrace"
)

const DefaultErrorClass = "Error"

type Metadata map[string]any

// ErrorReport is an error as handed over by the host, together with the data the reporter may send
// along with it.
type ErrorReport struct {
	// Err is the original error, if the report originates from Go code.
	Err error `json:"-"`

	ErrorClass string `json:"errorClass"`
	Message    string `json:"message"`

	// Stack is a raw V8 style stack (Error#stack) forwarded by a script host. When set it takes
	// precedence over Trace.
	Stack string `json:"stack,omitempty"`

	// Trace is the stack captured from Err or at the time the report was created.
	Trace []stacktrace.Frame `json:"-"`

	// Metadata is sent with every report.
	Metadata Metadata `json:"metadata,omitempty"`

	// PrivateMetadata is only sent after the user consented to it in a prompt describing it with
	// PrivateMetadataDescription. PrivateMetadataRequestName groups prompts so that the user is
	// only asked once per name.
	PrivateMetadata            Metadata `json:"privateMetadata,omitempty"`
	PrivateMetadataDescription string   `json:"privateMetadataDescription,omitempty"`
	PrivateMetadataRequestName string   `json:"privateMetadataRequestName,omitempty"`
}

// NewErrorReport creates a report for err. The stack is taken from err when it carries one
// (github.com/pkg/errors), otherwise the stack of the caller is captured.
func NewErrorReport(err error) *ErrorReport {
	r := &ErrorReport{
		Err:        err,
		ErrorClass: ClassOf(err),
	}
	if err != nil {
		r.Message = err.Error()
		r.Trace = stacktrace.FromError(err)
	}
	if r.Trace == nil {
		r.Trace = stacktrace.Capture(1)
	}
	return r
}

// Frames returns the raw frames of the report, outermost call last.
func (r *ErrorReport) Frames() []stacktrace.Frame {
	if r.Stack != "" {
		return stacktrace.Parse(r.Stack)
	}
	return r.Trace
}

// HasPrivateMetadata tells whether the report asks for consent before sending additional data.
func (r *ErrorReport) HasPrivateMetadata() bool {
	return r.PrivateMetadata != nil && r.PrivateMetadataDescription != ""
}

// PrivateData is the consent-gated part of an ErrorReport once detached from it.
type PrivateData struct {
	Metadata    Metadata
	Description string
	RequestName string
}

// DetachPrivateData clears the private fields of the report and returns them.
func (r *ErrorReport) DetachPrivateData() PrivateData {
	p := PrivateData{
		Metadata:    r.PrivateMetadata,
		Description: r.PrivateMetadataDescription,
		RequestName: r.PrivateMetadataRequestName,
	}
	r.PrivateMetadata = nil
	r.PrivateMetadataDescription = ""
	r.PrivateMetadataRequestName = ""
	return p
}

// plain message errors carry no useful type information
var genericErrorPkgs = map[string]bool{
	"errors":                true,
	"fmt":                   true,
	"github.com/pkg/errors": true,
}

// ClassOf names the dynamic type of the root cause of err, e.g. "fs.PathError". Plain message
// errors are named "Error".
func ClassOf(err error) string {
	if err == nil {
		return DefaultErrorClass
	}
	t := reflect.TypeOf(errors.Cause(err))
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || genericErrorPkgs[t.PkgPath()] {
		return DefaultErrorClass
	}
	return t.String()
}
