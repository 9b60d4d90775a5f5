package model

const PayloadVersion = "2"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Payload struct {
	APIKey   string   `json:"apiKey"`
	Notifier Notifier `json:"notifier"`
	Events   []Event  `json:"events"`
}

type Notifier struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

type Event struct {
	PayloadVersion string      `json:"payloadVersion"`
	Exceptions     []Exception `json:"exceptions"`
	Severity       Severity    `json:"severity"`
	User           User        `json:"user"`
	App            App         `json:"app"`
	Device         Device      `json:"device"`
	MetaData       Metadata    `json:"metaData,omitempty"`
}

type Exception struct {
	ErrorClass string       `json:"errorClass"`
	Message    string       `json:"message"`
	Stacktrace []StackFrame `json:"stacktrace"`
}

type StackFrame struct {
	Method       string `json:"method"`
	LineNumber   int    `json:"lineNumber"`
	ColumnNumber int    `json:"columnNumber"`
	File         string `json:"file"`
	InProject    bool   `json:"inProject"`
}

// User is intentionally empty: reports are anonymous.
type User struct{}

type App struct {
	Version      string `json:"version"`
	ReleaseStage string `json:"releaseStage"`
}

type Device struct {
	OSVersion string `json:"osVersion"`
}
