package reporter

type Action string

const (
	// ActionReported means the report was handed to the transport.
	ActionReported Action = "reported"
	// ActionAwaitingConsent means the report is held until the consent prompt is resolved.
	ActionAwaitingConsent Action = "awaiting-consent"
	// ActionSuppressed means nothing was or will be sent.
	ActionSuppressed Action = "suppressed"
)

// Result describes what a reporting call did.
type Result struct {
	Action Action
	// ReportID identifies the pending report in logs. Empty when suppressed.
	ReportID string
}
