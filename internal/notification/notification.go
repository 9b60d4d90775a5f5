// Package notification is the surface the reporter uses to ask the user something.
package notification

// Button is an action offered by a notification.
type Button struct {
	Text       string
	OnDidClick func()
}

type Options struct {
	Detail      string
	Dismissable bool
	Buttons     []Button
}

// Notification is a displayed message. Clicking a button does not dismiss it by itself.
type Notification interface {
	Dismiss()
	IsDismissed() bool
	// OnDidDismiss registers fn to run once the notification is dismissed.
	OnDidDismiss(fn func())
}

// Service displays notifications. Resolution (a click or a dismissal) is delivered later through
// the callbacks, never from within AddInfo.
type Service interface {
	AddInfo(message string, opts Options) Notification
}
