package core

// Severity classifies a notification for presentation purposes
type Severity string

// Notification severities
const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is a user-facing event emitted by the stores after a
// transition completes or a user-initiated action fails.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Notifier delivers notifications to whatever surfaces are listening
type Notifier interface {
	Notify(n Notification)
}
