package notifier

import "pocket-wallet/internal/domain/port/core"

// LogNotifier writes notifications to the structured log. Destructive
// notifications log at warn level so failed user actions stand out.
type LogNotifier struct {
	logger core.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger core.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification
func (n *LogNotifier) Notify(e core.Notification) {
	fields := map[string]any{
		"title":       e.Title,
		"description": e.Description,
		"severity":    string(e.Severity),
	}
	if e.Severity == core.SeverityDestructive {
		n.logger.Warn("Notification", fields)
		return
	}
	n.logger.Info("Notification", fields)
}
