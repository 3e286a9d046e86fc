package notifier

import "pocket-wallet/internal/domain/port/core"

// Fanout delivers each notification to every target in order
type Fanout struct {
	targets []core.Notifier
}

// NewFanout creates a notifier that forwards to all targets
func NewFanout(targets ...core.Notifier) *Fanout {
	return &Fanout{targets: targets}
}

// Notify forwards the notification to every target
func (f *Fanout) Notify(n core.Notification) {
	for _, t := range f.targets {
		t.Notify(n)
	}
}
