package notification

import "log"

// LogListener writes payment events to the process log.
type LogListener struct{}

// NewLogListener creates a new log listener.
func NewLogListener() *LogListener { return &LogListener{} }

// Notify logs the event.
func (l *LogListener) Notify(event string) {
	log.Printf("notification: %s", event)
}
