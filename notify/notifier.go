package notify

import "log"

// Notifier delivers transient user-facing notifications, the toast channel
// of the admin UI. It is injected into the view handlers rather than being
// a global.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
}

// LogNotifier writes notifications to a standard logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) logger() *log.Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return log.Default()
}

func (n *LogNotifier) Success(msg string) {
	n.logger().Printf("notify: success: %s", msg)
}

func (n *LogNotifier) Error(msg string) {
	n.logger().Printf("notify: error: %s", msg)
}

func (n *LogNotifier) Warning(msg string) {
	n.logger().Printf("notify: warning: %s", msg)
}
