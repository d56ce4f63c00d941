package handlers

import (
	"rinseo/utils"

	"go.uber.org/zap"
)

// Notification is one user-facing message produced while handling a
// request.
type Notification struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// responseNotifier is the UI notification sink for the HTTP surface:
// it collects the messages the services emit so they can ride back in
// the response body, and mirrors them to the log.
type responseNotifier struct {
	notifications []Notification
}

func (n *responseNotifier) Notify(message, severity string) {
	n.notifications = append(n.notifications, Notification{Message: message, Severity: severity})
	utils.GetLogger().Info("notify",
		zap.String("severity", severity), zap.String("message", message))
}

// responseRedirector captures the navigation the core requests so the
// client can follow it.
type responseRedirector struct {
	path string
}

func (r *responseRedirector) Redirect(path string) {
	r.path = path
}
