// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/abapcodestudio/codestudio/internal/logger"
)

// AppName is the notification title.
const AppName = "ABAP Code Studio"

var notify = beeep.Notify

// SetNotifier replaces the notification function. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	err := notify(title, message, "")
	if err != nil {
		log.Debug("notification failed", "error", err)
	}
	return err
}

// PipelineFinished announces the outcome of a review pipeline run.
func PipelineFinished(sessionID string, passed bool) error {
	if passed {
		return Send(AppName, fmt.Sprintf("Pipeline for %s passed", sessionID))
	}
	return Send(AppName, fmt.Sprintf("Pipeline for %s needs attention", sessionID))
}

// DiffReady announces that a proposed change is waiting for review.
func DiffReady(objectName string) error {
	return Send(AppName, objectName+" has a change ready for review")
}
