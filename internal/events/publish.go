package events

import (
	"errors"
	"log/slog"
	"time"
)

// PublishWithRetry attempts to publish an event with retry logic.
// It makes up to maxRetries attempts with exponential backoff and returns
// the error from the final attempt if all of them fail. A closed publisher
// is not retried.
func PublishWithRetry(client EventPublisher, event Event, maxRetries int) error {
	if client == nil {
		return nil // No publisher configured (tests, one-shot CLI commands)
	}

	var lastErr error
	baseDelay := 10 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := client.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type)
			}
			return nil
		}
		lastErr = err
		if errors.Is(err, ErrClosed) {
			break
		}

		if attempt < maxRetries-1 {
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	slog.Warn("event publish failed",
		"attempts", maxRetries,
		"event_type", event.Type,
		"error", lastErr)

	return lastErr
}
