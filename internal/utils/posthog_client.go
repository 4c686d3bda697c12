package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

const posthogEndpoint = "https://eu.i.posthog.com"

// AnalyticsClient captures product events. A client built without an API key
// is a no-op so callers never need to check whether analytics is enabled.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient builds the PostHog-backed client, or a disabled one when apiKey is empty.
func NewAnalyticsClient(apiKey string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("PostHog API key is empty, product analytics disabled")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: posthogEndpoint})
	if err != nil {
		logger.Error("Failed to initialise PostHog client, product analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("PostHog client initialised")
	return &AnalyticsClient{client: client, logger: logger}
}

// Enabled reports whether events are actually sent.
func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Capture enqueues an event for distinctID. The call never blocks on the network.
func (a *AnalyticsClient) Capture(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	if err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to flush analytics events", slog.String("error", err.Error()))
	}
}
