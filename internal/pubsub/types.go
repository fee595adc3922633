package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventScheduleAnnounce EventType = "schedule-announce"
	EventScheduleFull     EventType = "schedule-full"
	EventResultDigest     EventType = "result-digest"
)

// PushEnvelope is the JSON wrapper Google Pub/Sub wraps around a push
// delivery. Data carries the base64-encoded message payload.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data string `json:"data"`
	} `json:"message"`
}
