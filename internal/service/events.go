package service

// EventPublisher pushes live updates to connected dashboards.
type EventPublisher interface {
	Publish(eventType string, data any) error
}
