package services

// EventPublisher is the subset of the message-queue client the workflows
// need. A nil publisher disables event publication entirely; publish
// failures are logged and never fail the request.
type EventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
	PublishBookingCreated(event map[string]interface{}) error
}
