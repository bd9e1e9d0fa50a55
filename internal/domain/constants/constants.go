// Package constants contains string enums shared between configuration and wiring.
package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub publisher providers.
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attributes carried with booking events.
const (
	AttributeRequestID = "request_id"
	AttributeBookingID = "booking_id"
	AttributeEventType = "event_type"
)
